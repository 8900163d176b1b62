package content

import (
	"github.com/arthur-debert/modcontent/pkg/categories"
)

// Result summarizes the content of one mod folder
type Result struct {
	// Categories are distinct and ordered by category priority
	Categories []categories.Category `json:"categories" yaml:"categories"`

	// IsEmpty is true when the folder tree holds no files, only directories
	// or nothing at all
	IsEmpty bool `json:"isEmpty" yaml:"isEmpty"`
}

// Labels returns the categories as plain strings
func (r Result) Labels() []string {
	return categories.Strings(r.Categories)
}

// Has reports whether the result contains c
func (r Result) Has(c categories.Category) bool {
	for _, found := range r.Categories {
		if found == c {
			return true
		}
	}
	return false
}
