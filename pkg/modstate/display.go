package modstate

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arthur-debert/modcontent/pkg/categories"
)

// NoContentOption is the filter entry matching mods without files
const NoContentOption = "<No Content>"

// DisplayLabels returns the content labels of attrs capitalized for display
func DisplayLabels(attrs Attributes) []string {
	title := cases.Title(language.Und)
	out := make([]string, len(attrs.Content))
	for i, label := range attrs.Content {
		out[i] = title.String(label)
	}
	return out
}

// FilterOptions lists the values a content filter can offer: the no-content
// entry followed by every category, capitalized and sorted alphabetically
func FilterOptions() []string {
	title := cases.Title(language.Und)
	ids := categories.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = title.String(string(id))
	}
	sort.Strings(names)
	return append([]string{NoContentOption}, names...)
}

// CompareAttributes orders two mods by their recorded content
func CompareAttributes(a, b Attributes) int {
	return categories.MustCompare(a.Content, b.Content)
}

// Matches reports whether attrs pass a filter option as listed by
// FilterOptions. Options compare case-insensitively.
func Matches(attrs Attributes, option string) bool {
	if strings.EqualFold(option, NoContentOption) {
		return attrs.NoContent
	}
	for _, label := range attrs.Content {
		if strings.EqualFold(label, option) {
			return true
		}
	}
	return false
}

// IsFilterOption reports whether option is one of FilterOptions
func IsFilterOption(option string) bool {
	for _, o := range FilterOptions() {
		if strings.EqualFold(o, option) {
			return true
		}
	}
	return false
}
