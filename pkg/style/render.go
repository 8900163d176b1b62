package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/content"
)

const (
	emptyLabel        = "(no files)"
	unrecognizedLabel = "(no recognized content)"
)

// Renderer turns results into text, colored or plain
type Renderer struct {
	theme *Theme
	color bool
}

// NewRenderer creates a renderer for a resolved format. Only FormatTerminal
// produces color.
func NewRenderer(theme *Theme, format Format) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{theme: theme, color: format == FormatTerminal}
}

func (r *Renderer) styled(name, s string) string {
	if !r.color {
		return s
	}
	return r.theme.Style(name).Render(s)
}

// Title renders a heading
func (r *Renderer) Title(s string) string {
	return r.styled("title", s)
}

// Muted renders secondary text
func (r *Renderer) Muted(s string) string {
	return r.styled("muted", s)
}

// Path renders a filesystem path
func (r *Renderer) Path(s string) string {
	return r.styled("path", s)
}

// Notice renders a warning that is not a failure
func (r *Renderer) Notice(s string) string {
	if !r.color {
		return "notice: " + s
	}
	return strings.TrimRight(pterm.Warning.Sprint(r.styled("notice", s)), "\n")
}

// Error renders a failure message
func (r *Renderer) Error(s string) string {
	if !r.color {
		return "error: " + s
	}
	return strings.TrimRight(pterm.Error.Sprint(r.styled("error", s)), "\n")
}

// Categories renders a category list as comma separated badges
func (r *Renderer) Categories(cs []categories.Category) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		if r.color {
			parts[i] = r.theme.Category(c).Render(string(c))
		} else {
			parts[i] = string(c)
		}
	}
	return strings.Join(parts, ", ")
}

// Summary renders what a result holds, without the folder
func (r *Renderer) Summary(result content.Result) string {
	switch {
	case result.IsEmpty:
		return r.Muted(emptyLabel)
	case len(result.Categories) == 0:
		return r.Muted(unrecognizedLabel)
	default:
		return r.Categories(result.Categories)
	}
}

// Result renders one scanned folder and what it contains
func (r *Renderer) Result(root string, result content.Result) string {
	return fmt.Sprintf("%s: %s", r.Path(root), r.Summary(result))
}

// Table renders rows under a header row
func (r *Renderer) Table(header []string, rows [][]string) (string, error) {
	data := pterm.TableData{header}
	data = append(data, rows...)

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	if !r.color {
		out = pterm.RemoveColorFromString(out)
	}
	return out, nil
}

// CategoryTable renders the category registry
func (r *Renderer) CategoryTable(descs []categories.Descriptor) (string, error) {
	rows := make([][]string, len(descs))
	for i, d := range descs {
		id := string(d.ID)
		if r.color {
			id = r.theme.Category(d.ID).Render(id)
		}
		rows[i] = []string{fmt.Sprint(d.Priority), id, d.Icon, d.Tooltip}
	}
	return r.Table([]string{"Priority", "Category", "Icon", "Description"}, rows)
}
