package modcontent

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/style"
)

// resolveFormat parses a --format value. Auto detection only applies when
// the command writes to a real file; anything else gets plain text.
func resolveFormat(cmd *cobra.Command, value string) (style.Format, error) {
	format, err := style.ParseFormat(value)
	if err != nil {
		return format, err
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return format.Resolve(f), nil
	}
	if format == style.FormatAuto {
		return style.FormatText, nil
	}
	return format, nil
}

// writeStructured writes v as JSON or YAML
func writeStructured(w io.Writer, format style.Format, v interface{}) error {
	switch format {
	case style.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON")
		}
	case style.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		return enc.Close()
	default:
		return errors.Newf(errors.ErrInvalidInput, "%s is not a structured format", format)
	}
	return nil
}
