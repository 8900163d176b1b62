package modcontent

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/rules"
)

func newCategoriesCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "categories",
		Short:   MsgCategoriesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			if f.Structured() {
				return writeStructured(cmd.OutOrStdout(), f, categories.All())
			}

			r, err := opts.renderer(f)
			if err != nil {
				return err
			}
			table, err := r.CategoryTable(categories.All())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", r.Title(MsgCategoriesTitle), table)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	return cmd
}

type ruleReport struct {
	Input     string `json:"input" yaml:"input"`
	Extension string `json:"extension" yaml:"extension"`
	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
}

// resolveInput resolves a file name, or a bare extension such as ".dll"
func resolveInput(table *rules.Table, game, input string) ruleReport {
	path := input
	if strings.HasPrefix(input, ".") && strings.Count(input, ".") == 1 {
		path = "file" + input
	}
	report := ruleReport{Input: input, Extension: rules.Normalize(path)}
	if c, ok := table.ResolvePath(game, path); ok {
		report.Category = string(c)
	}
	return report
}

func newRulesCmd(opts *globalOptions) *cobra.Command {
	var (
		game   string
		format string
	)

	cmd := &cobra.Command{
		Use:     "rules [file-or-extension]...",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			table, err := rules.FromConfig(opts.cfg)
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				inputs = table.Extensions()
			}
			reports := make([]ruleReport, len(inputs))
			for i, input := range inputs {
				reports[i] = resolveInput(table, game, input)
			}

			if f.Structured() {
				return writeStructured(cmd.OutOrStdout(), f, reports)
			}

			r, err := opts.renderer(f)
			if err != nil {
				return err
			}
			rows := make([][]string, len(reports))
			for i, report := range reports {
				category := r.Muted(MsgNoMatch)
				if report.Category != "" {
					category = r.Categories([]categories.Category{categories.Category(report.Category)})
				}
				rows[i] = []string{report.Input, report.Extension, category}
			}
			out, err := r.Table([]string{"Input", "Extension", "Category"}, rows)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", "", MsgFlagGame)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	return cmd
}
