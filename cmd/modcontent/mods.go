package modcontent

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/modstate"
	"github.com/arthur-debert/modcontent/pkg/style"
	"github.com/arthur-debert/modcontent/pkg/utils"
)

type modReport struct {
	ID        string         `json:"id" yaml:"id"`
	Content   []string       `json:"content" yaml:"content"`
	NoContent bool           `json:"noContent" yaml:"noContent"`
	State     modstate.State `json:"state" yaml:"state"`

	attrs modstate.Attributes
}

// stagedMods lists the folders directly below root as mods of game
func stagedMods(fs afero.Fs, root, game string) ([]modstate.Mod, error) {
	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		code := errors.ErrScanFailed
		if os.IsNotExist(err) {
			code = errors.ErrNotFound
		}
		return nil, errors.Wrapf(err, code, "cannot list staging folder %s", root)
	}

	var mods []modstate.Mod
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		mods = append(mods, modstate.Mod{ID: entry.Name(), GameID: game, InstallPath: entry.Name()})
	}
	return mods, nil
}

func newModsCmd(opts *globalOptions) *cobra.Command {
	var (
		game   string
		format string
		filter string
	)

	cmd := &cobra.Command{
		Use:     "mods <staging-folder>",
		Short:   MsgModsShort,
		Long:    MsgModsLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			if filter != "" && !modstate.IsFilterOption(filter) {
				return errors.Newf(errors.ErrInvalidInput, MsgUnknownFilter, filter, strings.Join(modstate.FilterOptions(), ", "))
			}

			root := utils.ExpandPath(args[0])
			mods, err := stagedMods(opts.fs, root, game)
			if err != nil {
				return err
			}

			engine, err := opts.engine()
			if err != nil {
				return err
			}
			tracker, err := modstate.NewTracker(engine, root, opts.cfg.Tracker.Capacity)
			if err != nil {
				return err
			}
			refreshErr := tracker.Refresh(cmd.Context(), mods...)

			reports := make([]modReport, 0, len(mods))
			for _, mod := range mods {
				attrs, _ := tracker.Attributes(mod.GameID, mod.ID)
				if filter != "" && !modstate.Matches(attrs, filter) {
					continue
				}
				reports = append(reports, modReport{
					ID:        mod.ID,
					Content:   modstate.DisplayLabels(attrs),
					NoContent: attrs.NoContent,
					State:     attrs.State,
					attrs:     attrs,
				})
			}
			sort.SliceStable(reports, func(i, j int) bool {
				return modstate.CompareAttributes(reports[i].attrs, reports[j].attrs) < 0
			})

			if err := writeModReports(cmd, opts, f, root, reports); err != nil {
				return err
			}
			return refreshErr
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", "", MsgFlagGame)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	cmd.Flags().StringVar(&filter, "filter", "", MsgFlagFilter)

	return cmd
}

func writeModReports(cmd *cobra.Command, opts *globalOptions, format style.Format, root string, reports []modReport) error {
	if format.Structured() {
		return writeStructured(cmd.OutOrStdout(), format, reports)
	}

	r, err := opts.renderer(format)
	if err != nil {
		return err
	}
	rows := make([][]string, len(reports))
	for i, report := range reports {
		content := strings.Join(report.Content, ", ")
		if report.NoContent {
			content = r.Muted(modstate.NoContentOption)
		}
		rows[i] = []string{report.ID, content, string(report.State)}
	}
	out, err := r.Table([]string{"Mod", "Content", "State"}, rows)
	if err != nil {
		return err
	}
	title := r.Title(fmt.Sprintf(MsgModsTitle, r.Path(root)))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", title, out)
	return err
}
