package modcontent

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/modcontent/pkg/categories"
	"github.com/arthur-debert/modcontent/pkg/content"
	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/style"
	"github.com/arthur-debert/modcontent/pkg/utils"
)

// Scan report statuses
const (
	statusScanned = "scanned"
	statusPending = "pending"
	statusFailed  = "failed"
)

type scanReport struct {
	Path       string   `json:"path" yaml:"path"`
	Game       string   `json:"game" yaml:"game"`
	Status     string   `json:"status" yaml:"status"`
	Categories []string `json:"categories" yaml:"categories"`
	IsEmpty    bool     `json:"isEmpty" yaml:"isEmpty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`

	result content.Result
}

// scanAll scans every folder through the engine. All folders are submitted
// at once; the engine's queue decides how many walk at the same time.
func scanAll(ctx context.Context, engine *content.Engine, game string, dirs []string) ([]scanReport, int) {
	reports := make([]scanReport, len(dirs))

	var g errgroup.Group
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			report := scanReport{Path: dir, Game: game, Categories: []string{}}

			result, err := engine.Scan(ctx, content.Request{Root: dir, GameID: game})
			switch {
			case err == nil:
				report.Status = statusScanned
				report.Categories = result.Labels()
				report.IsEmpty = result.IsEmpty
				report.result = result
			case content.IsTransientAbsence(err):
				report.Status = statusPending
			default:
				report.Status = statusFailed
				report.Error = err.Error()
			}
			reports[i] = report
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range reports {
		if r.Status == statusFailed {
			failed++
		}
	}
	return reports, failed
}

func writeReports(cmd *cobra.Command, opts *globalOptions, format style.Format, reports []scanReport) error {
	if format.Structured() {
		return writeStructured(cmd.OutOrStdout(), format, reports)
	}

	r, err := opts.renderer(format)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, report := range reports {
		var line string
		switch report.Status {
		case statusScanned:
			line = r.Result(report.Path, report.result)
		case statusPending:
			line = r.Notice(fmt.Sprintf(MsgPending, report.Path))
		default:
			line = r.Error(fmt.Sprintf(MsgScanFailed, report.Path, report.Error))
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func summaryError(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return errors.Newf(errors.ErrScanFailed, MsgScanSummaryErr, failed, total)
}

func newScanCmd(opts *globalOptions) *cobra.Command {
	var (
		game   string
		format string
	)

	cmd := &cobra.Command{
		Use:     "scan <folder>...",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		Example: MsgScanExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			engine, err := opts.engine()
			if err != nil {
				return err
			}

			reports, failed := scanAll(cmd.Context(), engine, game, utils.ExpandPaths(args))
			if err := writeReports(cmd, opts, f, reports); err != nil {
				return err
			}
			return summaryError(failed, len(reports))
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", "", MsgFlagGame)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	return cmd
}

func newSortCmd(opts *globalOptions) *cobra.Command {
	var (
		game   string
		format string
	)

	cmd := &cobra.Command{
		Use:     "sort <folder>...",
		Short:   MsgSortShort,
		Long:    MsgSortLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			engine, err := opts.engine()
			if err != nil {
				return err
			}

			reports, failed := scanAll(cmd.Context(), engine, game, utils.ExpandPaths(args))
			sortReports(reports)
			if err := writeReports(cmd, opts, f, reports); err != nil {
				return err
			}
			return summaryError(failed, len(reports))
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", "", MsgFlagGame)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	return cmd
}

// sortReports orders scanned folders by content; pending and failed folders
// follow in their original order
func sortReports(reports []scanReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		a, b := reports[i], reports[j]
		if a.Status != statusScanned || b.Status != statusScanned {
			return a.Status == statusScanned && b.Status != statusScanned
		}
		return categories.Less(a.Categories, b.Categories)
	})
}
