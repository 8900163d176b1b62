package modcontent

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/modcontent/internal/version"
	"github.com/arthur-debert/modcontent/pkg/config"
	"github.com/arthur-debert/modcontent/pkg/content"
	"github.com/arthur-debert/modcontent/pkg/logging"
	"github.com/arthur-debert/modcontent/pkg/style"
	"github.com/arthur-debert/modcontent/pkg/utils"
)

// globalOptions are the persistent flags and what they load
type globalOptions struct {
	verbosity   int
	configPath  string
	concurrency int

	// fs is what mod folders and the styles file are read from
	fs  afero.Fs
	cfg *config.Config
}

// engine builds a scan engine from the loaded configuration
func (o *globalOptions) engine() (*content.Engine, error) {
	return content.NewEngineFromConfig(o.fs, o.cfg)
}

// renderer builds a text renderer, themed by style.path when it is set
func (o *globalOptions) renderer(format style.Format) (*style.Renderer, error) {
	path := utils.ExpandPath(o.cfg.Style.Path)
	if path == "" {
		return style.NewRenderer(nil, format), nil
	}
	theme, err := style.LoadTheme(o.fs, path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("Loaded styles file")
	return style.NewRenderer(theme, format), nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{fs: fs}

	rootCmd := &cobra.Command{
		Use:     "modcontent",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("concurrency") {
				overrides["scan.concurrency"] = opts.concurrency
			}
			cfg, err := config.Load(config.LoadOptions{
				Path:      opts.configPath,
				Overrides: overrides,
			})
			if err != nil {
				return err
			}
			config.Initialize(cfg)
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().IntVar(&opts.concurrency, "concurrency", 1, MsgFlagConcurrency)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetCompletionCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newScanCmd(opts))
	rootCmd.AddCommand(newSortCmd(opts))
	rootCmd.AddCommand(newModsCmd(opts))
	rootCmd.AddCommand(newCategoriesCmd(opts))
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
