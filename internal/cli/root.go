package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bernardopiane/UnitConverter/internal/infra/logger"
	"github.com/bernardopiane/UnitConverter/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	debug  bool
	config string
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "unitconv",
		Short:        "unitconv converts weight, temperature and distance",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := resolveConfigRoot(g.config)
			if err != nil {
				return err
			}

			logRoot := root
			if logRoot == "" {
				logRoot = workingDir()
			}
			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: g.debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			app, err := loadApp(root, logger.L())
			if err != nil {
				logger.L().Error("config.load.failed", "err", err)
				return err
			}

			return tui.Run(tui.Deps{
				Converter: app.convert,
				Config:    app.cfg,
				Logger:    logger.L(),
				Debug:     g.debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .unitconv/logs/unitconv.log")
	cmd.PersistentFlags().StringVar(&g.config, "config", "", "Directory holding unitconv.yaml (optional; autodetected if omitted)")

	cmd.AddCommand(
		convertCmd(&g),
		unitsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
