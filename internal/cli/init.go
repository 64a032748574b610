package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bernardopiane/UnitConverter/internal/infra/configfile"
	"github.com/bernardopiane/UnitConverter/internal/infra/scaffold"
	"github.com/bernardopiane/UnitConverter/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Write a default unitconv.yaml (defaults to the current directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := workingDir()
			if len(args) == 1 {
				abs, err := resolveConfigRoot(args[0])
				if err != nil {
					return err
				}
				root = abs
			}

			uc := usecase.NewInitConfig(scaffold.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s in %s\n", configfile.FileName, root)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing unitconv.yaml")
	return c
}
