package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/monitorr/internal/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example config file",
		Long: `Writes a commented example config file. Without a path the file goes to
$XDG_CONFIG_HOME/monitorr/config.toml. Pass it to monitorr with --config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}

			if err := config.WriteDefault(path, force); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
