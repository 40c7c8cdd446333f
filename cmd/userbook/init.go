// Init command for the userbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/userbook/internal/paths"
)

func newInitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file, data directory, and users table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config dir and config.yaml already exist after setup.
			configDir, err := paths.ResolveConfigDir(s.flags.configDir)
			if err != nil {
				return sysError(err)
			}

			_, closeFn, err := s.openScreen(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			dataDir, err := s.resolveDataDir()
			if err != nil {
				return sysError(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Userbook initialized successfully")
			fmt.Fprintln(out, "  config:", configDir)
			fmt.Fprintln(out, "  data:  ", dataDir)
			return nil
		},
	}
}
