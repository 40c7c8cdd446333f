// List command renders the current users.
package main

import (
	"github.com/spf13/cobra"
)

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all users in insertion order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, closeFn, err := s.openScreen(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			return renderUsers(cmd.OutOrStdout(), scr.Users(), s.flags.jsonMode)
		},
	}
}
