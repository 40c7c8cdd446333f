// Delete command removes a user by id and renders the refreshed list.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a user by id",
		Long: `Delete removes the user with the given id. Deleting an id that does
not exist succeeds and leaves the list unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return userError(fmt.Errorf("invalid id %q", args[0]))
			}

			scr, closeFn, err := s.openScreen(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := scr.Delete(cmd.Context(), id); err != nil {
				return classify(err)
			}

			return renderUsers(cmd.OutOrStdout(), scr.Users(), s.flags.jsonMode)
		},
	}
}
