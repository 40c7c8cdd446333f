// Add command inserts a user and renders the refreshed list.
package main

import (
	"github.com/spf13/cobra"
)

func newAddCmd(s *session) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "add --name <name> --email <email>",
		Short: "Add a user",
		Long: `Add inserts a user with the given name and email. Both fields are
required; surrounding whitespace is trimmed. The email format is not checked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, closeFn, err := s.openScreen(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			scr.SetName(name)
			scr.SetEmail(email)
			if _, err := scr.Add(cmd.Context()); err != nil {
				return classify(err)
			}

			return renderUsers(cmd.OutOrStdout(), scr.Users(), s.flags.jsonMode)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name (required)")
	cmd.Flags().StringVar(&email, "email", "", "user email (required)")
	return cmd
}
