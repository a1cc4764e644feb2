package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calbook/calbook/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth [auth-code]",
		Short: "Authorize Google Calendar access",
		Long: `Authorize Google Calendar access for an account.

Without arguments, prints the OAuth URL to visit. With an authorization
code argument, exchanges it for a token and stores it for the account.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Printf("Visit this URL to authorize account %q:\n\n  %s\n\n", account, google.GetAuthURL())
				fmt.Println("Then run: calbook auth <authorization-code>")
				return nil
			}

			if err := google.SaveTokenForAccount(context.Background(), account, args[0]); err != nil {
				return fmt.Errorf("failed to save authorization code for account %s: %w", account, err)
			}
			fmt.Printf("Authorization successful for account %q. Token saved.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Account name to authorize")

	return cmd
}
