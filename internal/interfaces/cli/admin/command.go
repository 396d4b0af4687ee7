package admin

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wagate/internal/infrastructure/auth"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative helpers",
	}

	cmd.AddCommand(newHashPasswordCommand())

	return cmd
}

// newHashPasswordCommand produces the bcrypt hash to place in
// auth.admin_password_hash.
func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Hash an admin password for the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(os.Stderr, "Password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if len(password) == 0 {
				return fmt.Errorf("password must not be empty")
			}

			hash, err := auth.HashPassword(string(password))
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			fmt.Println(hash)
			return nil
		},
	}
}
