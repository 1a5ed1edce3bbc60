package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/EduardoVisconti/AssetOps/cmd/cli/config"
	"github.com/EduardoVisconti/AssetOps/cmd/cli/root"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage API credentials",
		Long: `Store or clear the bearer token used by the CLI.
Tokens are issued by the identity provider; "mint" signs a local dev token.`,
	}

	authCmd.AddCommand(loginCmd(), logoutCmd(), mintCmd())
	root.GetRoot().AddCommand(authCmd)
}

// loginCmd stores a token obtained from the identity provider.
func loginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a bearer token for subsequent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return fmt.Errorf("--token is required")
			}
			if err := config.SaveToken(token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			fmt.Println("Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Bearer token issued by the identity provider")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the locally stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ClearToken(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// mintCmd signs a dev token with a shared secret. Useful against a local
// API; production tokens come from the identity provider.
func mintCmd() *cobra.Command {
	var uid, email, secret string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Sign and store a local development token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if uid == "" || secret == "" {
				return fmt.Errorf("--uid and --secret are required")
			}

			claims := jwt.MapClaims{
				"uid":   uid,
				"email": email,
				"exp":   time.Now().Add(ttl).Unix(),
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			if err := config.SaveToken(signed); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			fmt.Println("Dev token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "Identity uid claim")
	cmd.Flags().StringVar(&email, "email", "", "Identity email claim")
	cmd.Flags().StringVar(&secret, "secret", "", "Shared JWT secret of the target API")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
