package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/quizbank-lambda/internal/auth"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

// NewTokenCmd mints a bearer token accepted by the local server.
func NewTokenCmd() *cobra.Command {
	var (
		email  string
		name   string
		groups string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed bearer token for local requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			auth.Init(cfg.JWTSecret)

			token, err := auth.GenerateJWT(auth.Claims{
				Subject: uuid.NewString(),
				Email:   email,
				Name:    name,
				Groups:  auth.ParseGroups(groups),
			}, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringVar(&name, "name", "", "display name claim")
	cmd.Flags().StringVar(&groups, "groups", "", "comma-separated group memberships, e.g. Admins")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(email) == "" {
			return fmt.Errorf("--email is required")
		}
		return nil
	}
	return cmd
}
