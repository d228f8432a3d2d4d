package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spec-kit/admin-gate/internal/auth"
	"github.com/spec-kit/admin-gate/internal/config"
	"github.com/spec-kit/admin-gate/internal/domain"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tokengen",
		Short:         "Mint and inspect admin-gate tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(mintCmd(), verifyCmd())
	return cmd
}

func mintCmd() *cobra.Command {
	var (
		userID string
		role   string
		ttl    int
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Sign a token with AUTH_JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.Role(role)
			if !r.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.Auth.AccessTokenTTLMinutes
			}
			token, exp, err := auth.NewTokenManager(cfg.Auth.JWTSecret, ttl).GenerateToken(userID, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id to embed")
	cmd.Flags().StringVarP(&role, "role", "r", string(domain.RoleUser), "role: admin or user")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "lifetime in minutes (default AUTH_ACCESS_TOKEN_TTL_MINUTES)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Verify a token with AUTH_JWT_SECRET and print its identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			identity, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes).Verify(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id=%s role=%s expires=%s\n",
				identity.UserID, identity.Role, identity.ExpiresAt.Format(time.RFC3339))
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireSecret(); err != nil {
		return nil, err
	}
	return cfg, nil
}
