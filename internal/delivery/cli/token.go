package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slot-availability/pkg/jwt"

	"github.com/spf13/cobra"
)

func NewTokenCmd(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token management",
	}
	cmd.AddCommand(newTokenIssueCmd(deps))
	cmd.AddCommand(newTokenRevokeCmd(deps))
	return cmd
}

func newTokenIssueCmd(deps Dependencies) *cobra.Command {
	var user, group string
	var scopes []string
	c := &cobra.Command{
		Use:   "issue",
		Short: "Issue an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return err
			}
			jwtService := jwt.NewJWTService(cfg.JWT)
			token, tokenID, err := jwtService.GenerateAccessToken(user, group, scopes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token_id: %s\n", tokenID)
			fmt.Fprintf(cmd.OutOrStdout(), "expires_in: %s\n", jwtService.GetAccessExpiry())
			fmt.Fprintf(cmd.OutOrStdout(), "token: %s\n", token)
			return nil
		},
	}
	c.Flags().StringVar(&user, "user", "", "user name carried by the token")
	c.Flags().StringVar(&group, "group", "Default", "provider group")
	c.Flags().StringSliceVar(&scopes, "scope", []string{jwt.ScopeAvailableSlotsRead}, "granted scope (repeatable)")
	_ = c.MarkFlagRequired("user")
	return c
}

func newTokenRevokeCmd(deps Dependencies) *cobra.Command {
	var tokenID string
	var ttl time.Duration
	c := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke an access token by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenID == "" {
				return errors.New("token id must not be empty")
			}
			cfg, err := deps.LoadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := deps.RevocationStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			// A revocation only has to outlive the token it blocks
			if ttl <= 0 {
				ttl = cfg.JWT.AccessExpiry
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			if err := store.Revoke(ctx, tokenID, ttl); err != nil {
				return fmt.Errorf("failed to revoke token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "revoked token:", tokenID)
			return nil
		},
	}
	c.Flags().StringVar(&tokenID, "token-id", "", "token_id claim of the token to revoke")
	c.Flags().DurationVar(&ttl, "ttl", 0, "how long to keep the revocation (defaults to the access token expiry)")
	_ = c.MarkFlagRequired("token-id")
	return c
}
