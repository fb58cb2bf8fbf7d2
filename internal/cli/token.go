package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/platform/config"
	"github.com/SscSPs/contracts_tracker/internal/utils"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	userID   int64
	username string
	role     string
	secret   string
	issuer   string
	expiry   time.Duration
}

// newTokenCommand issues service tokens accepted by the web service's Bearer auth.
func newTokenCommand(out io.Writer) *cobra.Command {
	opts := &tokenOptions{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a service token for scripted access to the API",
		Long: `Issue a JWT signed with JWT_SECRET for the given user.

The secret, issuer and lifetime default to JWT_SECRET, JWT_ISSUER and
JWT_EXPIRY_DURATION from the environment or .env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.complete(cmd); err != nil {
				return err
			}
			token, err := utils.GenerateJWT(domain.User{
				ID:       opts.userID,
				Username: opts.username,
				Role:     domain.Role(opts.role),
			}, opts.secret, opts.expiry, opts.issuer)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(out, token)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&opts.userID, "user-id", 0, "numeric id of the user")
	flags.StringVar(&opts.username, "username", "", "login of the user")
	flags.StringVar(&opts.role, "role", "", "role of the user as stored by the contracts API")
	flags.StringVar(&opts.secret, "secret", "", "signing secret (default JWT_SECRET)")
	flags.StringVar(&opts.issuer, "issuer", "", "token issuer (default JWT_ISSUER)")
	flags.DurationVar(&opts.expiry, "expiry", 0, "token lifetime (default JWT_EXPIRY_DURATION)")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

// complete fills unset flags from the service configuration.
func (o *tokenOptions) complete(cmd *cobra.Command) error {
	if o.userID <= 0 {
		return errors.New("--user-id must be positive")
	}
	if o.secret != "" && o.issuer != "" && o.expiry > 0 {
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("secret") {
		o.secret = cfg.JWTSecret
	}
	if !cmd.Flags().Changed("issuer") {
		o.issuer = cfg.JWTIssuer
	}
	if !cmd.Flags().Changed("expiry") {
		o.expiry = cfg.JWTExpiryDuration
	}
	if o.secret == "" {
		return errors.New("no signing secret: set JWT_SECRET or pass --secret")
	}
	return nil
}
