package cli

import (
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/spf13/cobra"
)

func newAuthCommand(opts *options, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
		Long:  "Sign in to the rental API and manage the stored session",
	}
	cmd.AddCommand(
		newLoginCommand(opts, p),
		newLogoutCommand(opts, p),
		newWhoamiCommand(opts, p),
		newRefreshCommand(opts, p),
	)
	return cmd
}

func newLoginCommand(opts *options, p *printer) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as an administrator",
		Long:  "Authenticate with the rental API and save the tokens to the session file. Only ADMIN accounts are accepted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			user, err := s.auth.Login(cmd.Context(), s.clients.Auth, s.store, domain.LoginCredentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if opts.apiURL != "" {
				if err := s.file.SetAPIURL(opts.apiURL); err != nil {
					p.Warn("Could not remember the API URL: %v", err)
				}
			}

			p.Success("Signed in as %s (%s)", user.Name, user.Email)
			p.Info("Profile '%s' saved to %s", s.file.Profile(), s.file.Path())
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	return cmd
}

func newLogoutCommand(opts *options, p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.auth.Logout(cmd.Context(), s.store); err != nil {
				return err
			}
			p.Success("Signed out from profile '%s'", s.file.Profile())
			return nil
		},
	}
}

func newWhoamiCommand(opts *options, p *printer) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in administrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}

			user := s.store.GetUser(ctx)
			if remote || user == nil {
				profile, err := unwrap(s.clients.Auth.Profile(ctx, s.store.GetAccessToken(ctx)))
				if err != nil {
					return err
				}
				user = &profile
			}

			if opts.output == "json" {
				return p.JSON(user)
			}
			p.Info("Profile: %s", s.file.Profile())
			p.Info("Name:    %s", user.Name)
			p.Info("Email:   %s", user.Email)
			p.Info("Role:    %s", user.Role)
			p.Info("API:     %s", s.apiURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "fetch the profile from the API instead of the session file")
	return cmd
}

func newRefreshCommand(opts *options, p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for new tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.auth.Refresh(cmd.Context(), s.clients.Auth, s.store); err != nil {
				return err
			}
			p.Success("Session refreshed")
			return nil
		},
	}
}
