package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"drepalife-app/internal/models"
	"drepalife-app/internal/service"
)

func newLoginCmd(cc *cliContext) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session on this device",
		Args:  cobra.NoArgs,
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			res, err := a.auth.Login(ctx, email, password)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Message)
			fmt.Fprintf(out, "Logged in as %s (%s), opening %s\n", res.User.Name, res.User.Role, res.Route)
			return nil
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(cc *cliContext) *cobra.Command {
	var in service.RegisterInput
	var role string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			in.Role = models.Role(role)
			res, err := a.auth.Register(ctx, in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Welcome %s! You can now log in.\n", res.User.Name)
			if !res.User.IsVerified {
				fmt.Fprintln(out, "Your account is awaiting approval by an administrator.")
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "password, at least 6 characters")
	cmd.Flags().StringVar(&in.ConfirmPassword, "confirm-password", "", "password again")
	cmd.Flags().StringVar(&role, "role", string(models.RolePatient), "patient, health_expert or admin")
	return cmd
}

func newLogoutCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session stored on this device",
		Args:  cobra.NoArgs,
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if err := a.auth.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		}),
	}
}

func newWhoamiCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session and the screen it opens",
		Args:  cobra.NoArgs,
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			res, err := a.auth.Restore(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.User == nil {
				if res.Message != "" {
					fmt.Fprintln(out, res.Message)
				}
				fmt.Fprintf(out, "Not logged in, opening %s\n", res.Route)
				return nil
			}
			fmt.Fprintf(out, "%s <%s> (%s), opening %s\n", res.User.Name, res.User.Email, res.User.Role, res.Route)
			return nil
		}),
	}
}
