package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist session tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("both --email and --password are required")
			}
			if err := a.session.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			state := a.session.State()
			fmt.Printf("Signed in as %s (%s, %s)\n",
				state.User.FullName, state.User.Role, state.User.BusinessType)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.guard(cmd.Context()); err != nil {
				return err
			}

			user := a.session.State().User
			fmt.Printf("Name:          %s\n", user.FullName)
			fmt.Printf("Email:         %s\n", user.Email)
			fmt.Printf("Role:          %s\n", user.Role)
			fmt.Printf("Business type: %s\n", user.BusinessType)
			if user.Vendor != nil {
				fmt.Printf("Vendor:        %s\n", user.Vendor.Name)
			}
			return nil
		},
	}
}
