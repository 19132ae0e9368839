package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of NeuroAd",
	Long:  `End the session on the backend and forget it locally.`,
	RunE:  runLogout,
}

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func runLogout(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if e.client.SessionToken() == "" {
		fmt.Fprintln(out, "✅ Logged out (no session was saved).")
		return nil
	}

	// The local session is cleared regardless of the server response
	if err := e.auth.Logout(cmd.Context()); err != nil {
		fmt.Fprintf(out, "✅ Logged out locally (server response: %v).\n", err)
		return nil
	}
	fmt.Fprintln(out, "✅ Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	u := e.auth.CheckIdentity(cmd.Context())
	if u == nil {
		fmt.Fprintln(out, dimStyle.Render("Not logged in. Run 'neuroad login' first."))
		return nil
	}
	fmt.Fprintf(out, "👤 %s\n", u.Name)
	fmt.Fprintf(out, "   Email: %s\n", u.Email)
	fmt.Fprintf(out, "   ID:    %s\n", u.UserID)
	return nil
}
