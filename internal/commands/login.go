package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/auth"
)

var (
	pasteLogin   bool
	noBrowser    bool
	loginTimeout time.Duration
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to NeuroAd",
	Long: `Sign in with your NeuroAd account.

A browser opens on the identity provider. After you sign in it returns to a
local page that hands the session back to this terminal.

On a machine without a browser use --paste: open the printed link anywhere,
then paste the address you were sent back to.`,
	RunE: runLogin,
}

func init() {
	LoginCmd.Flags().BoolVar(&pasteLogin, "paste", false, "Paste the return address instead of running a local callback page")
	LoginCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Don't automatically open browser")
	LoginCmd.Flags().DurationVar(&loginTimeout, "timeout", 5*time.Minute, "How long to wait for the browser")
}

func runLogin(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render("🧠 NeuroAd login"))

	var returned string
	if pasteLogin {
		returned, err = pasteReturn(out, e.cfg.AuthURL)
	} else {
		returned, err = awaitCallback(cmd.Context(), out, e.cfg.AuthURL)
	}
	if err != nil {
		return err
	}

	if e.auth.HandleCallback(cmd.Context(), returned) != auth.RouteProjects {
		return errors.New("login failed: the session could not be exchanged")
	}

	if u := e.auth.User(); u != nil {
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Signed in as %s (%s)", u.Name, u.Email)))
	} else {
		fmt.Fprintln(out, successStyle.Render("✅ Signed in"))
	}
	fmt.Fprintln(out, dimStyle.Render("Run 'neuroad' to open your projects."))
	return nil
}

func awaitCallback(parent context.Context, out io.Writer, provider string) (string, error) {
	srv, err := auth.StartCallbackServer("127.0.0.1:0")
	if err != nil {
		return "", err
	}
	defer srv.Close()

	link := auth.LoginURL(provider, srv.ReturnURL())
	fmt.Fprintln(out, stepStyle.Render("Open this link to sign in:"))
	fmt.Fprintln(out, boxStyle.Render(link))

	if !noBrowser {
		if err := auth.OpenBrowser(link); err != nil {
			fmt.Fprintln(out, dimStyle.Render("Could not open a browser, open the link manually."))
		}
	}
	fmt.Fprintln(out, dimStyle.Render("Waiting for login to complete in the browser..."))

	ctx, cancel := context.WithTimeout(parent, loginTimeout)
	defer cancel()

	returned, err := srv.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return "", fmt.Errorf("login timed out after %s", loginTimeout)
	}
	return returned, err
}

func pasteReturn(out io.Writer, provider string) (string, error) {
	// No page to return to: the provider still appends #session_id=...
	// to whatever address it is given.
	link := auth.LoginURL(provider, "http://localhost/auth/callback")
	fmt.Fprintln(out, stepStyle.Render("Open this link to sign in:"))
	fmt.Fprintln(out, boxStyle.Render(link))
	if !noBrowser {
		_ = auth.OpenBrowser(link)
	}

	p := newPrompter()
	defer p.Close()
	returned, err := ask(p, "Paste the address you were sent to", "")
	if err != nil {
		return "", err
	}
	if _, ok := auth.ExtractSessionID(returned); !ok {
		return "", errors.New("login failed: no session_id in the pasted address")
	}
	return returned, nil
}
