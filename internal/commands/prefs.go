package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/theme"
)

var LangCmd = &cobra.Command{
	Use:   "lang [ar|en]",
	Short: "Set or toggle the interface language",
	Long: `Set the interface language. Without an argument, toggle between
Arabic and English. A running TUI picks up the change immediately.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"ar", "en"},
	RunE:      runLang,
}

var ThemeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Set or toggle the color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE:      runTheme,
}

func runLang(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		e.lang.Toggle()
	} else {
		l, err := i18n.ParseLang(args[0])
		if err != nil {
			return err
		}
		e.lang.Set(l)
	}

	l := e.lang.Lang()
	fmt.Fprintf(cmd.OutOrStdout(), "✅ language: %s (%s)\n", l, l.Direction())
	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		e.theme.Toggle()
	} else {
		m, err := theme.ParseMode(args[0])
		if err != nil {
			return err
		}
		e.theme.Set(m)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ %s: %s\n", i18n.Translate(e.lang.Lang(), i18n.KeyTheme), e.theme.Mode())
	return nil
}
