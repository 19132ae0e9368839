package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/i18n"
)

var CatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the strategies, platforms and marketing tips the backend offers",
}

var catalogStrategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List psychological strategies",
	Args:  cobra.NoArgs,
	RunE:  runCatalogStrategies,
}

var catalogPlatformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List target platforms and sizes",
	Args:  cobra.NoArgs,
	RunE:  runCatalogPlatforms,
}

var catalogTipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "List marketing tips",
	Args:  cobra.NoArgs,
	RunE:  runCatalogTips,
}

func init() {
	CatalogCmd.AddCommand(catalogStrategiesCmd, catalogPlatformsCmd, catalogTipsCmd)
}

func runCatalogStrategies(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	lang := e.lang.Lang()

	strategies, err := e.catalog.Strategies(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render("🧠 "+i18n.Translate(lang, i18n.KeyPsychStrategy)))
	for _, s := range strategies {
		fmt.Fprintf(out, "%s %s %s\n", s.Glyph(), i18n.PickFor(lang, s.NameAr, s.NameEn), dimStyle.Render("("+s.ID+")"))
		fmt.Fprintf(out, "   %s\n", i18n.PickFor(lang, s.DescriptionAr, s.DescriptionEn))
		if v := i18n.PickFor(lang, s.VisualInstructionsAr, s.VisualInstructions); v != "" {
			fmt.Fprintf(out, "   %s\n", dimStyle.Render(i18n.Translate(lang, i18n.KeyVisualEffect)+": "+v))
		}
	}
	return nil
}

func runCatalogPlatforms(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	lang := e.lang.Lang()

	platforms, err := e.catalog.Platforms(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render("📐 "+i18n.Translate(lang, i18n.KeyPlatform)))
	for _, p := range platforms {
		fmt.Fprintf(out, "%-16s %s  %dx%d  %s\n", p.ID, i18n.PickFor(lang, p.Name, p.NameEn), p.Width, p.Height, dimStyle.Render(p.Aspect))
	}
	return nil
}

func runCatalogTips(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	lang := e.lang.Lang()

	tips, err := e.catalog.MarketingTips(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render("💡 "+i18n.Translate(lang, i18n.KeyGeneratingTip)))
	for i, t := range tips {
		fmt.Fprintf(out, "%d. %s\n", i+1, i18n.PickFor(lang, t.Ar, t.En))
	}
	return nil
}
