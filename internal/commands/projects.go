package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/export"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/projects"
	"github.com/neuroad/neuroad-cli/internal/wizard"
)

var (
	deleteYes  bool
	exportPath string
)

var ProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List and manage your projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectsList,
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project with its generated content",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsShow,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

var projectsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write a project's mockups to a standalone HTML page",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsExport,
}

func init() {
	projectsDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking")
	projectsExportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "Output file (default <company>-<id>.html)")

	ProjectsCmd.AddCommand(projectsListCmd, projectsShowCmd, projectsDeleteCmd, projectsExportCmd)
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	lang := e.lang.Lang()

	items, err := projects.NewList(e.client).Load(cmd.Context())
	if err != nil {
		return authFailure(out, err)
	}

	if len(items) == 0 {
		fmt.Fprintln(out, "📋 "+i18n.Translate(lang, i18n.KeyNoProjects))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Create one with: neuroad new")
		return nil
	}

	fmt.Fprintln(out, "📋 "+i18n.Translate(lang, i18n.KeyProjects)+":")
	fmt.Fprintln(out)
	for i, p := range items {
		b := projects.StatusBadge(p.Status, lang)
		fmt.Fprintf(out, "%d. %s %s\n", i+1, p.CompanyName, badge(b.Tone, b.Label))
		fmt.Fprintf(out, "   ID: %s\n", p.ID)
		fmt.Fprintf(out, "   %s: %s\n", i18n.Translate(lang, i18n.KeyContentType), i18n.Translate(lang, wizard.ContentTypeLabels[p.ContentType]))
		if t, ok := p.Created(); ok {
			fmt.Fprintf(out, "   %s: %s\n", i18n.Translate(lang, i18n.KeyCreatedAt), i18n.FormatDate(lang, t))
		}
		fmt.Fprintf(out, "   🖼  %d  🎬 %d\n", len(p.GeneratedImages), len(p.GeneratedVideos))
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Total: %d projects\n", len(items))
	return nil
}

func runProjectsShow(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	d, err := loadProject(cmd, e, args[0])
	if err != nil {
		return authFailure(out, err)
	}
	printProject(out, e, d)
	return nil
}

func printProject(out io.Writer, e *env, d *projects.Detail) {
	lang := e.lang.Lang()
	t := func(k i18n.Key) string { return i18n.Translate(lang, k) }
	p := d.Project()

	b := projects.StatusBadge(p.Status, lang)
	fmt.Fprintln(out, titleStyle.Render(p.CompanyName)+" "+badge(b.Tone, b.Label))

	fmt.Fprintf(out, "%s: %s\n", t(i18n.KeyContentType), t(wizard.ContentTypeLabels[p.ContentType]))
	if keys, ok := wizard.GoalLabels[p.DesignGoal]; ok {
		fmt.Fprintf(out, "%s: %s\n", t(i18n.KeyDesignGoal), t(keys[0]))
	}
	if pl := d.Platform(); pl != nil {
		fmt.Fprintf(out, "%s: %s (%dx%d)\n", t(i18n.KeyPlatform), i18n.PickFor(lang, pl.Name, pl.NameEn), pl.Width, pl.Height)
	}
	if s := d.Strategy(); s != nil {
		fmt.Fprintf(out, "%s: %s %s\n", t(i18n.KeyPsychStrategy), s.Glyph(), i18n.PickFor(lang, s.NameAr, s.NameEn))
	}
	if ts, ok := p.Created(); ok {
		fmt.Fprintf(out, "%s: %s\n", t(i18n.KeyCreatedAt), i18n.FormatDate(lang, ts))
	}
	if p.CompanyDescription != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, dimStyle.Render(p.CompanyDescription))
	}

	section := func(title string, refs []string) {
		if len(refs) == 0 {
			return
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, stepStyle.Render(title))
		for i, ref := range refs {
			fmt.Fprintf(out, "  %d. %s\n", i+1, e.client.AssetURL(ref))
		}
	}
	section(t(i18n.KeyReferenceImages), p.Images)
	section(t(i18n.KeyGeneratedImages), p.GeneratedImages)
	section(t(i18n.KeyGeneratedVideos), p.GeneratedVideos)

	if caption, ok := d.Caption(lang); ok {
		fmt.Fprintln(out)
		fmt.Fprintln(out, stepStyle.Render(t(i18n.KeyGeneratedCaption)))
		fmt.Fprintln(out, boxStyle.Render(caption))
	}
	if len(p.GeneratedImages) == 0 && len(p.GeneratedVideos) == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, dimStyle.Render(t(i18n.KeyNoContent)))
	}
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	id := args[0]

	confirmDelete := func() bool {
		if deleteYes {
			return true
		}
		p := newPrompter()
		defer p.Close()
		return confirm(p, i18n.Translate(e.lang.Lang(), i18n.KeyConfirmDelete))
	}

	err = projects.NewList(e.client).Delete(cmd.Context(), id, confirmDelete)
	switch {
	case errors.Is(err, projects.ErrDeclined):
		fmt.Fprintln(out, dimStyle.Render("Nothing deleted."))
		return nil
	case err != nil:
		return authFailure(out, err)
	}
	fmt.Fprintln(out, successStyle.Render("✅ "+i18n.Translate(e.lang.Lang(), i18n.KeyProjectDeleted)))
	return nil
}

func runProjectsExport(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	d, err := loadProject(cmd, e, args[0])
	if err != nil {
		return authFailure(out, err)
	}
	p := d.Project()

	path := exportPath
	if path == "" {
		path = export.FileName(p)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".html") {
		path = filepath.Join(path, export.FileName(p))
	}

	err = export.WriteFile(path, p, export.Options{
		Lang:     e.lang.Lang(),
		Origin:   e.client.Origin(),
		Strategy: d.Strategy(),
		Platform: d.Platform(),
	})
	if err != nil {
		return fmt.Errorf("failed to export project: %w", err)
	}
	fmt.Fprintln(out, successStyle.Render("✅ Exported to "+path))
	return nil
}

// loadProject fetches one project with its catalogs.
func loadProject(cmd *cobra.Command, e *env, id string) (*projects.Detail, error) {
	d := projects.NewDetail(e.client, e.catalog)
	if err := d.Load(cmd.Context(), id); err != nil {
		return nil, err
	}
	return d, nil
}
