package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/wizard"
)

type newOptions struct {
	plain       bool
	extract     bool
	contentType string
	url         string
	name        string
	description string
	strengths   []string
	images      []string
	goal        string
	platform    string
	strategy    string
	primary     string
	secondary   string
	accent      string
}

var newOpts newOptions

var NewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a project",
	Long: `Create a project by filling in the five wizard steps.

Every step can be given as flags. With --plain, anything missing is asked
for at the prompt; otherwise a missing required value is an error.

Examples:
  neuroad new --plain
  neuroad new --content-type store --url https://acme.test --extract \
      --goal direct_sale --platform post_square --strategy scarcity`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	f := NewCmd.Flags()
	f.BoolVar(&newOpts.plain, "plain", false, "Prompt for missing values line by line")
	f.BoolVar(&newOpts.extract, "extract", false, "Analyze --url and prefill company fields")
	f.StringVar(&newOpts.contentType, "content-type", "", "store, service_website, specific_product or specific_service")
	f.StringVar(&newOpts.url, "url", "", "Website URL")
	f.StringVar(&newOpts.name, "name", "", "Company name")
	f.StringVar(&newOpts.description, "description", "", "Company description")
	f.StringArrayVar(&newOpts.strengths, "strength", nil, "A strength (repeatable)")
	f.StringArrayVar(&newOpts.images, "image", nil, "Reference image path (repeatable, max 4)")
	f.StringVar(&newOpts.goal, "goal", "", "direct_sale, brand_awareness or educational")
	f.StringVar(&newOpts.platform, "platform", "", "Platform id")
	f.StringVar(&newOpts.strategy, "strategy", "", "Psychological strategy id")
	f.StringVar(&newOpts.primary, "primary", "", "Primary brand color")
	f.StringVar(&newOpts.secondary, "secondary", "", "Secondary brand color")
	f.StringVar(&newOpts.accent, "accent", "", "Accent brand color")
}

func runNew(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	lang := e.lang.Lang()

	b := &builder{w: wizard.New(e.client), opts: newOpts, lang: lang, out: out}
	if newOpts.plain {
		b.p = newPrompter()
		defer b.p.Close()
	}

	// Step 1
	fmt.Fprintln(out, stepStyle.Render(stepTitle(lang, wizard.StepContentType)))
	if err := b.contentType(); err != nil {
		return err
	}

	// Step 2
	fmt.Fprintln(out, stepStyle.Render(stepTitle(lang, wizard.StepAnalysis)))
	if err := b.analysis(func() error {
		data, err := b.w.Extract(ctx)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render(i18n.Translate(lang, i18n.KeyExtractFailed)))
			return err
		}
		fmt.Fprintln(out, successStyle.Render(i18n.Translate(lang, i18n.KeyExtractSucceeded)+": "+data.Title))
		return nil
	}); err != nil {
		return err
	}

	// Step 3
	fmt.Fprintln(out, stepStyle.Render(stepTitle(lang, wizard.StepImages)))
	paths, err := b.imagePaths()
	if err != nil {
		return err
	}
	if len(paths) > 0 {
		results, err := b.w.Upload(ctx, paths)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("❌ %s: %v", r.Path, r.Err)))
				continue
			}
			fmt.Fprintln(out, successStyle.Render("✅ "+r.Path))
		}
		if failed := wizard.Failed(results); len(failed) > 0 {
			return fmt.Errorf("%d of %d images failed to upload", len(failed), len(results))
		}
	}
	if _, err := b.w.Next(); err != nil {
		return err
	}

	// Step 4
	fmt.Fprintln(out, stepStyle.Render(stepTitle(lang, wizard.StepCampaign)))
	platforms, err := e.catalog.Platforms(ctx)
	if err != nil {
		return authFailure(out, err)
	}
	if err := b.campaign(platforms); err != nil {
		return err
	}

	// Step 5
	fmt.Fprintln(out, stepStyle.Render(stepTitle(lang, wizard.StepStrategy)))
	strategies, err := e.catalog.Strategies(ctx)
	if err != nil {
		return authFailure(out, err)
	}
	if err := b.strategy(strategies); err != nil {
		return err
	}

	project, err := b.w.Submit(ctx, string(lang))
	if err != nil {
		fmt.Fprintln(out, errorStyle.Render(i18n.Translate(lang, i18n.KeyProjectCreateFailed)))
		return authFailure(out, err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, successStyle.Render("✅ "+i18n.Translate(lang, i18n.KeyProjectCreated)))
	fmt.Fprintf(out, "   ID: %s\n", project.ID)
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Next: neuroad generate images %s", project.ID)))
	return nil
}

func stepTitle(l i18n.Lang, s wizard.Step) string {
	return fmt.Sprintf("%d/%d %s", s.Number(), len(wizard.Steps), i18n.Translate(l, s.Label()))
}

// builder fills a wizard from flags, asking p for anything missing.
type builder struct {
	w    *wizard.Wizard
	opts newOptions
	lang i18n.Lang
	out  io.Writer
	p    prompter
}

// value returns the flag value, or asks for it when prompting.
func (b *builder) value(flag string, label i18n.Key, def string) (string, error) {
	if flag != "" || b.p == nil {
		return flag, nil
	}
	return ask(b.p, i18n.Translate(b.lang, label), def)
}

func (b *builder) incomplete(s wizard.Step, what string) error {
	return fmt.Errorf("step %d (%s): %s is required: %w", s.Number(), s, what, wizard.ErrStepIncomplete)
}

func (b *builder) contentType() error {
	ct := api.ContentType(b.opts.contentType)
	if ct == "" && b.p != nil {
		labels := make([]string, len(api.ContentTypes))
		values := make([]string, len(api.ContentTypes))
		for i, c := range api.ContentTypes {
			labels[i] = i18n.Translate(b.lang, wizard.ContentTypeLabels[c])
			values[i] = string(c)
		}
		i, err := choose(b.p, i18n.Translate(b.lang, i18n.KeyContentType), labels, values)
		if err != nil {
			return err
		}
		ct = api.ContentTypes[i]
	}
	if ct == "" {
		return b.incomplete(wizard.StepContentType, "--content-type")
	}
	if _, ok := wizard.ContentTypeLabels[ct]; !ok {
		return fmt.Errorf("unknown content type %q", ct)
	}
	b.w.SetContentType(ct)
	_, err := b.w.Next()
	return err
}

func (b *builder) analysis(extract func() error) error {
	url, err := b.value(b.opts.url, i18n.KeyWebsiteURL, "")
	if err != nil {
		return err
	}
	b.w.SetWebsiteURL(url)

	doExtract := b.opts.extract
	if url != "" && !doExtract && b.p != nil {
		doExtract = confirm(b.p, i18n.Translate(b.lang, i18n.KeyExtractData)+"?")
	}
	if doExtract {
		if err := extract(); err != nil && !errors.Is(err, wizard.ErrURLRequired) {
			// A failed analysis leaves the form unchanged; carry on by hand.
			fmt.Fprintln(b.out, dimStyle.Render(err.Error()))
		}
	}
	form := b.w.Form()

	name, err := b.value(b.opts.name, i18n.KeyCompanyName, form.CompanyName)
	if err != nil {
		return err
	}
	if name != "" {
		b.w.SetCompanyName(name)
	}
	desc, err := b.value(b.opts.description, i18n.KeyCompanyDescription, form.Description)
	if err != nil {
		return err
	}
	if desc != "" {
		b.w.SetDescription(desc)
	}

	strengths := b.opts.strengths
	if len(strengths) == 0 && b.p != nil && !hasStrength(form.Strengths) {
		for len(strengths) < wizard.MaxStrengths {
			s, err := ask(b.p, fmt.Sprintf("%s %d", i18n.Translate(b.lang, i18n.KeyStrength), len(strengths)+1), "")
			if err != nil {
				return err
			}
			if s == "" {
				break
			}
			strengths = append(strengths, s)
		}
	}
	if err := b.setStrengths(strengths); err != nil {
		return err
	}

	if !b.w.CanAdvance() {
		return b.incomplete(wizard.StepAnalysis, "--name and --description")
	}
	_, err = b.w.Next()
	return err
}

func hasStrength(all []string) bool {
	for _, s := range all {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// setStrengths replaces the strengths list. An empty list keeps what an
// extraction filled in.
func (b *builder) setStrengths(strengths []string) error {
	if len(strengths) == 0 {
		return nil
	}
	if len(strengths) > wizard.MaxStrengths {
		return wizard.ErrTooManyStrengths
	}
	for len(b.w.Form().Strengths) > 1 {
		if err := b.w.RemoveStrength(len(b.w.Form().Strengths) - 1); err != nil {
			return err
		}
	}
	for i, s := range strengths {
		if i > 0 {
			if err := b.w.AddStrength(); err != nil {
				return err
			}
		}
		if err := b.w.SetStrength(i, s); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) imagePaths() ([]string, error) {
	if len(b.opts.images) > 0 || b.p == nil {
		return b.opts.images, nil
	}
	answer, err := ask(b.p, i18n.Translate(b.lang, i18n.KeyUploadPrompt), "")
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, p := range strings.Split(answer, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) > wizard.MaxImages {
		return nil, wizard.ErrTooManyImages
	}
	return paths, nil
}

func (b *builder) campaign(platforms []api.Platform) error {
	goal := api.DesignGoal(b.opts.goal)
	if goal == "" && b.p != nil {
		labels := make([]string, len(api.DesignGoals))
		values := make([]string, len(api.DesignGoals))
		for i, g := range api.DesignGoals {
			keys := wizard.GoalLabels[g]
			labels[i] = i18n.Translate(b.lang, keys[0]) + dimStyle.Render(" - "+i18n.Translate(b.lang, keys[1]))
			values[i] = string(g)
		}
		i, err := choose(b.p, i18n.Translate(b.lang, i18n.KeyDesignGoal), labels, values)
		if err != nil {
			return err
		}
		goal = api.DesignGoals[i]
	}
	if goal != "" {
		if _, ok := wizard.GoalLabels[goal]; !ok {
			return fmt.Errorf("unknown design goal %q", goal)
		}
		b.w.SetDesignGoal(goal)
	}

	platform := b.opts.platform
	if platform == "" && b.p != nil {
		labels := make([]string, len(platforms))
		values := make([]string, len(platforms))
		for i, p := range platforms {
			labels[i] = fmt.Sprintf("%s (%dx%d)", i18n.PickFor(b.lang, p.Name, p.NameEn), p.Width, p.Height)
			values[i] = p.ID
		}
		i, err := choose(b.p, i18n.Translate(b.lang, i18n.KeySelectPlatform), labels, values)
		if err != nil {
			return err
		}
		platform = platforms[i].ID
	}
	if platform != "" {
		if api.FindPlatform(platforms, platform) == nil {
			return fmt.Errorf("unknown platform %q", platform)
		}
		b.w.SetPlatform(platform)
	}

	colors := b.w.Form().Colors
	var err error
	if colors.Primary, err = b.color(b.opts.primary, i18n.KeyPrimaryColor, colors.Primary); err != nil {
		return err
	}
	if colors.Secondary, err = b.color(b.opts.secondary, i18n.KeySecondaryColor, colors.Secondary); err != nil {
		return err
	}
	if colors.Accent, err = b.color(b.opts.accent, i18n.KeyAccentColor, colors.Accent); err != nil {
		return err
	}
	b.w.SetColors(colors)

	if !b.w.CanAdvance() {
		return b.incomplete(wizard.StepCampaign, "--goal and --platform")
	}
	_, err = b.w.Next()
	return err
}

func (b *builder) color(flag string, label i18n.Key, current string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if b.p == nil {
		return current, nil
	}
	return ask(b.p, i18n.Translate(b.lang, label), current)
}

func (b *builder) strategy(strategies []api.Strategy) error {
	id := b.opts.strategy
	if id == "" && b.p != nil {
		labels := make([]string, len(strategies))
		values := make([]string, len(strategies))
		for i, s := range strategies {
			labels[i] = s.Glyph() + " " + i18n.PickFor(b.lang, s.NameAr, s.NameEn) +
				dimStyle.Render(" - "+i18n.PickFor(b.lang, s.DescriptionAr, s.DescriptionEn))
			values[i] = s.ID
		}
		i, err := choose(b.p, i18n.Translate(b.lang, i18n.KeySelectStrategy), labels, values)
		if err != nil {
			return err
		}
		id = strategies[i].ID
	}
	if id == "" {
		return b.incomplete(wizard.StepStrategy, "--strategy")
	}
	if api.FindStrategy(strategies, id) == nil {
		return fmt.Errorf("unknown strategy %q", id)
	}
	b.w.SetStrategy(id)
	return nil
}
