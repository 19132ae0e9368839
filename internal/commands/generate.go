package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/clipboard"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/projects"
	"github.com/neuroad/neuroad-cli/internal/tui/components"
)

var (
	genInstructions string
	videoDuration   int
	videoSize       string
	copyCaption     bool
)

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate ad images or a video for a project",
	Long: `Generate ad content for a project.

Generation runs on the backend and can take minutes, a video up to ten.
The command waits for it to finish and prints the updated project.`,
}

var generateImagesCmd = &cobra.Command{
	Use:   "images <id>",
	Short: "Generate 3 image variations with a caption",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerateImages,
}

var generateVideoCmd = &cobra.Command{
	Use:   "video <id>",
	Short: "Generate a video",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerateVideo,
}

var CaptionCmd = &cobra.Command{
	Use:   "caption <id>",
	Short: "Print a project's generated caption in the current language",
	Args:  cobra.ExactArgs(1),
	RunE:  runCaption,
}

func init() {
	for _, c := range []*cobra.Command{generateImagesCmd, generateVideoCmd} {
		c.Flags().StringVar(&genInstructions, "instructions", "", "Custom instructions for the generator")
	}
	generateVideoCmd.Flags().IntVar(&videoDuration, "duration", projects.DefaultDuration, "Video length in seconds: 4, 8 or 12")
	generateVideoCmd.Flags().StringVar(&videoSize, "size", string(projects.DefaultVideoSize), "portrait, square or landscape")
	CaptionCmd.Flags().BoolVar(&copyCaption, "copy", false, "Also copy the caption to the clipboard")

	GenerateCmd.AddCommand(generateImagesCmd, generateVideoCmd)
}

func runGenerateImages(cmd *cobra.Command, args []string) error {
	return generate(cmd, args[0], i18n.KeyImagesGenerated, i18n.KeyImagesFailed, func(ctx context.Context, d *projects.Detail) error {
		return d.GenerateImages(ctx, genInstructions)
	})
}

func runGenerateVideo(cmd *cobra.Command, args []string) error {
	opts := projects.VideoOptions{
		Duration:     videoDuration,
		Size:         api.VideoSize(videoSize),
		Instructions: genInstructions,
	}
	return generate(cmd, args[0], i18n.KeyVideoGenerated, i18n.KeyVideoFailed, func(ctx context.Context, d *projects.Detail) error {
		return d.GenerateVideo(ctx, opts)
	})
}

func generate(cmd *cobra.Command, id string, done, failed i18n.Key, run func(context.Context, *projects.Detail) error) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	lang := e.lang.Lang()

	d, err := loadProject(cmd, e, id)
	if err != nil {
		return authFailure(out, err)
	}

	fmt.Fprintln(out, stepStyle.Render("⏳ "+i18n.Translate(lang, i18n.KeyCreatingAd)))
	fmt.Fprintln(out, dimStyle.Render(i18n.Translate(lang, i18n.KeyMayTakeMinutes)))

	ctx, stop := context.WithCancel(cmd.Context())
	tipsDone := make(chan struct{})
	go func() {
		defer close(tipsDone)
		printTips(ctx, out, lang, d.Tips())
	}()

	err = run(cmd.Context(), d)
	stop()
	<-tipsDone

	if err != nil {
		fmt.Fprintln(out, errorStyle.Render("❌ "+i18n.Translate(lang, failed)))
		return authFailure(out, err)
	}
	fmt.Fprintln(out, successStyle.Render("✅ "+i18n.Translate(lang, done)))
	fmt.Fprintln(out)
	printProject(out, e, d)
	return nil
}

// printTips prints one marketing tip per interval until ctx is done.
func printTips(ctx context.Context, out io.Writer, lang i18n.Lang, tips []api.MarketingTip) {
	if len(tips) == 0 {
		return
	}
	r := components.NewTipRotator(tips)
	ticker := time.NewTicker(components.TipInterval)
	defer ticker.Stop()

	for {
		fmt.Fprintln(out, dimStyle.Render("💡 "+i18n.Translate(lang, i18n.KeyGeneratingTip)+": "+r.Current(lang)))
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Advance()
		}
	}
}

func runCaption(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	lang := e.lang.Lang()

	d, err := loadProject(cmd, e, args[0])
	if err != nil {
		return authFailure(out, err)
	}
	text, ok := d.Caption(lang)
	if !ok {
		fmt.Fprintln(out, dimStyle.Render(i18n.Translate(lang, i18n.KeyNoContent)))
		return nil
	}
	fmt.Fprintln(out, text)

	if copyCaption {
		method, err := clipboard.New().Copy(text)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.Translate(lang, i18n.KeyCopyFailed), err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), dimStyle.Render(fmt.Sprintf("%s (%s)", i18n.Translate(lang, i18n.KeyCaptionCopied), method)))
	}
	return nil
}
