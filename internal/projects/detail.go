package projects

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/logging"
)

// VariationCount is how many images each generation request asks for.
const VariationCount = 3

const (
	DefaultDuration  = 8
	DefaultVideoSize = api.VideoPortrait
)

var (
	ErrInvalidDuration  = errors.New("video duration must be 4, 8 or 12 seconds")
	ErrInvalidSize      = errors.New("video size must be portrait, square or landscape")
	ErrGenerationFailed = errors.New("generation was not successful")
	ErrBusy             = errors.New("a generation is already running")
	ErrNotLoaded        = errors.New("project not loaded")
)

// Durations lists the accepted video lengths in seconds.
var Durations = []int{4, 8, 12}

// VideoSizes lists the accepted video aspect variants.
var VideoSizes = []api.VideoSize{api.VideoPortrait, api.VideoSquare, api.VideoLandscape}

// VideoOptions configures a video generation. Zero values take the defaults.
type VideoOptions struct {
	Duration     int
	Size         api.VideoSize
	Instructions string
}

func (o VideoOptions) normalize() (VideoOptions, error) {
	if o.Duration == 0 {
		o.Duration = DefaultDuration
	}
	if o.Size == "" {
		o.Size = DefaultVideoSize
	}
	okDuration := false
	for _, d := range Durations {
		if d == o.Duration {
			okDuration = true
		}
	}
	if !okDuration {
		return o, ErrInvalidDuration
	}
	okSize := false
	for _, s := range VideoSizes {
		if s == o.Size {
			okSize = true
		}
	}
	if !okSize {
		return o, ErrInvalidSize
	}
	return o, nil
}

// Generation identifies the request in flight.
type Generation int

const (
	Idle Generation = iota
	GeneratingImages
	GeneratingVideo
)

// Detail is one project together with the catalogs its view needs.
type Detail struct {
	backend Backend
	catalog api.CatalogSource
	logger  *slog.Logger

	mu         sync.RWMutex
	project    *api.Project
	strategies []api.Strategy
	platforms  []api.Platform
	tips       []api.MarketingTip
	generating Generation
}

func NewDetail(backend Backend, catalog api.CatalogSource) *Detail {
	return &Detail{
		backend: backend,
		catalog: catalog,
		logger:  logging.WithComponent("projects"),
	}
}

// Load fetches the project and the strategy, platform and tip catalogs in
// parallel. Any failure fails the whole load and leaves the view empty.
func (d *Detail) Load(ctx context.Context, id string) error {
	var (
		project    *api.Project
		strategies []api.Strategy
		platforms  []api.Platform
		tips       []api.MarketingTip
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		project, err = d.backend.GetProject(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		strategies, err = d.catalog.Strategies(ctx)
		return err
	})
	g.Go(func() (err error) {
		platforms, err = d.catalog.Platforms(ctx)
		return err
	})
	g.Go(func() (err error) {
		tips, err = d.catalog.MarketingTips(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logging.WithProject(d.logger, id).Error("failed to load project", "error", err)
		return fmt.Errorf("load project %s: %w", id, err)
	}

	d.mu.Lock()
	d.project = project
	d.strategies = strategies
	d.platforms = platforms
	d.tips = tips
	d.mu.Unlock()
	return nil
}

// Reload re-fetches the project in full. On failure the previous copy stays.
func (d *Detail) Reload(ctx context.Context) error {
	id := d.ID()
	if id == "" {
		return ErrNotLoaded
	}
	project, err := d.backend.GetProject(ctx, id)
	if err != nil {
		return fmt.Errorf("reload project %s: %w", id, err)
	}
	d.mu.Lock()
	d.project = project
	d.mu.Unlock()
	return nil
}

// ID returns the loaded project's id, or "".
func (d *Detail) ID() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.project == nil {
		return ""
	}
	return d.project.ID
}

// Project returns a copy of the loaded project, or nil.
func (d *Detail) Project() *api.Project {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.project == nil {
		return nil
	}
	p := *d.project
	return &p
}

// Strategy returns the project's strategy from the loaded catalog.
func (d *Detail) Strategy() *api.Strategy {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.project == nil {
		return nil
	}
	return api.FindStrategy(d.strategies, d.project.PsychologicalStrategyID)
}

// Platform returns the project's platform from the loaded catalog.
func (d *Detail) Platform() *api.Platform {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.project == nil {
		return nil
	}
	return api.FindPlatform(d.platforms, d.project.Platform)
}

// Tips returns the marketing tips shown while generating.
func (d *Detail) Tips() []api.MarketingTip {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]api.MarketingTip(nil), d.tips...)
}

// Generating reports which generation, if any, is in flight.
func (d *Detail) Generating() Generation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.generating
}

func (d *Detail) begin(kind Generation) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.project == nil {
		return "", ErrNotLoaded
	}
	if d.generating != Idle {
		return "", ErrBusy
	}
	d.generating = kind
	return d.project.ID, nil
}

func (d *Detail) end() {
	d.mu.Lock()
	d.generating = Idle
	d.mu.Unlock()
}

// GenerateImages asks for a batch of image variations and re-fetches the
// project on success. The call has no client-side timeout.
func (d *Detail) GenerateImages(ctx context.Context, instructions string) error {
	id, err := d.begin(GeneratingImages)
	if err != nil {
		return err
	}
	defer d.end()

	logger := logging.WithProject(d.logger, id)
	logger.Info("generating images", "variations", VariationCount)

	resp, err := d.backend.GenerateContent(ctx, &api.GenerateContentRequest{
		ProjectID:          id,
		VariationCount:     VariationCount,
		CustomInstructions: api.OptionalString(instructions),
	})
	if err == nil && !resp.Success {
		err = ErrGenerationFailed
	}
	if err != nil {
		logger.Error("image generation failed", "error", err)
		return fmt.Errorf("generate images: %w", err)
	}

	return d.Reload(ctx)
}

// GenerateVideo asks for one video and re-fetches the project on success.
// Invalid options are rejected before any request is made.
func (d *Detail) GenerateVideo(ctx context.Context, opts VideoOptions) error {
	opts, err := opts.normalize()
	if err != nil {
		return err
	}
	id, err := d.begin(GeneratingVideo)
	if err != nil {
		return err
	}
	defer d.end()

	logger := logging.WithProject(d.logger, id)
	logger.Info("generating video", "duration", opts.Duration, "size", opts.Size)

	resp, err := d.backend.GenerateVideo(ctx, &api.GenerateVideoRequest{
		ProjectID:          id,
		Duration:           opts.Duration,
		VideoSize:          opts.Size,
		CustomInstructions: api.OptionalString(opts.Instructions),
	})
	if err == nil && !resp.Success {
		err = ErrGenerationFailed
	}
	if err != nil {
		logger.Error("video generation failed", "error", err)
		return fmt.Errorf("generate video: %w", err)
	}

	return d.Reload(ctx)
}

// Delete removes the loaded project after confirmation.
func (d *Detail) Delete(ctx context.Context, confirm ConfirmFunc) error {
	id := d.ID()
	if id == "" {
		return ErrNotLoaded
	}
	if confirm == nil || !confirm() {
		return ErrDeclined
	}
	if err := d.backend.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	d.mu.Lock()
	d.project = nil
	d.mu.Unlock()
	return nil
}

// Caption returns the first generated caption in l with its hashtags.
func (d *Detail) Caption(l i18n.Lang) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.project == nil {
		return "", false
	}
	return CaptionText(d.project, l)
}

// CaptionText formats p's first caption for copying.
func CaptionText(p *api.Project, l i18n.Lang) (string, bool) {
	if p == nil || len(p.GeneratedCaptions) == 0 {
		return "", false
	}
	c := p.GeneratedCaptions[0]
	text := c.CaptionEn
	if l == i18n.Arabic {
		text = c.CaptionAr
	}
	if len(c.Hashtags) > 0 {
		text += "\n\n" + strings.Join(c.Hashtags, " ")
	}
	return text, true
}
