// Package wizard implements the five-step project creation flow.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/logging"
)

const (
	// MaxImages caps the reference images attached to a project.
	MaxImages = 4
	// MaxStrengths caps the strengths list.
	MaxStrengths = 6
	// scrapedServices is how many scraped services become strengths.
	scrapedServices = 4
)

// Default brand colors used until the user or an extraction changes them.
const (
	DefaultPrimary   = "#000000"
	DefaultSecondary = "#FFFFFF"
	DefaultAccent    = "#3B82F6"
)

var (
	ErrStepIncomplete   = errors.New("current step is incomplete")
	ErrFirstStep        = errors.New("already at the first step")
	ErrLastStep         = errors.New("already at the last step")
	ErrTooManyImages    = fmt.Errorf("at most %d images are allowed", MaxImages)
	ErrTooManyStrengths = fmt.Errorf("at most %d strengths are allowed", MaxStrengths)
	ErrLastStrength     = errors.New("at least one strength is required")
	ErrURLRequired      = errors.New("website url is required")
	ErrOutOfRange       = errors.New("index out of range")
)

// Backend is the subset of the API client the wizard calls.
type Backend interface {
	Scrape(ctx context.Context, websiteURL string) (*api.ScrapedData, error)
	Upload(ctx context.Context, filename string, r io.Reader) (*api.UploadResponse, error)
	CreateProject(ctx context.Context, req *api.CreateProjectRequest) (*api.Project, error)
}

// Form is a snapshot of everything the wizard has collected.
type Form struct {
	Step        Step
	ContentType api.ContentType
	WebsiteURL  string
	CompanyName string
	Description string
	Strengths   []string
	Images      []string
	DesignGoal  api.DesignGoal
	Platform    string
	StrategyID  string
	Colors      api.BrandColors
	Scraped     *api.ScrapedData
}

// Wizard holds the in-progress project. All methods are safe for
// concurrent use so network calls can run off the UI loop.
type Wizard struct {
	backend Backend
	workers int
	logger  *slog.Logger

	mu   sync.RWMutex
	form Form
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithUploadWorkers sets the size of the upload pool.
func WithUploadWorkers(n int) Option {
	return func(w *Wizard) {
		if n > 0 {
			w.workers = n
		}
	}
}

// New returns a wizard at step 1 with one blank strength and the default colors.
func New(backend Backend, opts ...Option) *Wizard {
	w := &Wizard{
		backend: backend,
		workers: MaxImages,
		logger:  logging.WithComponent("wizard"),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.form = blankForm()
	return w
}

func blankForm() Form {
	return Form{
		Step:      StepContentType,
		Strengths: []string{""},
		Colors: api.BrandColors{
			Primary:   DefaultPrimary,
			Secondary: DefaultSecondary,
			Accent:    DefaultAccent,
		},
	}
}

// Reset discards everything collected.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = blankForm()
}

// Form returns a copy of the current state.
func (w *Wizard) Form() Form {
	w.mu.RLock()
	defer w.mu.RUnlock()
	f := w.form
	f.Strengths = append([]string(nil), w.form.Strengths...)
	f.Images = append([]string(nil), w.form.Images...)
	return f
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.form.Step
}

// Valid reports whether step's required fields are filled.
func (w *Wizard) Valid(step Step) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.form.valid(step)
}

// CanAdvance reports whether Next would succeed.
func (w *Wizard) CanAdvance() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.form.Step < LastStep && w.form.valid(w.form.Step)
}

func (f *Form) valid(step Step) bool {
	switch step {
	case StepContentType:
		return f.ContentType != ""
	case StepAnalysis:
		return strings.TrimSpace(f.CompanyName) != "" && strings.TrimSpace(f.Description) != ""
	case StepImages:
		return true
	case StepCampaign:
		return f.DesignGoal != "" && f.Platform != ""
	case StepStrategy:
		return f.StrategyID != ""
	}
	return false
}

// Next moves forward when the current step is complete.
func (w *Wizard) Next() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.form.Step >= LastStep {
		return w.form.Step, ErrLastStep
	}
	if !w.form.valid(w.form.Step) {
		return w.form.Step, ErrStepIncomplete
	}
	w.form.Step++
	return w.form.Step, nil
}

// Previous moves back one step.
func (w *Wizard) Previous() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.form.Step <= FirstStep {
		return w.form.Step, ErrFirstStep
	}
	w.form.Step--
	return w.form.Step, nil
}

// FirstIncomplete returns the earliest step whose fields are missing.
func (w *Wizard) FirstIncomplete() (Step, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, s := range Steps {
		if !w.form.valid(s) {
			return s, true
		}
	}
	return 0, false
}

func (w *Wizard) update(fn func(f *Form)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.form)
}

func (w *Wizard) SetContentType(ct api.ContentType) {
	w.update(func(f *Form) { f.ContentType = ct })
}

func (w *Wizard) SetWebsiteURL(u string) {
	w.update(func(f *Form) { f.WebsiteURL = u })
}

func (w *Wizard) SetCompanyName(name string) {
	w.update(func(f *Form) { f.CompanyName = name })
}

func (w *Wizard) SetDescription(desc string) {
	w.update(func(f *Form) { f.Description = desc })
}

func (w *Wizard) SetDesignGoal(g api.DesignGoal) {
	w.update(func(f *Form) { f.DesignGoal = g })
}

func (w *Wizard) SetPlatform(id string) {
	w.update(func(f *Form) { f.Platform = id })
}

func (w *Wizard) SetStrategy(id string) {
	w.update(func(f *Form) { f.StrategyID = id })
}

// SetColors replaces the brand colors. Empty fields keep their value.
func (w *Wizard) SetColors(c api.BrandColors) {
	w.update(func(f *Form) {
		if c.Primary != "" {
			f.Colors.Primary = c.Primary
		}
		if c.Secondary != "" {
			f.Colors.Secondary = c.Secondary
		}
		if c.Accent != "" {
			f.Colors.Accent = c.Accent
		}
	})
}

// AddStrength appends a blank strength.
func (w *Wizard) AddStrength() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.form.Strengths) >= MaxStrengths {
		return ErrTooManyStrengths
	}
	w.form.Strengths = append(w.form.Strengths, "")
	return nil
}

// SetStrength edits strength i.
func (w *Wizard) SetStrength(i int, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.form.Strengths) {
		return ErrOutOfRange
	}
	w.form.Strengths[i] = value
	return nil
}

// RemoveStrength deletes strength i, keeping at least one entry.
func (w *Wizard) RemoveStrength(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.form.Strengths) {
		return ErrOutOfRange
	}
	if len(w.form.Strengths) <= 1 {
		return ErrLastStrength
	}
	w.form.Strengths = append(w.form.Strengths[:i], w.form.Strengths[i+1:]...)
	return nil
}

// RemoveImage detaches reference image i.
func (w *Wizard) RemoveImage(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.form.Images) {
		return ErrOutOfRange
	}
	w.form.Images = append(w.form.Images[:i], w.form.Images[i+1:]...)
	return nil
}

// AttachImages adds already-uploaded image URLs.
func (w *Wizard) AttachImages(urls ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.form.Images)+len(urls) > MaxImages {
		return ErrTooManyImages
	}
	w.form.Images = append(w.form.Images, urls...)
	return nil
}

// RemainingImages is how many more images may be attached.
func (w *Wizard) RemainingImages() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return MaxImages - len(w.form.Images)
}

// ApplyScraped overwrites the company fields from an extraction result.
// The last extraction always wins.
func (w *Wizard) ApplyScraped(data *api.ScrapedData) {
	if data == nil {
		return
	}
	w.update(func(f *Form) {
		if data.Title != "" {
			f.CompanyName = data.Title
		}
		if data.Description != "" {
			f.Description = data.Description
		}
		if len(data.Services) > 0 {
			n := min(len(data.Services), scrapedServices)
			f.Strengths = append([]string(nil), data.Services[:n]...)
		}
		if ba := data.BrandAnalysis; ba != nil {
			if ba.PrimaryColor != "" {
				f.Colors.Primary = ba.PrimaryColor
			}
			if ba.SecondaryColor != "" {
				f.Colors.Secondary = ba.SecondaryColor
			}
			if ba.AccentColor != "" {
				f.Colors.Accent = ba.AccentColor
			}
		}
		f.Scraped = data
	})
}

// Extract scrapes the website URL and applies the result. On failure the
// form is left exactly as it was.
func (w *Wizard) Extract(ctx context.Context) (*api.ScrapedData, error) {
	w.mu.RLock()
	target := strings.TrimSpace(w.form.WebsiteURL)
	w.mu.RUnlock()

	if target == "" {
		return nil, ErrURLRequired
	}

	data, err := w.backend.Scrape(ctx, target)
	if err != nil {
		w.logger.Warn("extraction failed", "url", target, "error", err)
		return nil, fmt.Errorf("extract %s: %w", target, err)
	}

	w.ApplyScraped(data)
	w.logger.Info("extraction applied", "url", target, "title", data.Title)
	return data, nil
}

// Payload assembles the creation request for lang.
func (w *Wizard) Payload(lang string) *api.CreateProjectRequest {
	w.mu.RLock()
	defer w.mu.RUnlock()

	strengths := make([]string, 0, len(w.form.Strengths))
	for _, s := range w.form.Strengths {
		if strings.TrimSpace(s) != "" {
			strengths = append(strengths, s)
		}
	}

	return &api.CreateProjectRequest{
		ContentType:             w.form.ContentType,
		CompanyName:             w.form.CompanyName,
		CompanyDescription:      w.form.Description,
		Strengths:               strengths,
		Images:                  append([]string{}, w.form.Images...),
		DesignGoal:              w.form.DesignGoal,
		Platform:                w.form.Platform,
		PsychologicalStrategyID: w.form.StrategyID,
		ScrapedData:             w.form.Scraped,
		BrandColors:             w.form.Colors,
		Language:                lang,
	}
}

// Submit creates the project. Every step must be complete. On failure the
// wizard keeps its state so the user can retry.
func (w *Wizard) Submit(ctx context.Context, lang string) (*api.Project, error) {
	if step, missing := w.FirstIncomplete(); missing {
		return nil, fmt.Errorf("step %d (%s): %w", step.Number(), step, ErrStepIncomplete)
	}

	req := w.Payload(lang)
	project, err := w.backend.CreateProject(ctx, req)
	if err != nil {
		w.logger.Error("project creation failed", "company", req.CompanyName, "error", err)
		return nil, fmt.Errorf("create project: %w", err)
	}

	logging.WithProject(w.logger, project.ID).Info("project created", "company", req.CompanyName)
	return project, nil
}
