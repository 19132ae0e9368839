package tui

import (
	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/auth"
	"github.com/neuroad/neuroad-cli/internal/clipboard"
	"github.com/neuroad/neuroad-cli/internal/config"
	"github.com/neuroad/neuroad-cli/internal/projects"
	"github.com/neuroad/neuroad-cli/internal/wizard"
)

// Custom messages for Bubble Tea. Each carries the result of a command
// that ran off the update loop.

// IdentityMsg is sent when the startup identity check finishes.
type IdentityMsg struct {
	User *api.User
}

// CatalogMsg carries the wizard's strategy and platform lists.
type CatalogMsg struct {
	Strategies []api.Strategy
	Platforms  []api.Platform
	Err        error
}

// ProjectsMsg is sent when the project list has loaded.
type ProjectsMsg struct {
	Items []api.Project
	Err   error
}

// DetailMsg is sent when a project view has loaded.
type DetailMsg struct {
	ID  string
	Err error
}

// ExtractMsg is sent when website analysis finishes.
type ExtractMsg struct {
	Data *api.ScrapedData
	Err  error
}

// UploadMsg is sent when a batch of reference images has been processed.
type UploadMsg struct {
	Results []wizard.UploadResult
	Err     error
}

// SubmitMsg is sent when project creation finishes.
type SubmitMsg struct {
	Project *api.Project
	Err     error
}

// GenerateMsg is sent when a generation request returns.
type GenerateMsg struct {
	Kind projects.Generation
	Err  error
}

// DeleteMsg is sent when a delete call returns.
type DeleteMsg struct {
	ID         string
	FromDetail bool
	Err        error
}

// LoginStartedMsg is sent once the callback server is listening.
type LoginStartedMsg struct {
	Server *auth.CallbackServer
	URL    string
	Err    error
}

// LoginDoneMsg is sent when the browser flow completes or is abandoned.
type LoginDoneMsg struct {
	Route auth.Route
	Err   error
}

// LogoutMsg is sent when logout finishes.
type LogoutMsg struct {
	Err error
}

// ConfigMsg is sent when the config file changes on disk.
type ConfigMsg struct {
	Config *config.Config
}

// CopyMsg is sent after a caption copy attempt.
type CopyMsg struct {
	Method clipboard.Method
	Err    error
}

// ExportMsg is sent after an HTML export.
type ExportMsg struct {
	Path string
	Err  error
}
