package projects

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/logging"
)

// ErrDeclined is returned when the user does not confirm a deletion.
var ErrDeclined = errors.New("deletion not confirmed")

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func() bool

// Backend is the subset of the API client used for projects.
type Backend interface {
	ListProjects(ctx context.Context) ([]api.Project, error)
	GetProject(ctx context.Context, id string) (*api.Project, error)
	DeleteProject(ctx context.Context, id string) error
	GenerateContent(ctx context.Context, req *api.GenerateContentRequest) (*api.GenerateResponse, error)
	GenerateVideo(ctx context.Context, req *api.GenerateVideoRequest) (*api.GenerateResponse, error)
}

// List is the user's projects as last loaded.
type List struct {
	backend Backend
	logger  *slog.Logger

	mu     sync.RWMutex
	items  []api.Project
	loaded bool
}

func NewList(backend Backend) *List {
	return &List{
		backend: backend,
		logger:  logging.WithComponent("projects"),
	}
}

// Load fetches every project, replacing the local copy. On failure the
// previous items are kept.
func (l *List) Load(ctx context.Context) ([]api.Project, error) {
	items, err := l.backend.ListProjects(ctx)
	if err != nil {
		l.logger.Error("failed to load projects", "error", err)
		return nil, fmt.Errorf("load projects: %w", err)
	}

	l.mu.Lock()
	l.items = items
	l.loaded = true
	l.mu.Unlock()
	return l.Items(), nil
}

// Items returns a copy of the loaded projects.
func (l *List) Items() []api.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]api.Project(nil), l.items...)
}

// Loaded reports whether Load has succeeded at least once.
func (l *List) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Delete removes id after confirm returns true and the backend agrees.
// The local item is only dropped once the call has succeeded.
func (l *List) Delete(ctx context.Context, id string, confirm ConfirmFunc) error {
	if confirm == nil || !confirm() {
		return ErrDeclined
	}
	if err := l.backend.DeleteProject(ctx, id); err != nil {
		logging.WithProject(l.logger, id).Error("delete failed", "error", err)
		return fmt.Errorf("delete project %s: %w", id, err)
	}

	l.mu.Lock()
	for i, p := range l.items {
		if p.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	l.mu.Unlock()

	logging.WithProject(l.logger, id).Info("project deleted")
	return nil
}
