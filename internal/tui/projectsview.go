package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
	"github.com/neuroad/neuroad-cli/internal/projects"
	"github.com/neuroad/neuroad-cli/internal/tui/components"
	"github.com/neuroad/neuroad-cli/internal/wizard"
)

type listScreen struct {
	l       *projects.List
	items   []api.Project
	cursor  int
	loading bool
	failed  bool
}

func newListScreen(backend projects.Backend) *listScreen {
	return &listScreen{l: projects.NewList(backend)}
}

func (ls *listScreen) move(delta int) {
	if len(ls.items) == 0 {
		return
	}
	ls.cursor = max(0, min(len(ls.items)-1, ls.cursor+delta))
}

func (ls *listScreen) selected() *api.Project {
	if ls.cursor < 0 || ls.cursor >= len(ls.items) {
		return nil
	}
	return &ls.items[ls.cursor]
}

// loadProjects fetches the list. It runs on every visit to the screen.
func (a *App) loadProjects() tea.Cmd {
	ls := a.list
	if ls.loading {
		return nil
	}
	ls.loading = true
	return func() tea.Msg {
		items, err := ls.l.Load(context.Background())
		return ProjectsMsg{Items: items, Err: err}
	}
}

func (a *App) handleProjects(msg ProjectsMsg) tea.Cmd {
	ls := a.list
	ls.loading = false
	if msg.Err != nil {
		ls.failed = !ls.l.Loaded()
		a.notifyError(i18n.KeyProjectsLoadFailed, msg.Err)
		return nil
	}
	ls.failed = false
	ls.items = msg.Items
	ls.cursor = max(0, min(len(ls.items)-1, ls.cursor))
	return nil
}

func (a *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	ls := a.list
	switch {
	case key.Matches(msg, a.keys.Up):
		ls.move(-1)
	case key.Matches(msg, a.keys.Down):
		ls.move(1)
	case key.Matches(msg, a.keys.Enter):
		if p := ls.selected(); p != nil {
			return a.openDetail(p.ID)
		}
	case key.Matches(msg, a.keys.Delete):
		if p := ls.selected(); p != nil {
			a.modal.Show(a.t(i18n.KeyDelete), a.t(i18n.KeyConfirmDelete)+"\n\n"+p.CompanyName,
				intent{kind: intentDeleteFromList, id: p.ID})
		}
	case key.Matches(msg, a.keys.Refresh):
		return a.loadProjects()
	case key.Matches(msg, a.keys.New):
		return a.navigate(ScreenWizard)
	case key.Matches(msg, a.keys.Back):
		a.screen = ScreenHome
	}
	return nil
}

// deleteFromList runs after the modal has been confirmed.
func (a *App) deleteFromList(id string) tea.Cmd {
	l := a.list.l
	return func() tea.Msg {
		err := l.Delete(context.Background(), id, func() bool { return true })
		return DeleteMsg{ID: id, Err: err}
	}
}

func (a *App) handleDelete(msg DeleteMsg) tea.Cmd {
	if errors.Is(msg.Err, projects.ErrDeclined) {
		return nil
	}
	if msg.Err != nil {
		a.notifyError(i18n.KeyDeleteFailed, msg.Err)
		return nil
	}
	a.notify(components.ToastSuccess, a.t(i18n.KeyProjectDeleted))
	if msg.FromDetail {
		a.detail.reset()
		return a.navigate(ScreenProjects)
	}
	a.list.items = a.list.l.Items()
	a.list.cursor = max(0, min(len(a.list.items)-1, a.list.cursor))
	return nil
}

func (a *App) viewList(width, height int) string {
	s := a.styles
	ls := a.list
	l := a.lang()

	title := s.Title.Render(a.t(i18n.KeyProjects))
	if ls.loading && len(ls.items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, a.spinner.View()+" "+a.t(i18n.KeyLoading))
	}
	if len(ls.items) == 0 {
		if ls.failed {
			return lipgloss.JoinVertical(lipgloss.Left, title, s.StatusError.Render(a.t(i18n.KeyProjectsLoadFailed)),
				s.Help.Render("r "+a.t(i18n.KeyRefresh)))
		}
		empty := lipgloss.JoinVertical(lipgloss.Center,
			"",
			s.ValueMuted.Render("📂"),
			s.Value.Render(a.t(i18n.KeyNoProjects)),
			"",
			s.ButtonPrimary.Render("n  "+a.t(i18n.KeyNewProject)),
		)
		return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.PlaceHorizontal(width, lipgloss.Center, empty))
	}

	if ls.loading {
		title += " " + a.spinner.View()
	}

	// Each card is four lines tall.
	visible := max((height-3)/4, 1)
	start := max(0, min(ls.cursor-visible/2, len(ls.items)-visible))
	end := min(len(ls.items), start+visible)

	cards := []string{title}
	cardWidth := min(width, 90)
	for i := start; i < end; i++ {
		p := ls.items[i]
		badge := projects.StatusBadge(p.Status, l)
		created := ""
		if t, ok := p.Created(); ok {
			created = i18n.FormatDate(l, t)
		}
		name := s.Value.Bold(true).Render(p.CompanyName)
		meta := s.ValueMuted.Render(fmt.Sprintf("%s · %s · %d 🖼  %d 🎬",
			a.t(wizard.ContentTypeLabels[p.ContentType]), created, len(p.GeneratedImages), len(p.GeneratedVideos)))

		row := lipgloss.JoinHorizontal(lipgloss.Center, name, "  ", s.Badge(badge.Tone, badge.Label))
		if a.rtl() {
			row = lipgloss.JoinHorizontal(lipgloss.Center, s.Badge(badge.Tone, badge.Label), "  ", name)
		}

		card := s.Card
		if i == ls.cursor {
			card = s.CardActive
		}
		cards = append(cards, card.Width(cardWidth).Render(lipgloss.JoinVertical(a.align(), row, meta)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
