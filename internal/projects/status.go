// Package projects loads, lists and deletes projects and triggers generation.
package projects

import (
	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
)

// Badge tones understood by theme.Styles.Badge.
const (
	ToneMuted  = "muted"
	ToneAmber  = "amber"
	TonePurple = "purple"
	ToneGreen  = "green"
	ToneRed    = "red"
)

// Badge is a project's status as displayed.
type Badge struct {
	Label string
	Tone  string
}

type badgeDef struct {
	key  i18n.Key
	tone string
}

var badges = map[api.Status]badgeDef{
	api.StatusDraft:           {i18n.KeyStatusDraft, ToneMuted},
	api.StatusGenerating:      {i18n.KeyStatusGenerating, ToneAmber},
	api.StatusGeneratingVideo: {i18n.KeyStatusGeneratingVideo, TonePurple},
	api.StatusCompleted:       {i18n.KeyStatusCompleted, ToneGreen},
	api.StatusFailed:          {i18n.KeyStatusFailed, ToneRed},
}

// StatusBadge returns the label and tone for status in l. Unknown
// statuses render as draft.
func StatusBadge(status api.Status, l i18n.Lang) Badge {
	def, ok := badges[status]
	if !ok {
		def = badges[api.StatusDraft]
	}
	return Badge{Label: i18n.Translate(l, def.key), Tone: def.tone}
}
