package wizard

import (
	"strings"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
)

var voiceKeys = map[string]i18n.Key{
	"luxury":   i18n.KeyVoiceLuxury,
	"playful":  i18n.KeyVoicePlayful,
	"formal":   i18n.KeyVoiceFormal,
	"friendly": i18n.KeyVoiceFriendly,
}

// BrandSummary is the brand analysis shown after an extraction.
type BrandSummary struct {
	Voice   string
	Palette []string
	Colors  api.BrandColors
}

// VoiceLabel translates the brand voice. Unknown voices are shown as sent.
func (b BrandSummary) VoiceLabel(l i18n.Lang) string {
	if k, ok := voiceKeys[strings.ToLower(b.Voice)]; ok {
		return i18n.Translate(l, k)
	}
	return b.Voice
}

// Analysis summarizes the stored extraction, if it carried a brand analysis.
func (w *Wizard) Analysis() (BrandSummary, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.form.Scraped == nil || w.form.Scraped.BrandAnalysis == nil {
		return BrandSummary{}, false
	}
	ba := w.form.Scraped.BrandAnalysis
	palette := ba.ColorPalette
	if len(palette) == 0 {
		for _, c := range []string{ba.PrimaryColor, ba.SecondaryColor, ba.AccentColor} {
			if c != "" {
				palette = append(palette, c)
			}
		}
	}
	return BrandSummary{
		Voice:   ba.BrandVoice,
		Palette: append([]string(nil), palette...),
		Colors: api.BrandColors{
			Primary:   ba.PrimaryColor,
			Secondary: ba.SecondaryColor,
			Accent:    ba.AccentColor,
		},
	}, true
}

// ScrapedImages returns image URLs found during extraction.
func (w *Wizard) ScrapedImages() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.form.Scraped == nil {
		return nil
	}
	return append([]string(nil), w.form.Scraped.Images...)
}
