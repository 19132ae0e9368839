// Package export writes a project as a standalone HTML page with the
// generated images shown inside Instagram and TikTok style mockups.
package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
)

//go:embed page.html.tmpl
var pageSource string

var page = template.Must(template.New("page").Parse(pageSource))

var markdown = goldmark.New(goldmark.WithRendererOptions(gmhtml.WithHardWraps()))

// Options controls what the page shows.
type Options struct {
	Lang i18n.Lang
	// Origin resolves relative asset paths. Empty keeps them relative.
	Origin   string
	Strategy *api.Strategy
	Platform *api.Platform
}

type pageData struct {
	Lang      string
	Dir       string
	Title     string
	Company   string
	Badge     string
	Created   string
	Strategy  string
	Platform  string
	Images    []string
	Videos    []string
	Caption   template.HTML
	Hashtags  string
	Colors    api.BrandColors
	Labels    map[string]string
	Strengths []string
}

// Render writes the HTML page for p.
func Render(w io.Writer, p *api.Project, opts Options) error {
	if p == nil {
		return fmt.Errorf("export: no project")
	}
	l := opts.Lang
	if l == "" {
		l = i18n.Default
	}
	t := func(k i18n.Key) string { return i18n.Translate(l, k) }

	data := pageData{
		Lang:      string(l),
		Dir:       string(l.Direction()),
		Title:     p.CompanyName + " | NeuroAd",
		Company:   p.CompanyName,
		Strengths: p.Strengths,
		Labels: map[string]string{
			"images":    t(i18n.KeyGeneratedImages),
			"videos":    t(i18n.KeyGeneratedVideos),
			"caption":   t(i18n.KeyGeneratedCaption),
			"mockups":   t(i18n.KeyMockupPreview),
			"instagram": t(i18n.KeyInstagramMockup),
			"tiktok":    t(i18n.KeyTiktokMockup),
			"sponsored": t(i18n.KeySponsored),
			"likes":     t(i18n.KeyLikes),
			"info":      t(i18n.KeyProjectInfo),
			"strategy":  t(i18n.KeyPsychStrategy),
			"platform":  t(i18n.KeyPlatform),
			"strengths": t(i18n.KeyStrengths),
			"created":   t(i18n.KeyCreatedAt),
			"empty":     t(i18n.KeyNoContent),
		},
	}
	if p.BrandColors != nil {
		data.Colors = *p.BrandColors
	}
	if created, ok := p.Created(); ok {
		data.Created = i18n.FormatDate(l, created)
	}
	if s := opts.Strategy; s != nil {
		data.Strategy = s.Glyph() + " " + i18n.PickFor(l, s.NameAr, s.NameEn)
	}
	if pl := opts.Platform; pl != nil {
		data.Platform = fmt.Sprintf("%s (%s)", i18n.PickFor(l, pl.Name, pl.NameEn), pl.Aspect)
	}
	for _, img := range p.GeneratedImages {
		data.Images = append(data.Images, api.ResolveAsset(opts.Origin, img))
	}
	for _, v := range p.GeneratedVideos {
		data.Videos = append(data.Videos, api.ResolveAsset(opts.Origin, v))
	}

	if len(p.GeneratedCaptions) > 0 {
		c := p.GeneratedCaptions[0]
		text := i18n.PickFor(l, c.CaptionAr, c.CaptionEn)
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(text), &buf); err != nil {
			return fmt.Errorf("render caption: %w", err)
		}
		data.Caption = template.HTML(buf.String())
		data.Hashtags = strings.Join(c.Hashtags, " ")
	}

	return page.Execute(w, data)
}

// WriteFile renders p to path, creating parent directories.
func WriteFile(path string, p *api.Project, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, p, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FileName is the default export name for p, such as "acme-corp-1a2b3c4d.html".
func FileName(p *api.Project) string {
	slug := strings.Join(strings.Fields(strings.ToLower(p.CompanyName)), "-")
	slug = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '-'
		}
		return r
	}, slug)
	if slug == "" {
		slug = "project"
	}
	id := p.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		return slug + ".html"
	}
	return slug + "-" + id + ".html"
}
