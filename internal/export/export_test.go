package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
)

func sampleProject() *api.Project {
	return &api.Project{
		ID:              "p1",
		CompanyName:     "Acme",
		Strengths:       []string{"Fast", "Reliable"},
		BrandColors:     &api.BrandColors{Primary: "#111111", Secondary: "#FFFFFF", Accent: "#F97316"},
		GeneratedImages: []string{"/api/generated/p1_1.png", "/api/generated/p1_2.png"},
		GeneratedCaptions: []api.Caption{{
			CaptionAr: "عرض **خاص**",
			CaptionEn: "Special **offer**\nToday only",
			Hashtags:  []string{"#sale"},
		}},
		CreatedAt: "2025-03-07T10:00:00Z",
	}
}

func TestRenderEnglish(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleProject(), Options{
		Lang:     i18n.English,
		Origin:   "http://localhost:8001",
		Strategy: &api.Strategy{ID: "scarcity", NameEn: "Scarcity", Icon: "clock"},
		Platform: &api.Platform{ID: "instagram_square", NameEn: "Instagram Square", Aspect: "1:1"},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`dir="ltr"`,
		`lang="en"`,
		`http://localhost:8001/api/generated/p1_1.png`,
		`<strong>offer</strong>`,
		`<br>`,
		`#sale`,
		`March 7, 2025`,
		`Instagram Square (1:1)`,
		`Scarcity`,
		`--accent: #F97316`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRenderArabicIsRTL(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleProject(), Options{Lang: i18n.Arabic}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `dir="rtl"`) {
		t.Error("Expected rtl direction")
	}
	if !strings.Contains(out, `<strong>خاص</strong>`) {
		t.Error("Expected Arabic caption")
	}
	if !strings.Contains(out, `src="/api/generated/p1_1.png"`) {
		t.Error("Expected relative asset without an origin")
	}
}

func TestRenderWithoutImages(t *testing.T) {
	p := &api.Project{CompanyName: "Empty"}
	var buf bytes.Buffer
	if err := Render(&buf, p, Options{Lang: i18n.English}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), i18n.Translate(i18n.English, i18n.KeyNoContent)) {
		t.Error("Expected empty-state text")
	}
	if strings.Contains(buf.String(), `class="ig"`) {
		t.Error("Expected no mockups without images")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "acme.html")
	if err := WriteFile(path, sampleProject(), Options{Lang: i18n.English}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!doctype html>") {
		t.Error("Expected an HTML document")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		project *api.Project
		want    string
	}{
		{&api.Project{ID: "1a2b3c4d-5e6f", CompanyName: "Acme Corp"}, "acme-corp-1a2b3c4d.html"},
		{&api.Project{ID: "p1", CompanyName: "A/B"}, "a-b-p1.html"},
		{&api.Project{ID: "p1"}, "project-p1.html"},
		{&api.Project{CompanyName: "Acme"}, "acme.html"},
	}
	for _, tt := range tests {
		if got := FileName(tt.project); got != tt.want {
			t.Errorf("FileName(%q, %q): expected %q, got %q", tt.project.CompanyName, tt.project.ID, tt.want, got)
		}
	}
}
