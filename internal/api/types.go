package api

import (
	"strings"
	"time"
)

// ContentType is what the ads are created for.
type ContentType string

const (
	ContentStore           ContentType = "store"
	ContentServiceWebsite  ContentType = "service_website"
	ContentSpecificProduct ContentType = "specific_product"
	ContentSpecificService ContentType = "specific_service"
)

// ContentTypes lists every content type in display order.
var ContentTypes = []ContentType{ContentStore, ContentServiceWebsite, ContentSpecificProduct, ContentSpecificService}

// DesignGoal is the campaign objective.
type DesignGoal string

const (
	GoalDirectSale     DesignGoal = "direct_sale"
	GoalBrandAwareness DesignGoal = "brand_awareness"
	GoalEducational    DesignGoal = "educational"
)

// DesignGoals lists every design goal in display order.
var DesignGoals = []DesignGoal{GoalDirectSale, GoalBrandAwareness, GoalEducational}

// Status is a project's generation state.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusGenerating      Status = "generating"
	StatusGeneratingVideo Status = "generating_video"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
)

// VideoSize is the aspect variant of a generated video.
type VideoSize string

const (
	VideoPortrait  VideoSize = "portrait"
	VideoSquare    VideoSize = "square"
	VideoLandscape VideoSize = "landscape"
)

// BrandColors are hex strings such as "#3B82F6".
type BrandColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// BrandAnalysis is the backend's reading of a website's brand.
type BrandAnalysis struct {
	BrandVoice     string   `json:"brand_voice"`
	ColorPalette   []string `json:"color_palette"`
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	AccentColor    string   `json:"accent_color"`
	Tone           string   `json:"tone,omitempty"`
	Industry       string   `json:"industry,omitempty"`
}

// ScrapedData is the result of POST /scrape.
type ScrapedData struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Services      []string       `json:"services"`
	Images        []string       `json:"images"`
	Keywords      []string       `json:"keywords"`
	BrandAnalysis *BrandAnalysis `json:"brand_analysis"`
}

// Caption is one bilingual generated caption.
type Caption struct {
	CaptionAr string   `json:"caption_ar"`
	CaptionEn string   `json:"caption_en"`
	Hashtags  []string `json:"hashtags"`
}

// Project mirrors the backend's project document.
type Project struct {
	ID                      string       `json:"id"`
	UserID                  string       `json:"user_id,omitempty"`
	ContentType             ContentType  `json:"content_type"`
	CompanyName             string       `json:"company_name"`
	CompanyDescription      string       `json:"company_description"`
	Strengths               []string     `json:"strengths"`
	Images                  []string     `json:"images"`
	DesignGoal              DesignGoal   `json:"design_goal"`
	Platform                string       `json:"platform"`
	PsychologicalStrategyID string       `json:"psychological_strategy_id"`
	ScrapedData             *ScrapedData `json:"scraped_data"`
	BrandColors             *BrandColors `json:"brand_colors"`
	Language                string       `json:"language"`
	GeneratedImages         []string     `json:"generated_images"`
	GeneratedVideos         []string     `json:"generated_videos"`
	GeneratedCaptions       []Caption    `json:"generated_captions"`
	Status                  Status       `json:"status"`
	CreatedAt               string       `json:"created_at"`
	UpdatedAt               string       `json:"updated_at"`
}

// Created parses CreatedAt. The backend writes ISO-8601, with or without offset.
func (p *Project) Created() (time.Time, bool) {
	return ParseTimestamp(p.CreatedAt)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a backend timestamp.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Strategy is a psychological persuasion technique.
type Strategy struct {
	ID                   string `json:"id"`
	NameAr               string `json:"name_ar"`
	NameEn               string `json:"name_en"`
	Icon                 string `json:"icon"`
	DescriptionAr        string `json:"description_ar"`
	DescriptionEn        string `json:"description_en"`
	VisualInstructions   string `json:"visual_instructions"`
	VisualInstructionsAr string `json:"visual_instructions_ar,omitempty"`
	VideoInstructions    string `json:"video_instructions,omitempty"`
}

var strategyIcons = map[string]string{
	"hook":            "🎣",
	"scale":           "⚖️",
	"megaphone":       "📢",
	"lightbulb":       "💡",
	"credit-card":     "💳",
	"shield-alert":    "🛡️",
	"puzzle":          "🧩",
	"book-open":       "📖",
	"heart-handshake": "🤝",
	"message-circle":  "💬",
	"users":           "👥",
	"star":            "⭐",
	"gift":            "🎁",
	"check-circle":    "✅",
	"clock":           "⏰",
}

// Glyph returns the emoji for the strategy's icon key.
func (s Strategy) Glyph() string {
	if g, ok := strategyIcons[s.Icon]; ok {
		return g
	}
	return "🎯"
}

// Platform is a target destination with fixed dimensions.
type Platform struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameEn      string `json:"name_en"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Aspect      string `json:"aspect"`
	Orientation string `json:"platform,omitempty"`
}

// MarketingTip is a bilingual tip shown while generation runs.
type MarketingTip struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// User is the signed-in identity.
type User struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Picture   string `json:"picture,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreateProjectRequest is the body of POST /projects.
type CreateProjectRequest struct {
	ContentType             ContentType  `json:"content_type"`
	CompanyName             string       `json:"company_name"`
	CompanyDescription      string       `json:"company_description"`
	Strengths               []string     `json:"strengths"`
	Images                  []string     `json:"images"`
	DesignGoal              DesignGoal   `json:"design_goal"`
	Platform                string       `json:"platform"`
	PsychologicalStrategyID string       `json:"psychological_strategy_id"`
	ScrapedData             *ScrapedData `json:"scraped_data"`
	BrandColors             BrandColors  `json:"brand_colors"`
	Language                string       `json:"language"`
}

// GenerateContentRequest is the body of POST /generate-content.
type GenerateContentRequest struct {
	ProjectID          string  `json:"project_id"`
	VariationCount     int     `json:"variation_count"`
	CustomInstructions *string `json:"custom_instructions"`
}

// GenerateVideoRequest is the body of POST /generate-video.
type GenerateVideoRequest struct {
	ProjectID          string    `json:"project_id"`
	Duration           int       `json:"duration"`
	VideoSize          VideoSize `json:"video_size"`
	CustomInstructions *string   `json:"custom_instructions"`
}

// GenerateResponse is returned by both generation endpoints.
type GenerateResponse struct {
	Success         bool     `json:"success"`
	Images          []string `json:"images,omitempty"`
	Caption         *Caption `json:"caption,omitempty"`
	VariationsCount int      `json:"variations_count,omitempty"`
	VideoURL        string   `json:"video_url,omitempty"`
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

// SessionResponse is returned by POST /auth/session.
type SessionResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}

// OptionalString returns nil for blank input, so the field encodes as null.
func OptionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
