// Package mockapi is an in-memory implementation of the backend HTTP
// contract, used by tests and by cmd/neuroad-mock for local development.
package mockapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/neuroad/neuroad-cli/internal/api"
)

// DemoUser is the identity every session exchange signs in as.
var DemoUser = api.User{
	UserID: "demo_user",
	Email:  "demo@neuroad.app",
	Name:   "Demo User",
}

// Server is the fake backend. The zero value is not usable; use New.
type Server struct {
	router *mux.Router

	// GenerateDelay simulates slow generation.
	GenerateDelay time.Duration

	mu       sync.Mutex
	projects map[string]*api.Project
	order    []string
	sessions map[string]api.User
	uploads  map[string][]byte
	scrapes  map[string]*api.ScrapedData
	failures map[string]int
	calls    map[string]int

	lastCreate   *api.CreateProjectRequest
	lastGenerate *api.GenerateContentRequest
	lastVideo    *api.GenerateVideoRequest
}

// New creates a server with the seeded catalogs and no projects.
func New() *Server {
	s := &Server{
		projects: make(map[string]*api.Project),
		sessions: make(map[string]api.User),
		uploads:  make(map[string][]byte),
		scrapes:  make(map[string]*api.ScrapedData),
		failures: make(map[string]int),
		calls:    make(map[string]int),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	a := r.PathPrefix(api.BasePath).Subrouter()
	a.Use(s.track)

	a.HandleFunc("/strategies", s.handleStrategies).Methods("GET")
	a.HandleFunc("/platforms", s.handlePlatforms).Methods("GET")
	a.HandleFunc("/marketing-tips", s.handleTips).Methods("GET")
	a.HandleFunc("/scrape", s.handleScrape).Methods("POST")
	a.HandleFunc("/upload", s.handleUpload).Methods("POST")
	a.HandleFunc("/uploads/{filename}", s.handleGetUpload).Methods("GET")
	a.HandleFunc("/projects", s.handleCreateProject).Methods("POST")
	a.HandleFunc("/projects", s.handleListProjects).Methods("GET")
	a.HandleFunc("/projects/{id}", s.handleGetProject).Methods("GET")
	a.HandleFunc("/projects/{id}", s.handleDeleteProject).Methods("DELETE")
	a.HandleFunc("/generate-content", s.handleGenerateContent).Methods("POST")
	a.HandleFunc("/generate-video", s.handleGenerateVideo).Methods("POST")
	a.HandleFunc("/auth/session", s.handleSession).Methods("POST")
	a.HandleFunc("/auth/me", s.handleMe).Methods("GET")
	a.HandleFunc("/auth/logout", s.handleLogout).Methods("POST")

	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// routeKey is "METHOD /template" with the /api prefix removed, e.g.
// "GET /projects/{id}".
func routeKey(method, template string) string {
	return method + " " + strings.TrimPrefix(template, api.BasePath)
}

// track counts calls and applies injected failures.
func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		template := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if t, err := route.GetPathTemplate(); err == nil {
				template = t
			}
		}
		key := routeKey(r.Method, template)

		s.mu.Lock()
		s.calls[key]++
		status, fail := s.failures[key]
		s.mu.Unlock()

		slog.Debug("mock request", "route", key, "request_id", r.Header.Get("X-Request-ID"))

		if fail {
			writeError(w, status, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Fail makes every call to route ("POST /scrape", "GET /projects/{id}")
// answer with status until Recover is called.
func (s *Server) Fail(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = status
}

// Recover removes an injected failure.
func (s *Server) Recover(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, route)
}

// Calls returns how many requests hit route.
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// SetScrapeResult fixes the response for a scraped URL.
func (s *Server) SetScrapeResult(rawURL string, data *api.ScrapedData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrapes[rawURL] = data
}

// AddProject seeds a project and returns its stored copy.
func (s *Server) AddProject(p api.Project) api.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = api.StatusDraft
	}
	if p.CreatedAt == "" {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		p.CreatedAt, p.UpdatedAt = now, now
	}
	normalize(&p)
	s.projects[p.ID] = &p
	s.order = append(s.order, p.ID)
	return p
}

// Project returns a copy of a stored project.
func (s *Server) Project(id string) (api.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return api.Project{}, false
	}
	return *p, true
}

// LastCreate returns the body of the most recent POST /projects.
func (s *Server) LastCreate() *api.CreateProjectRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCreate
}

// LastGenerate returns the body of the most recent POST /generate-content.
func (s *Server) LastGenerate() *api.GenerateContentRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastGenerate
}

// LastVideo returns the body of the most recent POST /generate-video.
func (s *Server) LastVideo() *api.GenerateVideoRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastVideo
}

// Upload returns the bytes stored under an upload URL's file name.
func (s *Server) Upload(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.uploads[path.Base(name)]
	return data, ok
}

func normalize(p *api.Project) {
	if p.Strengths == nil {
		p.Strengths = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.GeneratedImages == nil {
		p.GeneratedImages = []string{}
	}
	if p.GeneratedVideos == nil {
		p.GeneratedVideos = []string{}
	}
	if p.GeneratedCaptions == nil {
		p.GeneratedCaptions = []api.Caption{}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v)
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Strategies)
}

func (s *Server) handlePlatforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Platforms)
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Tips)
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := decode(r, &req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	s.mu.Lock()
	fixed, ok := s.scrapes[req.URL]
	s.mu.Unlock()
	if ok {
		writeJSON(w, http.StatusOK, fixed)
		return
	}

	target := req.URL
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Could not fetch website: %s", req.URL))
		return
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	name := strings.SplitN(host, ".", 2)[0]
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	writeJSON(w, http.StatusOK, api.ScrapedData{
		Title:       name,
		Description: name + " helps customers get more done.",
		Services:    []string{"Fast delivery", "Quality products", "Friendly support", "Fair prices", "Secure checkout"},
		Images:      []string{u.Scheme + "://" + u.Host + "/logo.png"},
		Keywords:    []string{strings.ToLower(name)},
		BrandAnalysis: &api.BrandAnalysis{
			BrandVoice:     "friendly",
			ColorPalette:   []string{"#1E293B", "#F8FAFC", "#F97316"},
			PrimaryColor:   "#1E293B",
			SecondaryColor: "#F8FAFC",
			AccentColor:    "#F97316",
		},
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, 20<<20))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ext := path.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	s.mu.Lock()
	s.uploads[name] = data
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, api.UploadResponse{URL: api.BasePath + "/uploads/" + name, Filename: name})
}

func (s *Server) handleGetUpload(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]
	s.mu.Lock()
	data, ok := s.uploads[name]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Write(data)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req api.CreateProjectRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid project body")
		return
	}
	if req.ContentType == "" || req.CompanyName == "" || req.CompanyDescription == "" ||
		req.DesignGoal == "" || req.PsychologicalStrategyID == "" {
		writeError(w, http.StatusUnprocessableEntity, "missing required fields")
		return
	}

	s.mu.Lock()
	s.lastCreate = &req
	s.mu.Unlock()

	colors := req.BrandColors
	p := s.AddProject(api.Project{
		UserID:                  DemoUser.UserID,
		ContentType:             req.ContentType,
		CompanyName:             req.CompanyName,
		CompanyDescription:      req.CompanyDescription,
		Strengths:               req.Strengths,
		Images:                  req.Images,
		DesignGoal:              req.DesignGoal,
		Platform:                req.Platform,
		PsychologicalStrategyID: req.PsychologicalStrategyID,
		ScrapedData:             req.ScrapedData,
		BrandColors:             &colors,
		Language:                req.Language,
		Status:                  api.StatusDraft,
	})
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]api.Project, 0, len(s.order))
	// Newest first.
	for i := len(s.order) - 1; i >= 0; i-- {
		if p, ok := s.projects[s.order[i]]; ok {
			out = append(out, *p)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Project(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	_, ok := s.projects[id]
	if ok {
		delete(s.projects, id)
		for i, pid := range s.order {
			if pid == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

func (s *Server) handleGenerateContent(w http.ResponseWriter, r *http.Request) {
	var req api.GenerateContentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	s.mu.Lock()
	s.lastGenerate = &req
	p, ok := s.projects[req.ProjectID]
	if ok {
		p.Status = api.StatusGenerating
	}
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	s.wait(r)

	n := req.VariationCount
	if n < 1 || n > 3 {
		n = 3
	}

	s.mu.Lock()
	base := len(p.GeneratedImages)
	urls := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		urls = append(urls, fmt.Sprintf("%s/generated/%s_%d.png", api.BasePath, p.ID, base+i))
	}
	caption := captionFor(p.PsychologicalStrategyID, p.CompanyName)
	p.GeneratedImages = append(p.GeneratedImages, urls...)
	p.GeneratedCaptions = []api.Caption{caption}
	p.Status = api.StatusCompleted
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, api.GenerateResponse{
		Success:         true,
		Images:          urls,
		Caption:         &caption,
		VariationsCount: len(urls),
	})
}

func (s *Server) handleGenerateVideo(w http.ResponseWriter, r *http.Request) {
	var req api.GenerateVideoRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	s.mu.Lock()
	s.lastVideo = &req
	p, ok := s.projects[req.ProjectID]
	if ok {
		p.Status = api.StatusGeneratingVideo
	}
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	s.wait(r)

	s.mu.Lock()
	videoURL := fmt.Sprintf("%s/generated/%s_video_%d.mp4", api.BasePath, p.ID, len(p.GeneratedVideos)+1)
	p.GeneratedVideos = append(p.GeneratedVideos, videoURL)
	p.Status = api.StatusCompleted
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, api.GenerateResponse{Success: true, VideoURL: videoURL})
}

func (s *Server) wait(r *http.Request) {
	if s.GenerateDelay <= 0 {
		return
	}
	select {
	case <-time.After(s.GenerateDelay):
	case <-r.Context().Done():
	}
}

func sessionToken(r *http.Request) string {
	if ck, err := r.Cookie(api.SessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := decode(r, &req); err != nil || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	token := "demo_session_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	user := DemoUser
	user.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	s.mu.Lock()
	s.sessions[token] = user
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     api.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   365 * 24 * 60 * 60,
	})
	writeJSON(w, http.StatusOK, api.SessionResponse{Success: true, User: &user})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)

	s.mu.Lock()
	user, ok := s.sessions[token]
	s.mu.Unlock()

	if token == "" || !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: api.SessionCookie, Value: "", Path: "/", MaxAge: -1})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
