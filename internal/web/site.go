// ABOUTME: Web site handler: public pages, contact form, admin back office
// ABOUTME: Admin routes are gated on the session cookie and redirect to /login

package web

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/donovan057/portfolio/internal/auth"
	"github.com/donovan057/portfolio/internal/store"
)

// messageDateFormat is the display timestamp stored with each contact
// message, matching what the admin message list shows.
const messageDateFormat = "02/01/2006 15:04"

// Site handles all site routes and holds their shared dependencies.
type Site struct {
	store         store.Store
	sessions      *auth.SessionManager
	adminUsername string
	logger        *slog.Logger
}

// New creates a Site handler
func New(st store.Store, sessions *auth.SessionManager, adminUsername string) *Site {
	return &Site{
		store:         st,
		sessions:      sessions,
		adminUsername: adminUsername,
		logger:        slog.Default().With("component", "web"),
	}
}

// RegisterRoutes registers all site routes on the given mux
func (s *Site) RegisterRoutes(mux *http.ServeMux) {
	// Static assets (embedded via go:embed). Content only changes across
	// deploys, so a short client cache is safe.
	staticSub, _ := fs.Sub(staticFS, "static")
	staticHandler := http.StripPrefix("/static/", http.FileServerFS(staticSub))
	mux.Handle("GET /static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		staticHandler.ServeHTTP(w, r)
	}))

	// Public pages (no auth required)
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /services", s.handleServices)
	mux.HandleFunc("GET /projets", s.handleProjets)
	mux.HandleFunc("GET /contact", s.handleContactPage)
	mux.HandleFunc("POST /contact", s.handleContactSubmit)
	mux.HandleFunc("GET /apropos", s.handleContentPage("apropos", "À propos"))
	mux.HandleFunc("GET /mentions-legales", s.handleContentPage("mentions-legales", "Mentions légales"))
	mux.HandleFunc("GET /cgu", s.handleContentPage("cgu", "Conditions générales d'utilisation"))
	mux.HandleFunc("GET /politique-confidentialite", s.handleContentPage("politique-confidentialite", "Politique de confidentialité"))

	// Login and logout
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)

	// Protected routes (auth required)
	mux.HandleFunc("GET /admin", s.requireAdmin(s.handleDashboard))
	mux.HandleFunc("GET /admin/messages", s.requireAdmin(s.handleMessagesList))
	mux.HandleFunc("POST /admin/messages/delete/{id}", s.requireAdmin(s.handleMessageDelete))
	mux.HandleFunc("GET /admin/projects", s.requireAdmin(s.handleProjectsList))
	mux.HandleFunc("POST /admin/projects/add", s.requireAdmin(s.handleProjectAdd))
	mux.HandleFunc("POST /admin/projects/edit/{id}", s.requireAdmin(s.handleProjectEdit))
	mux.HandleFunc("POST /admin/projects/delete/{id}", s.requireAdmin(s.handleProjectDelete))
	mux.HandleFunc("GET /admin/settings", s.requireAdmin(s.handleSettingsPage))
	mux.HandleFunc("POST /admin/settings", s.requireAdmin(s.handleSettingsUpdate))

	s.logger.Info("site routes registered")
}

// requireAdmin wraps a handler to require an authenticated admin session.
// Unauthenticated requests are redirected to the login page; admin data must
// be unobservable to anonymous clients, so there is never an error response.
func (s *Site) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.sessions.FromRequest(r)
		if !session.Admin {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}

// --- Public pages ---

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "index.html", pageData{Title: "Accueil"})
}

func (s *Site) handleServices(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "services.html", pageData{Title: "Services"})
}

// handleProjets renders the public project list
func (s *Site) handleProjets(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.serverError(w, "listing projects", err)
		return
	}
	s.renderProjets(w, projects)
}

func (s *Site) handleContactPage(w http.ResponseWriter, r *http.Request) {
	s.renderContact(w, false)
}

// handleContactSubmit stores a contact message and re-renders the contact
// page with a success flag.
func (s *Site) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	message := r.FormValue("message")
	if name == "" || email == "" || message == "" {
		http.Error(w, "missing required form fields", http.StatusBadRequest)
		return
	}

	msg := &store.Message{
		Name:    name,
		Email:   email,
		Message: message,
		Date:    time.Now().Format(messageDateFormat),
	}
	if err := s.store.CreateMessage(r.Context(), msg); err != nil {
		s.serverError(w, "creating message", err)
		return
	}

	s.renderContact(w, true)
}

// handleContentPage returns a handler rendering an embedded markdown document
// inside the page shell.
func (s *Site) handleContentPage(slug, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := renderContentMarkdown(slug)
		if err != nil {
			s.serverError(w, "rendering content page "+slug, err)
			return
		}
		s.renderMarkdownPage(w, title, body)
	}
}

// --- Login ---

// handleLoginPage renders the login form
func (s *Site) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	// If already logged in, go straight to the dashboard
	if s.sessions.FromRequest(r).Admin {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	s.renderLogin(w, "")
}

// handleLogin processes login form submission. A missing admin record and a
// credential mismatch render the same generic error so the response never
// reveals whether an admin credential is configured.
func (s *Site) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	admin, err := s.store.GetAdmin(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoAdmin) {
			s.logger.Debug("login attempted with no admin record configured")
			s.renderLogin(w, loginErrorMessage)
			return
		}
		s.serverError(w, "loading admin record", err)
		return
	}

	if username != s.adminUsername || !auth.VerifyDigest(password, admin.Password) {
		s.logger.Debug("login failed", "username", username)
		s.renderLogin(w, loginErrorMessage)
		return
	}

	if err := s.sessions.Authenticate(w, r); err != nil {
		s.serverError(w, "creating session", err)
		return
	}

	s.logger.Info("admin login successful")
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// handleLogout clears the session and redirects home. Idempotent: clearing an
// anonymous session is fine.
func (s *Site) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// --- Admin back office ---

func (s *Site) handleDashboard(w http.ResponseWriter, r *http.Request) {
	messageCount, err := s.store.CountMessages(r.Context())
	if err != nil {
		s.serverError(w, "counting messages", err)
		return
	}
	projectCount, err := s.store.CountProjects(r.Context())
	if err != nil {
		s.serverError(w, "counting projects", err)
		return
	}
	s.renderDashboard(w, messageCount, projectCount)
}

func (s *Site) handleMessagesList(w http.ResponseWriter, r *http.Request) {
	messages, err := s.store.ListMessages(r.Context())
	if err != nil {
		s.serverError(w, "listing messages", err)
		return
	}
	s.renderMessages(w, messages)
}

// handleMessageDelete removes a message. Deleting an id that no longer exists
// is a no-op; either way the admin is sent back to the list.
func (s *Site) handleMessageDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteMessage(r.Context(), id); err != nil {
		s.serverError(w, "deleting message", err)
		return
	}

	http.Redirect(w, r, "/admin/messages", http.StatusFound)
}

func (s *Site) handleProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.serverError(w, "listing projects", err)
		return
	}
	s.renderAdminProjects(w, projects)
}

func (s *Site) handleProjectAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	if title == "" || description == "" {
		http.Error(w, "missing required form fields", http.StatusBadRequest)
		return
	}

	project := &store.Project{
		Title:       title,
		Description: description,
		Link:        r.FormValue("link"),
	}
	if err := s.store.CreateProject(r.Context(), project); err != nil {
		s.serverError(w, "creating project", err)
		return
	}

	http.Redirect(w, r, "/admin/projects", http.StatusFound)
}

// handleProjectEdit replaces a project's fields wholesale. Editing an id that
// no longer exists is a no-op.
func (s *Site) handleProjectEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	if title == "" || description == "" {
		http.Error(w, "missing required form fields", http.StatusBadRequest)
		return
	}

	project := &store.Project{
		ID:          id,
		Title:       title,
		Description: description,
		Link:        r.FormValue("link"),
	}
	if err := s.store.UpdateProject(r.Context(), project); err != nil {
		s.serverError(w, "updating project", err)
		return
	}

	http.Redirect(w, r, "/admin/projects", http.StatusFound)
}

func (s *Site) handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteProject(r.Context(), id); err != nil {
		s.serverError(w, "deleting project", err)
		return
	}

	http.Redirect(w, r, "/admin/projects", http.StatusFound)
}

func (s *Site) handleSettingsPage(w http.ResponseWriter, r *http.Request) {
	s.renderSettings(w, "", false)
}

// handleSettingsUpdate changes the admin password. The old password must
// match the stored digest or nothing is mutated. The existing session stays
// valid after a change; sessions are client-held and are not invalidated.
func (s *Site) handleSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	oldPassword := r.FormValue("old_password")
	newPassword := r.FormValue("new_password")

	admin, err := s.store.GetAdmin(r.Context())
	if err != nil {
		s.serverError(w, "loading admin record", err)
		return
	}

	if !auth.VerifyDigest(oldPassword, admin.Password) {
		s.renderSettings(w, "Ancien mot de passe incorrect", false)
		return
	}

	if err := s.store.UpdateAdminPassword(r.Context(), admin.ID, auth.Digest(newPassword)); err != nil {
		s.serverError(w, "updating admin password", err)
		return
	}

	s.logger.Info("admin password changed")
	s.renderSettings(w, "", true)
}

// serverError logs a store or rendering fault and answers with a generic 500.
func (s *Site) serverError(w http.ResponseWriter, what string, err error) {
	s.logger.Error("request failed", "op", what, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
