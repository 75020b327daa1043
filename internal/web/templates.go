// ABOUTME: Template rendering functions for the site
// ABOUTME: Loads templates from the embedded filesystem and renders them

package web

import (
	"html/template"
	"net/http"

	"github.com/donovan057/portfolio/internal/store"
)

// loginErrorMessage is the single generic login failure message. Wrong
// password and missing admin record must render identically.
const loginErrorMessage = "Identifiants invalides"

// Template data types
type pageData struct {
	Title string
}

type projetsData struct {
	Title    string
	Projects []*store.Project
}

type contactData struct {
	Title   string
	Success bool
}

type markdownPageData struct {
	Title string
	Body  template.HTML
}

type loginData struct {
	Title string
	Error string
}

type dashboardData struct {
	Title        string
	Active       string
	MessageCount int
	ProjectCount int
}

type messagesData struct {
	Title    string
	Active   string
	Messages []*store.Message
}

type adminProjectsData struct {
	Title    string
	Active   string
	Projects []*store.Project
}

type settingsData struct {
	Title   string
	Active  string
	Error   string
	Success bool
}

// renderPage renders a simple public page with the site shell.
func (s *Site) renderPage(w http.ResponseWriter, page string, data pageData) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/"+page))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render page", "page", page, "error", err)
	}
}

// renderProjets renders the public project list page
func (s *Site) renderProjets(w http.ResponseWriter, projects []*store.Project) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/projets.html"))

	data := projetsData{
		Title:    "Projets",
		Projects: projects,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render projects page", "error", err)
	}
}

// renderContact renders the contact page, optionally with the success banner
func (s *Site) renderContact(w http.ResponseWriter, success bool) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/contact.html"))

	data := contactData{
		Title:   "Contact",
		Success: success,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render contact page", "error", err)
	}
}

// renderMarkdownPage renders markdown-backed content inside the site shell
func (s *Site) renderMarkdownPage(w http.ResponseWriter, title string, body template.HTML) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/page.html"))

	data := markdownPageData{
		Title: title,
		Body:  body,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render content page", "error", err)
	}
}

// renderLogin renders the login page
func (s *Site) renderLogin(w http.ResponseWriter, errorMsg string) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/login.html"))

	data := loginData{
		Title: "Connexion",
		Error: errorMsg,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render login page", "error", err)
	}
}

// renderDashboard renders the admin dashboard
func (s *Site) renderDashboard(w http.ResponseWriter, messageCount, projectCount int) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/admin_nav.html", "templates/dashboard.html"))

	data := dashboardData{
		Title:        "Tableau de bord",
		Active:       "dashboard",
		MessageCount: messageCount,
		ProjectCount: projectCount,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render dashboard", "error", err)
	}
}

// renderMessages renders the admin message list
func (s *Site) renderMessages(w http.ResponseWriter, messages []*store.Message) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/admin_nav.html", "templates/admin_messages.html"))

	data := messagesData{
		Title:    "Messages",
		Active:   "messages",
		Messages: messages,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render messages page", "error", err)
	}
}

// renderAdminProjects renders the admin project management page
func (s *Site) renderAdminProjects(w http.ResponseWriter, projects []*store.Project) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/admin_nav.html", "templates/admin_projects.html"))

	data := adminProjectsData{
		Title:    "Projets",
		Active:   "projects",
		Projects: projects,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render admin projects page", "error", err)
	}
}

// renderSettings renders the settings page with an optional error or success
// indicator
func (s *Site) renderSettings(w http.ResponseWriter, errorMsg string, success bool) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/admin_nav.html", "templates/admin_settings.html"))

	data := settingsData{
		Title:   "Paramètres",
		Active:  "settings",
		Error:   errorMsg,
		Success: success,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render settings page", "error", err)
	}
}
