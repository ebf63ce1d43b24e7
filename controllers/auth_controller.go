package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/grievance-portal/authenticator"
	"github.com/blogem/grievance-portal/middleware"
	"github.com/blogem/grievance-portal/userctx"
)

// AuthController handles login and logout
type AuthController struct {
	auth authenticator.Authenticator
}

// NewAuthController creates a new auth controller
func NewAuthController(auth authenticator.Authenticator) *AuthController {
	return &AuthController{auth: auth}
}

type loginPageData struct {
	Title       string
	CurrentPage string
	Error       string
	Success     string
	Username    string
}

// LoginForm handles GET /login
func (c *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "login", "templates/login.html", loginPageData{
		Title:       "Login",
		CurrentPage: "login",
	})
}

// Login handles POST /login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	role, ok := c.auth.Authenticate(username, password)
	if !ok {
		// Bad credentials re-render the form; no state changes
		renderTemplateWithStatus(w, http.StatusUnauthorized, "login_error", "templates/login.html", loginPageData{
			Title:       "Login",
			CurrentPage: "login",
			Error:       "Invalid credentials",
			Username:    username,
		})
		return
	}

	sess := session.GetSession(r)
	sess.Set(middleware.SessionRoleKey, string(role))
	sess.Set(middleware.SessionDisplayNameKey, c.auth.DisplayName(role))

	// Honor the destination stored by the role gate, if any
	if dest, ok := sess.Get(middleware.SessionRedirectKey).(string); ok && dest != "" {
		sess.Delete(middleware.SessionRedirectKey)
		http.Redirect(w, r, dest, http.StatusSeeOther)
		return
	}

	switch role {
	case userctx.RoleAdministrator:
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/submit", http.StatusSeeOther)
	}
}

// Logout handles GET /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete(middleware.SessionRoleKey)
	sess.Delete(middleware.SessionDisplayNameKey)
	sess.Delete(middleware.SessionRedirectKey)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
