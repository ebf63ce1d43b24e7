package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/grievance-portal/models"
	"github.com/blogem/grievance-portal/services"
)

// AdminController handles the administrator-facing pages
type AdminController struct {
	services *services.Services
}

// NewAdminController creates a new admin controller
func NewAdminController(services *services.Services) *AdminController {
	return &AdminController{services: services}
}

// Dashboard handles GET /dashboard
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, err := c.services.Grievance.Dashboard(r.Context())
	if err != nil {
		http.Error(w, "Failed to load dashboard data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Data        *services.DashboardData
	}{
		Title:       "Grievance Dashboard",
		CurrentPage: "dashboard",
		Error:       r.URL.Query().Get("error"),
		Data:        data,
	}

	renderTemplate(w, "dashboard", "templates/dashboard.html", templateData)
}

// ViewAll handles GET /view_all with optional q, mood, priority and status
// query parameters
func (c *AdminController) ViewAll(w http.ResponseWriter, r *http.Request) {
	filter := models.GrievanceFilter{
		Query:    r.URL.Query().Get("q"),
		Mood:     r.URL.Query().Get("mood"),
		Priority: r.URL.Query().Get("priority"),
		Status:   r.URL.Query().Get("status"),
	}

	grievances, err := c.services.Grievance.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to load grievances: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Filter      models.GrievanceFilter
		Grievances  []models.Grievance
	}{
		Title:       "All Grievances",
		CurrentPage: "view_all",
		Filter:      filter,
		Grievances:  grievances,
	}

	renderTemplate(w, "view_all", "templates/view_all.html", templateData)
}

// Respond handles POST /respond/{id}
func (c *AdminController) Respond(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid grievance ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.ResponseForm{Response: r.FormValue("response")}

	if err := c.services.Grievance.Respond(r.Context(), id, form); err != nil {
		http.Redirect(w, r, "/dashboard?error="+err.Error(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Resolve handles GET /resolve/{id}
func (c *AdminController) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid grievance ID", http.StatusBadRequest)
		return
	}

	if err := c.services.Grievance.Resolve(r.Context(), id); err != nil {
		http.Redirect(w, r, "/dashboard?error="+err.Error(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Analytics handles GET /analytics.json
func (c *AdminController) Analytics(w http.ResponseWriter, r *http.Request) {
	stats, err := c.services.Grievance.Analytics(r.Context())
	if err != nil {
		http.Error(w, "Failed to load analytics: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, "Failed to encode analytics: "+err.Error(), http.StatusInternalServerError)
	}
}
