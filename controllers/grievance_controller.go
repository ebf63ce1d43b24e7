package controllers

import (
	"net/http"

	"github.com/blogem/grievance-portal/authenticator"
	"github.com/blogem/grievance-portal/models"
	"github.com/blogem/grievance-portal/services"
	"github.com/blogem/grievance-portal/userctx"
)

// GrievanceController handles the submitter-facing pages
type GrievanceController struct {
	services *services.Services
	auth     authenticator.Authenticator
}

// NewGrievanceController creates a new grievance controller
func NewGrievanceController(services *services.Services, auth authenticator.Authenticator) *GrievanceController {
	return &GrievanceController{
		services: services,
		auth:     auth,
	}
}

// Home handles GET /
func (c *GrievanceController) Home(w http.ResponseWriter, r *http.Request) {
	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		UserName    string
	}{
		Title:       "Grievance Portal",
		CurrentPage: "home",
		UserName:    c.auth.DisplayName(userctx.RoleSubmitter),
	}

	renderTemplate(w, "home", "templates/home.html", templateData)
}

// SubmitForm handles GET /submit
func (c *GrievanceController) SubmitForm(w http.ResponseWriter, r *http.Request) {
	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Form        *models.GrievanceForm
	}{
		Title:       "Submit a Grievance",
		CurrentPage: "submit",
		Form:        &models.GrievanceForm{},
	}

	renderTemplate(w, "submit", "templates/submit.html", templateData)
}

// Submit handles POST /submit
func (c *GrievanceController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.GrievanceForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Mood:        r.FormValue("mood"),
		Priority:    r.FormValue("priority"),
	}

	_, err := c.services.Grievance.Submit(r.Context(), form)
	if err != nil {
		// Reload page with form data and error
		templateData := struct {
			Title       string
			CurrentPage string
			Error       string
			Success     string
			Form        *models.GrievanceForm
		}{
			Title:       "Submit a Grievance",
			CurrentPage: "submit",
			Error:       err.Error(),
			Form:        form,
		}

		renderTemplateWithStatus(w, http.StatusBadRequest, "submit_error", "templates/submit.html", templateData)
		return
	}

	// Redirect to confirmation page after successful submission
	http.Redirect(w, r, "/thankyou", http.StatusSeeOther)
}

// ThankYou handles GET /thankyou
func (c *GrievanceController) ThankYou(w http.ResponseWriter, r *http.Request) {
	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		UserName    string
		AdminName   string
	}{
		Title:       "Thank You",
		CurrentPage: "thankyou",
		UserName:    userctx.GetDisplayName(r.Context()),
		AdminName:   c.auth.DisplayName(userctx.RoleAdministrator),
	}

	renderTemplate(w, "thankyou", "templates/thankyou.html", templateData)
}

// MyGrievances handles GET /my_grievances
func (c *GrievanceController) MyGrievances(w http.ResponseWriter, r *http.Request) {
	grievances, err := c.services.Grievance.List(r.Context(), models.GrievanceFilter{})
	if err != nil {
		http.Error(w, "Failed to load grievances: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Grievances  []models.Grievance
	}{
		Title:       "My Grievances",
		CurrentPage: "my_grievances",
		Grievances:  grievances,
	}

	renderTemplate(w, "my_grievances", "templates/my_grievances.html", templateData)
}
