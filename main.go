package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/grievance-portal/authenticator"
	"github.com/blogem/grievance-portal/config"
	"github.com/blogem/grievance-portal/controllers"
	"github.com/blogem/grievance-portal/database"
	authmiddleware "github.com/blogem/grievance-portal/middleware"
	"github.com/blogem/grievance-portal/notifier"
	"github.com/blogem/grievance-portal/repositories"
	"github.com/blogem/grievance-portal/services"
	"github.com/blogem/grievance-portal/userctx"
)

func main() {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	if err := database.InitializeDatabase(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Outbound mail goes through Resend when configured, otherwise a
	// logging no-op sender so local development needs no credentials
	var sender notifier.Sender
	if cfg.ResendAPIKey != "" {
		sender = notifier.NewResendSender(cfg.ResendAPIKey, cfg.MailFrom)
	} else {
		log.Println("RESEND_API_KEY not set, notifications will be logged only")
		sender = notifier.NewNoopSender()
	}

	mailer := notifier.New(sender, repos.Grievance, cfg)
	defer mailer.Close()

	// Initialize services
	srvs := services.NewServices(repos, mailer)

	// Static credential authenticator
	auth := authenticator.NewStaticProvider(cfg)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, auth)

	// Set up router
	r, err := setupRouter(ctrl, cfg)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	fmt.Printf("💌 Grievance portal starting on port %s\n", cfg.Port)
	fmt.Printf("📂 Visit: http://localhost:%s\n", cfg.Port)
	fmt.Printf("🗃️  Database: %s\n", cfg.DBPath)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "grievance_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static/"))))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Grievance.Home)
	r.Get("/login", ctrl.Auth.LoginForm)
	r.Post("/login", ctrl.Auth.Login)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "grievance-portal"}`)
	})

	// SUBMITTER ROUTES
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireRole(userctx.RoleSubmitter))

		r.Get("/submit", ctrl.Grievance.SubmitForm)
		r.Post("/submit", ctrl.Grievance.Submit)
		r.Get("/thankyou", ctrl.Grievance.ThankYou)
		r.Get("/my_grievances", ctrl.Grievance.MyGrievances)
	})

	// ADMINISTRATOR ROUTES
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireRole(userctx.RoleAdministrator))

		r.Get("/dashboard", ctrl.Admin.Dashboard)
		r.Get("/view_all", ctrl.Admin.ViewAll)
		r.Post("/respond/{id}", ctrl.Admin.Respond)
		r.Get("/resolve/{id}", ctrl.Admin.Resolve)
		r.Get("/analytics.json", ctrl.Admin.Analytics)
	})

	return r, nil
}
