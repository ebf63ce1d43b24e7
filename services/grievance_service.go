package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/grievance-portal/models"
	"github.com/blogem/grievance-portal/repositories"
)

// GrievanceService interface defines grievance business logic
type GrievanceService interface {
	Submit(ctx context.Context, form *models.GrievanceForm) (*models.Grievance, error)
	Get(ctx context.Context, id int) (*models.Grievance, error)
	List(ctx context.Context, filter models.GrievanceFilter) ([]models.Grievance, error)
	Respond(ctx context.Context, id int, form *models.ResponseForm) error
	Resolve(ctx context.Context, id int) error
	Dashboard(ctx context.Context) (*DashboardData, error)
	Analytics(ctx context.Context) (*models.GrievanceStats, error)
}

// DashboardData is everything the administrator landing page shows
type DashboardData struct {
	Stats      *models.GrievanceStats
	Grievances []models.Grievance
	OpenCount  int
}

// grievanceService implements GrievanceService interface
type grievanceService struct {
	repo       repositories.GrievanceRepository
	dispatcher NotificationDispatcher
}

// NewGrievanceService creates a new grievance service
func NewGrievanceService(repo repositories.GrievanceRepository, dispatcher NotificationDispatcher) GrievanceService {
	return &grievanceService{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// Submit validates the form, creates the record and queues the admin
// notification. The record is durable before the notification is queued;
// a failed send never unwinds the submission.
func (s *grievanceService) Submit(ctx context.Context, form *models.GrievanceForm) (*models.Grievance, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	grievance := &models.Grievance{
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
		Mood:        strings.TrimSpace(form.Mood),
		Priority:    strings.TrimSpace(form.Priority),
	}

	if err := s.repo.Create(ctx, grievance); err != nil {
		return nil, fmt.Errorf("failed to create grievance: %w", err)
	}

	s.dispatcher.NotifyAdmin(*grievance)

	return grievance, nil
}

// Get retrieves a grievance by ID
func (s *grievanceService) Get(ctx context.Context, id int) (*models.Grievance, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid grievance ID: %d", id)
	}
	return s.repo.GetByID(ctx, id)
}

// List retrieves grievances matching the filter
func (s *grievanceService) List(ctx context.Context, filter models.GrievanceFilter) ([]models.Grievance, error) {
	return s.repo.List(ctx, filter)
}

// Respond stores the administrator response and queues the submitter
// notification. An ID that matches no record leaves the store untouched and
// the notification lookup no-ops; no error is surfaced either way.
func (s *grievanceService) Respond(ctx context.Context, id int, form *models.ResponseForm) error {
	if id <= 0 {
		return fmt.Errorf("invalid grievance ID: %d", id)
	}

	if errors := form.Validate(); len(errors) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	response := strings.TrimSpace(form.Response)
	if err := s.repo.UpdateResponse(ctx, id, response); err != nil {
		return fmt.Errorf("failed to store response: %w", err)
	}

	s.dispatcher.NotifySubmitter(id, response)

	return nil
}

// Resolve marks a grievance resolved. Resolving again is a no-op and the
// resolution timestamp is never overwritten. No notification is sent here;
// only a response triggers mail.
func (s *grievanceService) Resolve(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("invalid grievance ID: %d", id)
	}

	if err := s.repo.MarkResolved(ctx, id, time.Now()); err != nil {
		return fmt.Errorf("failed to resolve grievance: %w", err)
	}

	return nil
}

// Dashboard assembles the stats and full list for the administrator view
func (s *grievanceService) Dashboard(ctx context.Context) (*DashboardData, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	grievances, err := s.repo.List(ctx, models.GrievanceFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load grievances: %w", err)
	}

	return &DashboardData{
		Stats:      stats,
		Grievances: grievances,
		OpenCount:  stats.ByStatus[models.StatusOpen],
	}, nil
}

// Analytics returns the aggregate counts for the machine-readable endpoint
func (s *grievanceService) Analytics(ctx context.Context) (*models.GrievanceStats, error) {
	return s.repo.Stats(ctx)
}
