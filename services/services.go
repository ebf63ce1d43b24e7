package services

import (
	"github.com/blogem/grievance-portal/models"
	"github.com/blogem/grievance-portal/repositories"
)

// NotificationDispatcher is the notifier surface the services need.
// Both calls are fire-and-forget; they never block or fail the caller.
type NotificationDispatcher interface {
	NotifyAdmin(grievance models.Grievance)
	NotifySubmitter(id int, response string)
}

// Services holds all service instances
type Services struct {
	Grievance GrievanceService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, dispatcher NotificationDispatcher) *Services {
	return &Services{
		Grievance: NewGrievanceService(repos.Grievance, dispatcher),
	}
}
