package models

import (
	"strings"
	"time"
)

// Priority tags offered on the submission form. The column is free text, so
// records created elsewhere may carry other values.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Status filter values for list queries
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Grievance represents a single submitted complaint
type Grievance struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Mood        string     `json:"mood" db:"mood"`
	Priority    string     `json:"priority" db:"priority"`
	Resolved    bool       `json:"resolved" db:"resolved"`
	Response    string     `json:"response" db:"response"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
}

// StatusLabel returns the display status used in views and notification mail
func (g *Grievance) StatusLabel() string {
	if g.Resolved {
		return "Resolved ✅"
	}
	return "Pending ❌"
}

// HasResponse reports whether an administrator has responded yet
func (g *Grievance) HasResponse() bool {
	return g.Response != ""
}

// GrievanceForm represents submission form data
type GrievanceForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Mood        string `json:"mood"`
	Priority    string `json:"priority"`
}

// Validate validates the submission form data
func (f *GrievanceForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Title) == "" {
		errors = append(errors, "Title is required")
	}

	if len(f.Title) > 200 {
		errors = append(errors, "Title must be less than 200 characters")
	}

	if strings.TrimSpace(f.Description) == "" {
		errors = append(errors, "Description is required")
	}

	if len(f.Description) > 5000 {
		errors = append(errors, "Description must be less than 5000 characters")
	}

	return errors
}

// ResponseForm represents form data for an administrator response
type ResponseForm struct {
	Response string `json:"response"`
}

// Validate validates the response form data
func (f *ResponseForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Response) == "" {
		errors = append(errors, "Response is required")
	}

	return errors
}

// GrievanceFilter is the conjunction of predicates for filtered list reads.
// Zero values mean "no constraint".
type GrievanceFilter struct {
	Query    string // substring match on title or description
	Mood     string // exact match
	Priority string // exact match
	Status   string // "open" or "closed"
}

// IsZero reports whether no predicate is set
func (f GrievanceFilter) IsZero() bool {
	return f.Query == "" && f.Mood == "" && f.Priority == "" && f.Status == ""
}

// GrievanceStats holds the aggregate counts shown on the dashboard and
// served by the analytics endpoint
type GrievanceStats struct {
	ByMood     map[string]int `json:"mood"`
	ByPriority map[string]int `json:"priority"`
	ByStatus   map[string]int `json:"status"`
	Total      int            `json:"-"`
}
