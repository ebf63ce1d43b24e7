package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/grievance-portal/models"
)

// ErrNotFound is returned when a grievance lookup matches no row
var ErrNotFound = errors.New("grievance not found")

// GrievanceRepository interface defines grievance database operations
type GrievanceRepository interface {
	Create(ctx context.Context, grievance *models.Grievance) error
	GetByID(ctx context.Context, id int) (*models.Grievance, error)
	List(ctx context.Context, filter models.GrievanceFilter) ([]models.Grievance, error)
	UpdateResponse(ctx context.Context, id int, response string) error
	MarkResolved(ctx context.Context, id int, resolvedAt time.Time) error
	Stats(ctx context.Context) (*models.GrievanceStats, error)
	Count(ctx context.Context) (int, error)
}

// grievanceRepository implements GrievanceRepository interface
type grievanceRepository struct {
	db *sql.DB
}

// NewGrievanceRepository creates a new grievance repository
func NewGrievanceRepository(db *sql.DB) GrievanceRepository {
	return &grievanceRepository{db: db}
}

const grievanceColumns = `id, title, description, mood, priority, resolved, response, created_at, resolved_at`

// Create inserts a new grievance and assigns its ID and creation timestamp
func (r *grievanceRepository) Create(ctx context.Context, grievance *models.Grievance) error {
	query := `
		INSERT INTO grievances (title, description, mood, priority, resolved, response, created_at)
		VALUES (?, ?, ?, ?, 0, '', ?)
	`

	if grievance.CreatedAt.IsZero() {
		grievance.CreatedAt = time.Now()
	}

	result, err := r.db.ExecContext(ctx, query,
		grievance.Title,
		grievance.Description,
		grievance.Mood,
		grievance.Priority,
		grievance.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create grievance: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	grievance.ID = int(id)
	grievance.Resolved = false
	grievance.Response = ""
	grievance.ResolvedAt = nil
	return nil
}

// GetByID retrieves a grievance by ID
func (r *grievanceRepository) GetByID(ctx context.Context, id int) (*models.Grievance, error) {
	query := `SELECT ` + grievanceColumns + ` FROM grievances WHERE id = ?`

	grievance, err := scanGrievance(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("grievance %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get grievance: %w", err)
	}

	return grievance, nil
}

// List retrieves grievances matching the filter, newest first.
// Every predicate is bound as a query parameter, never spliced into the SQL.
func (r *grievanceRepository) List(ctx context.Context, filter models.GrievanceFilter) ([]models.Grievance, error) {
	query := `SELECT ` + grievanceColumns + ` FROM grievances`
	var conditions []string
	var args []interface{}

	if filter.Query != "" {
		conditions = append(conditions, "(title LIKE ? OR description LIKE ?)")
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Mood != "" {
		conditions = append(conditions, "mood = ?")
		args = append(args, filter.Mood)
	}
	if filter.Priority != "" {
		conditions = append(conditions, "priority = ?")
		args = append(args, filter.Priority)
	}
	switch filter.Status {
	case models.StatusOpen:
		conditions = append(conditions, "resolved = 0")
	case models.StatusClosed:
		conditions = append(conditions, "resolved = 1")
	}

	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query grievances: %w", err)
	}
	defer rows.Close()

	var grievances []models.Grievance
	for rows.Next() {
		grievance, err := scanGrievance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grievance: %w", err)
		}
		grievances = append(grievances, *grievance)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grievances: %w", err)
	}

	return grievances, nil
}

// UpdateResponse overwrites the response text for the given grievance.
// A missing id is a silent no-op.
func (r *grievanceRepository) UpdateResponse(ctx context.Context, id int, response string) error {
	query := `UPDATE grievances SET response = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, response, id); err != nil {
		return fmt.Errorf("failed to update response: %w", err)
	}

	return nil
}

// MarkResolved sets resolved and stamps resolved_at once; re-resolving keeps
// the original timestamp. A missing id is a silent no-op.
func (r *grievanceRepository) MarkResolved(ctx context.Context, id int, resolvedAt time.Time) error {
	query := `UPDATE grievances SET resolved = 1, resolved_at = COALESCE(resolved_at, ?) WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, resolvedAt, id); err != nil {
		return fmt.Errorf("failed to mark grievance resolved: %w", err)
	}

	return nil
}

// Stats computes the mood, priority and status count breakdowns over the
// full record set
func (r *grievanceRepository) Stats(ctx context.Context) (*models.GrievanceStats, error) {
	stats := &models.GrievanceStats{
		ByMood:     make(map[string]int),
		ByPriority: make(map[string]int),
		ByStatus:   map[string]int{models.StatusOpen: 0, models.StatusClosed: 0},
	}

	if err := r.countBy(ctx, "mood", stats.ByMood); err != nil {
		return nil, err
	}
	if err := r.countBy(ctx, "priority", stats.ByPriority); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT resolved, COUNT(*) FROM grievances GROUP BY resolved`)
	if err != nil {
		return nil, fmt.Errorf("failed to count grievances by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var resolved bool
		var count int
		if err := rows.Scan(&resolved, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		if resolved {
			stats.ByStatus[models.StatusClosed] = count
		} else {
			stats.ByStatus[models.StatusOpen] = count
		}
		stats.Total += count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}

	return stats, nil
}

// countBy fills counts grouped by one of the fixed grievance columns.
// column is always a compile-time constant, never user input.
func (r *grievanceRepository) countBy(ctx context.Context, column string, into map[string]int) error {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM grievances GROUP BY %s`, column, column)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to count grievances by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		into[value] = count
	}

	return rows.Err()
}

// Count returns the total number of grievances
func (r *grievanceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM grievances`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count grievances: %w", err)
	}

	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanGrievance(row scanner) (*models.Grievance, error) {
	var grievance models.Grievance
	var resolvedAt sql.NullTime

	err := row.Scan(
		&grievance.ID,
		&grievance.Title,
		&grievance.Description,
		&grievance.Mood,
		&grievance.Priority,
		&grievance.Resolved,
		&grievance.Response,
		&grievance.CreatedAt,
		&resolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if resolvedAt.Valid {
		grievance.ResolvedAt = &resolvedAt.Time
	}

	return &grievance, nil
}
