package repositories

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/blogem/grievance-portal/database"
	"github.com/blogem/grievance-portal/models"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := "test_" + time.Now().Format("20060102150405.000000000") + ".db"

	// Clean up function
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func createTestGrievance(t *testing.T, repo GrievanceRepository, title, description, mood, priority string) *models.Grievance {
	t.Helper()

	grievance := &models.Grievance{
		Title:       title,
		Description: description,
		Mood:        mood,
		Priority:    priority,
	}
	if err := repo.Create(context.Background(), grievance); err != nil {
		t.Fatalf("Failed to create grievance: %v", err)
	}
	return grievance
}

func TestGrievanceRepositoryCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGrievanceRepository(db)
	ctx := context.Background()

	grievance := createTestGrievance(t, repo, "Loud neighbors", "Every night", "😠", models.PriorityHigh)

	if grievance.ID == 0 {
		t.Error("Expected grievance ID to be set after creation")
	}
	if grievance.CreatedAt.IsZero() {
		t.Error("Expected created timestamp to be set after creation")
	}

	// Round-trip: read-by-id returns the inputs plus defaults
	retrieved, err := repo.GetByID(ctx, grievance.ID)
	if err != nil {
		t.Fatalf("Failed to get grievance by ID: %v", err)
	}

	if retrieved.Title != "Loud neighbors" {
		t.Errorf("Expected title 'Loud neighbors', got %s", retrieved.Title)
	}
	if retrieved.Description != "Every night" {
		t.Errorf("Expected description 'Every night', got %s", retrieved.Description)
	}
	if retrieved.Mood != "😠" {
		t.Errorf("Expected mood 😠, got %s", retrieved.Mood)
	}
	if retrieved.Priority != models.PriorityHigh {
		t.Errorf("Expected priority High, got %s", retrieved.Priority)
	}
	if retrieved.Resolved {
		t.Error("Expected new grievance to be unresolved")
	}
	if retrieved.Response != "" {
		t.Errorf("Expected empty response, got %q", retrieved.Response)
	}
	if retrieved.ResolvedAt != nil {
		t.Error("Expected resolved_at to be absent for new grievance")
	}

	// Unknown ID maps to ErrNotFound
	if _, err := repo.GetByID(ctx, 9999); err == nil {
		t.Error("Expected error when getting nonexistent grievance")
	}
}

func TestGrievanceRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGrievanceRepository(db)
	ctx := context.Background()

	first := createTestGrievance(t, repo, "Dishes in the sink", "Again", "😤", models.PriorityLow)
	// Force distinct timestamps so creation order is observable
	if _, err := db.Exec("UPDATE grievances SET created_at = ? WHERE id = ?", time.Now().Add(-time.Hour), first.ID); err != nil {
		t.Fatalf("Failed to backdate grievance: %v", err)
	}
	second := createTestGrievance(t, repo, "Loud neighbors", "Every night", "😠", models.PriorityHigh)

	// Unfiltered list is newest first
	all, err := repo.List(ctx, models.GrievanceFilter{})
	if err != nil {
		t.Fatalf("Failed to list grievances: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 grievances, got %d", len(all))
	}
	if all[0].ID != second.ID {
		t.Errorf("Expected newest grievance first, got ID %d", all[0].ID)
	}

	// Priority filter includes the matching record
	high, err := repo.List(ctx, models.GrievanceFilter{Priority: models.PriorityHigh})
	if err != nil {
		t.Fatalf("Failed to list high priority grievances: %v", err)
	}
	if len(high) != 1 || high[0].Title != "Loud neighbors" {
		t.Errorf("Expected only 'Loud neighbors' for priority=High, got %v", high)
	}

	// ... and excludes it under a different priority
	low, err := repo.List(ctx, models.GrievanceFilter{Priority: models.PriorityLow})
	if err != nil {
		t.Fatalf("Failed to list low priority grievances: %v", err)
	}
	for _, g := range low {
		if g.ID == second.ID {
			t.Error("Did not expect high priority grievance in priority=Low list")
		}
	}

	// Substring filter matches title or description
	matches, err := repo.List(ctx, models.GrievanceFilter{Query: "night"})
	if err != nil {
		t.Fatalf("Failed to list with substring filter: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != second.ID {
		t.Errorf("Expected substring filter to match one grievance, got %v", matches)
	}

	// Mood filter is an exact match
	mood, err := repo.List(ctx, models.GrievanceFilter{Mood: "😤"})
	if err != nil {
		t.Fatalf("Failed to list with mood filter: %v", err)
	}
	if len(mood) != 1 || mood[0].ID != first.ID {
		t.Errorf("Expected mood filter to match one grievance, got %v", mood)
	}

	// Status filter conjoined with priority
	if err := repo.MarkResolved(ctx, first.ID, time.Now()); err != nil {
		t.Fatalf("Failed to resolve grievance: %v", err)
	}
	open, err := repo.List(ctx, models.GrievanceFilter{Status: models.StatusOpen})
	if err != nil {
		t.Fatalf("Failed to list open grievances: %v", err)
	}
	if len(open) != 1 || open[0].ID != second.ID {
		t.Errorf("Expected one open grievance, got %v", open)
	}
	closed, err := repo.List(ctx, models.GrievanceFilter{Status: models.StatusClosed, Priority: models.PriorityLow})
	if err != nil {
		t.Fatalf("Failed to list closed grievances: %v", err)
	}
	if len(closed) != 1 || closed[0].ID != first.ID {
		t.Errorf("Expected one closed low priority grievance, got %v", closed)
	}
}

func TestGrievanceRepositoryUpdateResponse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGrievanceRepository(db)
	ctx := context.Background()

	grievance := createTestGrievance(t, repo, "Thermostat wars", "It is freezing", "🥶", models.PriorityMedium)
	before, err := repo.GetByID(ctx, grievance.ID)
	if err != nil {
		t.Fatalf("Failed to get grievance: %v", err)
	}

	if err := repo.UpdateResponse(ctx, grievance.ID, "Blanket ordered"); err != nil {
		t.Fatalf("Failed to update response: %v", err)
	}

	after, err := repo.GetByID(ctx, grievance.ID)
	if err != nil {
		t.Fatalf("Failed to get updated grievance: %v", err)
	}

	if after.Response != "Blanket ordered" {
		t.Errorf("Expected updated response, got %q", after.Response)
	}

	// Only the response changed
	if after.Title != before.Title || after.Description != before.Description ||
		after.Mood != before.Mood || after.Priority != before.Priority ||
		after.Resolved != before.Resolved || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("Expected all fields except response to be unchanged")
	}

	// Updating a nonexistent ID succeeds without mutating anything
	if err := repo.UpdateResponse(ctx, 9999, "into the void"); err != nil {
		t.Errorf("Expected silent no-op for nonexistent ID, got %v", err)
	}
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count grievances: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count to stay 1 after no-op update, got %d", count)
	}
}

func TestGrievanceRepositoryMarkResolved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGrievanceRepository(db)
	ctx := context.Background()

	grievance := createTestGrievance(t, repo, "Parking spot", "Taken again", "😡", models.PriorityHigh)

	firstResolve := time.Now()
	if err := repo.MarkResolved(ctx, grievance.ID, firstResolve); err != nil {
		t.Fatalf("Failed to mark resolved: %v", err)
	}

	resolved, err := repo.GetByID(ctx, grievance.ID)
	if err != nil {
		t.Fatalf("Failed to get resolved grievance: %v", err)
	}
	if !resolved.Resolved {
		t.Error("Expected grievance to be resolved")
	}
	if resolved.ResolvedAt == nil {
		t.Fatal("Expected resolved_at to be set")
	}

	// Resolving again keeps the original timestamp
	if err := repo.MarkResolved(ctx, grievance.ID, firstResolve.Add(time.Hour)); err != nil {
		t.Fatalf("Failed to mark resolved twice: %v", err)
	}
	again, err := repo.GetByID(ctx, grievance.ID)
	if err != nil {
		t.Fatalf("Failed to get re-resolved grievance: %v", err)
	}
	if !again.Resolved {
		t.Error("Expected grievance to stay resolved")
	}
	if !again.ResolvedAt.Equal(*resolved.ResolvedAt) {
		t.Errorf("Expected resolved_at to be unchanged, got %v then %v", resolved.ResolvedAt, again.ResolvedAt)
	}
}

func TestGrievanceRepositoryStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGrievanceRepository(db)
	ctx := context.Background()

	createTestGrievance(t, repo, "One", "first", "😠", models.PriorityHigh)
	createTestGrievance(t, repo, "Two", "second", "😠", models.PriorityLow)
	third := createTestGrievance(t, repo, "Three", "third", "😢", models.PriorityHigh)

	if err := repo.MarkResolved(ctx, third.ID, time.Now()); err != nil {
		t.Fatalf("Failed to resolve grievance: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Failed to compute stats: %v", err)
	}

	if stats.ByMood["😠"] != 2 || stats.ByMood["😢"] != 1 {
		t.Errorf("Unexpected mood counts: %v", stats.ByMood)
	}
	if stats.ByPriority[models.PriorityHigh] != 2 || stats.ByPriority[models.PriorityLow] != 1 {
		t.Errorf("Unexpected priority counts: %v", stats.ByPriority)
	}
	if stats.ByStatus[models.StatusOpen] != 2 || stats.ByStatus[models.StatusClosed] != 1 {
		t.Errorf("Unexpected status counts: %v", stats.ByStatus)
	}

	// Count breakdowns sum to the total record count
	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count grievances: %v", err)
	}
	statusSum := 0
	for _, n := range stats.ByStatus {
		statusSum += n
	}
	prioritySum := 0
	for _, n := range stats.ByPriority {
		prioritySum += n
	}
	if statusSum != total || prioritySum != total || stats.Total != total {
		t.Errorf("Expected breakdowns to sum to %d, got status=%d priority=%d total=%d",
			total, statusSum, prioritySum, stats.Total)
	}
}
