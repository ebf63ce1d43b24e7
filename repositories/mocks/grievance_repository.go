// Package mocks provides testify mock implementations of the repository
// interfaces for service-level tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/blogem/grievance-portal/models"
)

// MockGrievanceRepository is a mock implementation of repositories.GrievanceRepository
type MockGrievanceRepository struct {
	mock.Mock
}

// NewMockGrievanceRepository creates a mock bound to the test's lifecycle;
// expectations are asserted automatically at cleanup.
func NewMockGrievanceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGrievanceRepository {
	m := &MockGrievanceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGrievanceRepository) Create(ctx context.Context, grievance *models.Grievance) error {
	args := m.Called(ctx, grievance)
	return args.Error(0)
}

func (m *MockGrievanceRepository) GetByID(ctx context.Context, id int) (*models.Grievance, error) {
	args := m.Called(ctx, id)
	var grievance *models.Grievance
	if args.Get(0) != nil {
		grievance = args.Get(0).(*models.Grievance)
	}
	return grievance, args.Error(1)
}

func (m *MockGrievanceRepository) List(ctx context.Context, filter models.GrievanceFilter) ([]models.Grievance, error) {
	args := m.Called(ctx, filter)
	var grievances []models.Grievance
	if args.Get(0) != nil {
		grievances = args.Get(0).([]models.Grievance)
	}
	return grievances, args.Error(1)
}

func (m *MockGrievanceRepository) UpdateResponse(ctx context.Context, id int, response string) error {
	args := m.Called(ctx, id, response)
	return args.Error(0)
}

func (m *MockGrievanceRepository) MarkResolved(ctx context.Context, id int, resolvedAt time.Time) error {
	args := m.Called(ctx, id, resolvedAt)
	return args.Error(0)
}

func (m *MockGrievanceRepository) Stats(ctx context.Context) (*models.GrievanceStats, error) {
	args := m.Called(ctx)
	var stats *models.GrievanceStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*models.GrievanceStats)
	}
	return stats, args.Error(1)
}

func (m *MockGrievanceRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
