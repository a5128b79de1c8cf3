package app

import (
	"context"

	"gigconnect_client/internal/catalog/domain"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository Mock CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

// Gigs moke list gigs
func (m *MockCatalogRepository) Gigs(ctx context.Context, query domain.GigQuery) (*domain.GigPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.GigPage), args.Error(1)
	}
	return nil, args.Error(1)
}

// Gig moke gig detail
func (m *MockCatalogRepository) Gig(ctx context.Context, gigID string) (*domain.Gig, error) {
	args := m.Called(ctx, gigID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Gig), args.Error(1)
	}
	return nil, args.Error(1)
}

// ReviewBooking moke price breakdown
func (m *MockCatalogRepository) ReviewBooking(ctx context.Context, gigID string) (*domain.BookingReview, error) {
	args := m.Called(ctx, gigID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.BookingReview), args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateBooking moke create booking
func (m *MockCatalogRepository) CreateBooking(ctx context.Context, gigID, requirement string) (*domain.Booking, error) {
	args := m.Called(ctx, gigID, requirement)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

// MyConversations moke conversations list
func (m *MockCatalogRepository) MyConversations(ctx context.Context) ([]domain.ConversationSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ConversationSummary), args.Error(1)
	}
	return nil, args.Error(1)
}
