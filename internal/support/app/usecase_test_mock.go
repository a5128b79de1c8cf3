package app

import (
	"context"

	"gigconnect_client/internal/support/domain"

	"github.com/stretchr/testify/mock"
)

// MockTicketRepository Mock TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

// MyTickets moke list own tickets
func (m *MockTicketRepository) MyTickets(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Ticket), args.Error(1)
	}
	return nil, args.Error(1)
}

// Thread moke fetch ticket thread
func (m *MockTicketRepository) Thread(ctx context.Context, ticketID string) (*domain.Thread, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Thread), args.Error(1)
	}
	return nil, args.Error(1)
}

// Create moke create ticket
func (m *MockTicketRepository) Create(ctx context.Context, params domain.CreateParams) (*domain.Ticket, error) {
	args := m.Called(ctx, params)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Ticket), args.Error(1)
	}
	return nil, args.Error(1)
}

// Reply moke reply in thread
func (m *MockTicketRepository) Reply(ctx context.Context, ticketID, content string) (*domain.Reply, error) {
	args := m.Called(ctx, ticketID, content)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Reply), args.Error(1)
	}
	return nil, args.Error(1)
}

// Resolve moke resolve ticket
func (m *MockTicketRepository) Resolve(ctx context.Context, ticketID string) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}
