package app

import (
	"context"

	"gigconnect_client/internal/admin/domain"

	"github.com/stretchr/testify/mock"
)

// MockAdminRepository Mock AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

// Users moke list users
func (m *MockAdminRepository) Users(ctx context.Context) ([]domain.AdminUser, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.AdminUser), args.Error(1)
	}
	return nil, args.Error(1)
}

// SetUserBanned moke ban/unban
func (m *MockAdminRepository) SetUserBanned(ctx context.Context, userID string, banned bool) error {
	args := m.Called(ctx, userID, banned)
	return args.Error(0)
}

// SetUserVerified moke verify/unverify
func (m *MockAdminRepository) SetUserVerified(ctx context.Context, userID string, verified bool) error {
	args := m.Called(ctx, userID, verified)
	return args.Error(0)
}

// BulkSetUsersBanned moke bulk ban
func (m *MockAdminRepository) BulkSetUsersBanned(ctx context.Context, userIDs []string, banned bool) error {
	args := m.Called(ctx, userIDs, banned)
	return args.Error(0)
}

// Gigs moke list gigs
func (m *MockAdminRepository) Gigs(ctx context.Context) ([]domain.AdminGig, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.AdminGig), args.Error(1)
	}
	return nil, args.Error(1)
}

// SetGigStatus moke gig status mutation
func (m *MockAdminRepository) SetGigStatus(ctx context.Context, gigID, status string) error {
	args := m.Called(ctx, gigID, status)
	return args.Error(0)
}

// Bookings moke list bookings
func (m *MockAdminRepository) Bookings(ctx context.Context) ([]domain.AdminBooking, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.AdminBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

// SetBookingStatus moke booking status mutation
func (m *MockAdminRepository) SetBookingStatus(ctx context.Context, bookingID, status string) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

// Payments moke list payments
func (m *MockAdminRepository) Payments(ctx context.Context) ([]domain.AdminPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.AdminPayment), args.Error(1)
	}
	return nil, args.Error(1)
}

// RefundPayment moke refund
func (m *MockAdminRepository) RefundPayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// Verifications moke list verifications
func (m *MockAdminRepository) Verifications(ctx context.Context) ([]domain.Verification, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Verification), args.Error(1)
	}
	return nil, args.Error(1)
}

// ApproveVerification moke approve
func (m *MockAdminRepository) ApproveVerification(ctx context.Context, verificationID string) error {
	args := m.Called(ctx, verificationID)
	return args.Error(0)
}

// RejectVerification moke reject
func (m *MockAdminRepository) RejectVerification(ctx context.Context, verificationID, reason string) error {
	args := m.Called(ctx, verificationID, reason)
	return args.Error(0)
}

// Tickets moke list tickets
func (m *MockAdminRepository) Tickets(ctx context.Context) ([]domain.AdminTicket, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.AdminTicket), args.Error(1)
	}
	return nil, args.Error(1)
}

// CloseTicket moke close ticket
func (m *MockAdminRepository) CloseTicket(ctx context.Context, ticketID string) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

// Settings moke read settings
func (m *MockAdminRepository) Settings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Settings), args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateSettings moke update settings
func (m *MockAdminRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// Stats moke dashboard stats
func (m *MockAdminRepository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.DashboardStats), args.Error(1)
	}
	return nil, args.Error(1)
}
