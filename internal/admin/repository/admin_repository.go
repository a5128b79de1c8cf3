package repository

import (
	"context"
	"fmt"
	"net/url"

	"gigconnect_client/internal/admin/domain"
	"gigconnect_client/pkg/httpclient"
)

// AdminRepository management REST surface. Every mutation targets a single
// entity except the bulk user actions.
type AdminRepository interface {
	Users(ctx context.Context) ([]domain.AdminUser, error)
	SetUserBanned(ctx context.Context, userID string, banned bool) error
	SetUserVerified(ctx context.Context, userID string, verified bool) error
	BulkSetUsersBanned(ctx context.Context, userIDs []string, banned bool) error

	Gigs(ctx context.Context) ([]domain.AdminGig, error)
	SetGigStatus(ctx context.Context, gigID, status string) error

	Bookings(ctx context.Context) ([]domain.AdminBooking, error)
	SetBookingStatus(ctx context.Context, bookingID, status string) error

	Payments(ctx context.Context) ([]domain.AdminPayment, error)
	RefundPayment(ctx context.Context, paymentID string) error

	Verifications(ctx context.Context) ([]domain.Verification, error)
	ApproveVerification(ctx context.Context, verificationID string) error
	RejectVerification(ctx context.Context, verificationID, reason string) error

	Tickets(ctx context.Context) ([]domain.AdminTicket, error)
	CloseTicket(ctx context.Context, ticketID string) error

	Settings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings domain.Settings) error

	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type restAdminRepository struct {
	http *httpclient.Client
}

// NewRESTAdminRepository create admin repository over the REST API
func NewRESTAdminRepository(http *httpclient.Client) AdminRepository {
	return &restAdminRepository{http: http}
}

func (r *restAdminRepository) list(ctx context.Context, path string, out any) error {
	return r.http.Get(ctx, path, out)
}

func (r *restAdminRepository) Users(ctx context.Context) ([]domain.AdminUser, error) {
	var users []domain.AdminUser
	if err := r.list(ctx, "/api/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *restAdminRepository) SetUserBanned(ctx context.Context, userID string, banned bool) error {
	action := "ban"
	if !banned {
		action = "unban"
	}
	path := fmt.Sprintf("/api/admin/users/%s/%s", url.PathEscape(userID), action)
	return r.http.Post(ctx, path, struct{}{}, nil)
}

func (r *restAdminRepository) SetUserVerified(ctx context.Context, userID string, verified bool) error {
	action := "verify"
	if !verified {
		action = "unverify"
	}
	path := fmt.Sprintf("/api/admin/users/%s/%s", url.PathEscape(userID), action)
	return r.http.Post(ctx, path, struct{}{}, nil)
}

func (r *restAdminRepository) BulkSetUsersBanned(ctx context.Context, userIDs []string, banned bool) error {
	body := map[string]any{"user_ids": userIDs, "banned": banned}
	return r.http.Post(ctx, "/api/admin/users/bulk-ban", body, nil)
}

func (r *restAdminRepository) Gigs(ctx context.Context) ([]domain.AdminGig, error) {
	var gigs []domain.AdminGig
	if err := r.list(ctx, "/api/admin/gigs", &gigs); err != nil {
		return nil, err
	}
	return gigs, nil
}

func (r *restAdminRepository) SetGigStatus(ctx context.Context, gigID, status string) error {
	path := fmt.Sprintf("/api/admin/gigs/%s/status", url.PathEscape(gigID))
	return r.http.Patch(ctx, path, map[string]string{"status": status}, nil)
}

func (r *restAdminRepository) Bookings(ctx context.Context) ([]domain.AdminBooking, error) {
	var bookings []domain.AdminBooking
	if err := r.list(ctx, "/api/admin/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *restAdminRepository) SetBookingStatus(ctx context.Context, bookingID, status string) error {
	path := fmt.Sprintf("/api/admin/bookings/%s/status", url.PathEscape(bookingID))
	return r.http.Patch(ctx, path, map[string]string{"status": status}, nil)
}

func (r *restAdminRepository) Payments(ctx context.Context) ([]domain.AdminPayment, error) {
	var payments []domain.AdminPayment
	if err := r.list(ctx, "/api/admin/payments", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *restAdminRepository) RefundPayment(ctx context.Context, paymentID string) error {
	path := fmt.Sprintf("/api/admin/payments/%s/refund", url.PathEscape(paymentID))
	return r.http.Post(ctx, path, struct{}{}, nil)
}

func (r *restAdminRepository) Verifications(ctx context.Context) ([]domain.Verification, error) {
	var verifications []domain.Verification
	if err := r.list(ctx, "/api/admin/verifications", &verifications); err != nil {
		return nil, err
	}
	return verifications, nil
}

func (r *restAdminRepository) ApproveVerification(ctx context.Context, verificationID string) error {
	path := fmt.Sprintf("/api/admin/verifications/%s/approve", url.PathEscape(verificationID))
	return r.http.Post(ctx, path, struct{}{}, nil)
}

func (r *restAdminRepository) RejectVerification(ctx context.Context, verificationID, reason string) error {
	path := fmt.Sprintf("/api/admin/verifications/%s/reject", url.PathEscape(verificationID))
	return r.http.Post(ctx, path, map[string]string{"reason": reason}, nil)
}

func (r *restAdminRepository) Tickets(ctx context.Context) ([]domain.AdminTicket, error) {
	var tickets []domain.AdminTicket
	if err := r.list(ctx, "/api/admin/support/tickets", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *restAdminRepository) CloseTicket(ctx context.Context, ticketID string) error {
	path := fmt.Sprintf("/api/admin/support/tickets/%s/close", url.PathEscape(ticketID))
	return r.http.Post(ctx, path, struct{}{}, nil)
}

func (r *restAdminRepository) Settings(ctx context.Context) (*domain.Settings, error) {
	settings := new(domain.Settings)
	if err := r.http.Get(ctx, "/api/admin/settings", settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *restAdminRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	return r.http.Patch(ctx, "/api/admin/settings", settings, nil)
}

func (r *restAdminRepository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := new(domain.DashboardStats)
	if err := r.http.Get(ctx, "/api/admin/stats", stats); err != nil {
		return nil, err
	}
	return stats, nil
}
