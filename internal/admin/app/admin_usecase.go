package app

import (
	"context"

	"gigconnect_client/internal/admin/domain"
	"gigconnect_client/internal/admin/repository"
	"gigconnect_client/pkg"
	"gigconnect_client/pkg/cache"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/logger"

	"go.uber.org/zap"
)

// 每個管理畫面一個 cache key；mutation 成功後使該 key 失效
const (
	keyUsers         = "admin:users"
	keyGigs          = "admin:gigs"
	keyBookings      = "admin:bookings"
	keyPayments      = "admin:payments"
	keyVerifications = "admin:verifications"
	keyTickets       = "admin:tickets"
)

var gigStatuses = []string{"active", "paused", "removed"}
var bookingStatuses = []string{"pending", "in_progress", "completed", "cancelled"}

// AdminUseCase 這裡封裝了對外提供的應用服務
type AdminUseCase interface {
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

type adminUseCase struct {
	adminRepo repository.AdminRepository
	listCache cache.Cache[any]
}

// NewAdminUseCase 建立一個新的 AdminUseCase
func NewAdminUseCase(adminRepo repository.AdminRepository, listCache cache.Cache[any]) AdminUseCase {
	return &adminUseCase{adminRepo: adminRepo, listCache: listCache}
}

// cachedList list-then-cache cycle shared by every screen
func cachedList[T any](ctx context.Context, a *adminUseCase, key string,
	fetch func(context.Context) ([]T, error),
) ([]T, error) {
	if v, ok := a.listCache.Get(key); ok {
		if list, ok := v.([]T); ok {
			return list, nil
		}
	}

	list, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	a.listCache.Set(key, list)
	return list, nil
}

// mutate invalidates the owning list key only after the call succeeded
func (a *adminUseCase) mutate(key string, op func() error) error {
	if err := op(); err != nil {
		return err
	}
	a.listCache.Del(key)
	return nil
}

func (a *adminUseCase) Users(ctx context.Context) ([]domain.AdminUser, error) {
	return cachedList(ctx, a, keyUsers, a.adminRepo.Users)
}

func (a *adminUseCase) SetUserBanned(ctx context.Context, userID string, banned bool) error {
	return a.mutate(keyUsers, func() error {
		return a.adminRepo.SetUserBanned(ctx, userID, banned)
	})
}

func (a *adminUseCase) SetUserVerified(ctx context.Context, userID string, verified bool) error {
	return a.mutate(keyUsers, func() error {
		return a.adminRepo.SetUserVerified(ctx, userID, verified)
	})
}

func (a *adminUseCase) BulkSetUsersBanned(ctx context.Context, userIDs []string, banned bool) error {
	if len(userIDs) == 0 {
		return errprocess.SetKind(errprocess.KindValidation, "no users selected", nil)
	}
	return a.mutate(keyUsers, func() error {
		return a.adminRepo.BulkSetUsersBanned(ctx, userIDs, banned)
	})
}

func (a *adminUseCase) Gigs(ctx context.Context) ([]domain.AdminGig, error) {
	return cachedList(ctx, a, keyGigs, a.adminRepo.Gigs)
}

func (a *adminUseCase) SetGigStatus(ctx context.Context, gigID, status string) error {
	if !pkg.Contains(gigStatuses, status) {
		return errprocess.SetKind(errprocess.KindValidation, "unknown gig status: "+status, nil)
	}
	return a.mutate(keyGigs, func() error {
		return a.adminRepo.SetGigStatus(ctx, gigID, status)
	})
}

func (a *adminUseCase) Bookings(ctx context.Context) ([]domain.AdminBooking, error) {
	return cachedList(ctx, a, keyBookings, a.adminRepo.Bookings)
}

func (a *adminUseCase) SetBookingStatus(ctx context.Context, bookingID, status string) error {
	if !pkg.Contains(bookingStatuses, status) {
		return errprocess.SetKind(errprocess.KindValidation, "unknown booking status: "+status, nil)
	}
	return a.mutate(keyBookings, func() error {
		return a.adminRepo.SetBookingStatus(ctx, bookingID, status)
	})
}

func (a *adminUseCase) Payments(ctx context.Context) ([]domain.AdminPayment, error) {
	return cachedList(ctx, a, keyPayments, a.adminRepo.Payments)
}

func (a *adminUseCase) RefundPayment(ctx context.Context, paymentID string) error {
	err := a.mutate(keyPayments, func() error {
		return a.adminRepo.RefundPayment(ctx, paymentID)
	})
	if err == nil {
		logger.Log.Info("payment refunded", zap.String("payment_id", paymentID))
	}
	return err
}

func (a *adminUseCase) Verifications(ctx context.Context) ([]domain.Verification, error) {
	return cachedList(ctx, a, keyVerifications, a.adminRepo.Verifications)
}

func (a *adminUseCase) ApproveVerification(ctx context.Context, verificationID string) error {
	return a.mutate(keyVerifications, func() error {
		return a.adminRepo.ApproveVerification(ctx, verificationID)
	})
}

// RejectVerification 駁回必須附理由
func (a *adminUseCase) RejectVerification(ctx context.Context, verificationID, reason string) error {
	if reason == "" {
		return errprocess.SetKind(errprocess.KindValidation, "a rejection reason is required", nil)
	}
	return a.mutate(keyVerifications, func() error {
		return a.adminRepo.RejectVerification(ctx, verificationID, reason)
	})
}

func (a *adminUseCase) Tickets(ctx context.Context) ([]domain.AdminTicket, error) {
	return cachedList(ctx, a, keyTickets, a.adminRepo.Tickets)
}

func (a *adminUseCase) CloseTicket(ctx context.Context, ticketID string) error {
	return a.mutate(keyTickets, func() error {
		return a.adminRepo.CloseTicket(ctx, ticketID)
	})
}

// Settings 設定不進 list cache，每次直接讀
func (a *adminUseCase) Settings(ctx context.Context) (*domain.Settings, error) {
	return a.adminRepo.Settings(ctx)
}

func (a *adminUseCase) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	if settings.ServiceFeePercent < 0 || settings.ServiceFeePercent > 100 {
		return errprocess.SetKind(errprocess.KindValidation, "service fee must be between 0 and 100", nil)
	}
	return a.adminRepo.UpdateSettings(ctx, settings)
}

func (a *adminUseCase) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return a.adminRepo.Stats(ctx)
}
