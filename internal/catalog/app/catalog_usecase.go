package app

import (
	"context"

	"gigconnect_client/internal/catalog/domain"
	"gigconnect_client/internal/catalog/repository"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/logger"

	"go.uber.org/zap"
)

// CatalogUseCase 這裡封裝了對外提供的應用服務
type CatalogUseCase interface {
	Browse(ctx context.Context, query domain.GigQuery) (*domain.GigPage, error)
	Detail(ctx context.Context, gigID string) (*domain.Gig, error)
	ReviewBooking(ctx context.Context, gigID string) (*domain.BookingReview, error)
	Book(ctx context.Context, gigID, requirement string) (*domain.Booking, error)
	MyConversations(ctx context.Context) ([]domain.ConversationSummary, error)
}

type catalogUseCase struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogUseCase 建立一個新的 CatalogUseCase
func NewCatalogUseCase(catalogRepo repository.CatalogRepository) CatalogUseCase {
	return &catalogUseCase{catalogRepo: catalogRepo}
}

func (c *catalogUseCase) Browse(ctx context.Context, query domain.GigQuery) (*domain.GigPage, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PerPage <= 0 {
		query.PerPage = 20
	}
	return c.catalogRepo.Gigs(ctx, query)
}

func (c *catalogUseCase) Detail(ctx context.Context, gigID string) (*domain.Gig, error) {
	if gigID == "" {
		return nil, errprocess.SetKind(errprocess.KindValidation, "gig id is required", nil)
	}
	return c.catalogRepo.Gig(ctx, gigID)
}

func (c *catalogUseCase) ReviewBooking(ctx context.Context, gigID string) (*domain.BookingReview, error) {
	if gigID == "" {
		return nil, errprocess.SetKind(errprocess.KindValidation, "gig id is required", nil)
	}
	return c.catalogRepo.ReviewBooking(ctx, gigID)
}

// Book 下單前先跑 review 確認 gig 可訂
func (c *catalogUseCase) Book(ctx context.Context, gigID, requirement string) (*domain.Booking, error) {
	if _, err := c.ReviewBooking(ctx, gigID); err != nil {
		return nil, err
	}

	booking, err := c.catalogRepo.CreateBooking(ctx, gigID, requirement)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("booking created", zap.String("booking_id", booking.ID), zap.String("gig_id", gigID))
	return booking, nil
}

func (c *catalogUseCase) MyConversations(ctx context.Context) ([]domain.ConversationSummary, error) {
	return c.catalogRepo.MyConversations(ctx)
}
