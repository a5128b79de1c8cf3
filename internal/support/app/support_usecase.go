package app

import (
	"context"
	"strings"

	"gigconnect_client/internal/support/domain"
	"gigconnect_client/internal/support/repository"
	errprocess "gigconnect_client/pkg/err"
	"gigconnect_client/pkg/logger"

	"go.uber.org/zap"
)

// SupportUseCase 這裡封裝了對外提供的應用服務
type SupportUseCase interface {
	MyTickets(ctx context.Context) ([]domain.Ticket, error)
	Thread(ctx context.Context, ticketID string) (*domain.Thread, error)
	Create(ctx context.Context, params domain.CreateParams) (*domain.Ticket, error)
	Reply(ctx context.Context, ticketID, content string) (*domain.Reply, error)
	Resolve(ctx context.Context, ticketID string) error
}

type supportUseCase struct {
	ticketRepo repository.TicketRepository
}

// NewSupportUseCase 建立一個新的 SupportUseCase
func NewSupportUseCase(ticketRepo repository.TicketRepository) SupportUseCase {
	return &supportUseCase{ticketRepo: ticketRepo}
}

func (s *supportUseCase) MyTickets(ctx context.Context) ([]domain.Ticket, error) {
	return s.ticketRepo.MyTickets(ctx)
}

func (s *supportUseCase) Thread(ctx context.Context, ticketID string) (*domain.Thread, error) {
	if ticketID == "" {
		return nil, errprocess.SetKind(errprocess.KindValidation, "ticket id is required", nil)
	}
	return s.ticketRepo.Thread(ctx, ticketID)
}

// Create 欄位規則先在本地驗，通過才送出
func (s *supportUseCase) Create(ctx context.Context, params domain.CreateParams) (*domain.Ticket, error) {
	if err := params.Validate(); err != nil {
		return nil, errprocess.SetKind(errprocess.KindValidation, err.Error(), err)
	}

	ticket, err := s.ticketRepo.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("ticket created", zap.String("ticket_id", ticket.ID), zap.String("priority", string(ticket.Priority)))
	return ticket, nil
}

func (s *supportUseCase) Reply(ctx context.Context, ticketID, content string) (*domain.Reply, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errprocess.SetKind(errprocess.KindValidation, "reply content is required", nil)
	}
	return s.ticketRepo.Reply(ctx, ticketID, content)
}

// Resolve 先抓 thread 確認狀態，open 以外的票直接擋下
func (s *supportUseCase) Resolve(ctx context.Context, ticketID string) error {
	thread, err := s.ticketRepo.Thread(ctx, ticketID)
	if err != nil {
		return err
	}
	if !thread.Ticket.CanResolve() {
		return errprocess.SetKind(errprocess.KindValidation, "only an open ticket can be resolved", nil)
	}
	return s.ticketRepo.Resolve(ctx, ticketID)
}
