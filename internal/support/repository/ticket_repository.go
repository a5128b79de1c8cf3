package repository

import (
	"context"
	"fmt"
	"net/url"

	"gigconnect_client/internal/support/domain"
	"gigconnect_client/pkg/httpclient"
)

// TicketRepository support REST surface
type TicketRepository interface {
	MyTickets(ctx context.Context) ([]domain.Ticket, error)
	Thread(ctx context.Context, ticketID string) (*domain.Thread, error)
	Create(ctx context.Context, params domain.CreateParams) (*domain.Ticket, error)
	Reply(ctx context.Context, ticketID, content string) (*domain.Reply, error)
	Resolve(ctx context.Context, ticketID string) error
}

type restTicketRepository struct {
	http *httpclient.Client
}

// NewRESTTicketRepository create ticket repository over the REST API
func NewRESTTicketRepository(http *httpclient.Client) TicketRepository {
	return &restTicketRepository{http: http}
}

func (r *restTicketRepository) MyTickets(ctx context.Context) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	if err := r.http.Get(ctx, "/api/support/tickets", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *restTicketRepository) Thread(ctx context.Context, ticketID string) (*domain.Thread, error) {
	thread := new(domain.Thread)
	path := fmt.Sprintf("/api/support/tickets/%s", url.PathEscape(ticketID))
	if err := r.http.Get(ctx, path, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (r *restTicketRepository) Create(ctx context.Context, params domain.CreateParams) (*domain.Ticket, error) {
	ticket := new(domain.Ticket)
	if err := r.http.Post(ctx, "/api/support/tickets", params, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (r *restTicketRepository) Reply(ctx context.Context, ticketID, content string) (*domain.Reply, error) {
	reply := new(domain.Reply)
	path := fmt.Sprintf("/api/support/tickets/%s/replies", url.PathEscape(ticketID))
	if err := r.http.Post(ctx, path, map[string]string{"content": content}, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (r *restTicketRepository) Resolve(ctx context.Context, ticketID string) error {
	path := fmt.Sprintf("/api/support/tickets/%s/resolve", url.PathEscape(ticketID))
	return r.http.Post(ctx, path, struct{}{}, nil)
}
