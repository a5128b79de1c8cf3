package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"gigconnect_client/internal/catalog/domain"
	"gigconnect_client/pkg/httpclient"
)

// CatalogRepository gigs and bookings REST surface
type CatalogRepository interface {
	Gigs(ctx context.Context, query domain.GigQuery) (*domain.GigPage, error)
	Gig(ctx context.Context, gigID string) (*domain.Gig, error)
	ReviewBooking(ctx context.Context, gigID string) (*domain.BookingReview, error)
	CreateBooking(ctx context.Context, gigID, requirement string) (*domain.Booking, error)
	MyConversations(ctx context.Context) ([]domain.ConversationSummary, error)
}

type restCatalogRepository struct {
	http *httpclient.Client
}

// NewRESTCatalogRepository create catalog repository over the REST API
func NewRESTCatalogRepository(http *httpclient.Client) CatalogRepository {
	return &restCatalogRepository{http: http}
}

func (r *restCatalogRepository) Gigs(ctx context.Context, query domain.GigQuery) (*domain.GigPage, error) {
	q := url.Values{}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.Category != "" {
		q.Set("category", query.Category)
	}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(query.PerPage))
	}

	path := "/api/gigs"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	page := new(domain.GigPage)
	if err := r.http.Get(ctx, path, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (r *restCatalogRepository) Gig(ctx context.Context, gigID string) (*domain.Gig, error) {
	gig := new(domain.Gig)
	path := fmt.Sprintf("/api/gigs/%s", url.PathEscape(gigID))
	if err := r.http.Get(ctx, path, gig); err != nil {
		return nil, err
	}
	return gig, nil
}

func (r *restCatalogRepository) ReviewBooking(ctx context.Context, gigID string) (*domain.BookingReview, error) {
	review := new(domain.BookingReview)
	path := fmt.Sprintf("/api/bookings/review/%s", url.PathEscape(gigID))
	if err := r.http.Get(ctx, path, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (r *restCatalogRepository) CreateBooking(ctx context.Context, gigID, requirement string) (*domain.Booking, error) {
	body := map[string]string{"gig_id": gigID, "requirement": requirement}
	booking := new(domain.Booking)
	if err := r.http.Post(ctx, "/api/bookings", body, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *restCatalogRepository) MyConversations(ctx context.Context) ([]domain.ConversationSummary, error) {
	var conversations []domain.ConversationSummary
	if err := r.http.Get(ctx, "/api/messages/conversations", &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}
