package repository

import (
	"context"
	"fmt"
	"net/url"

	"gigconnect_client/internal/profile/domain"
	"gigconnect_client/pkg/httpclient"
)

// ProfileRepository profile REST surface
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
}

type restProfileRepository struct {
	http *httpclient.Client
}

// NewRESTProfileRepository create profile repository over the REST API
func NewRESTProfileRepository(http *httpclient.Client) ProfileRepository {
	return &restProfileRepository{http: http}
}

func (r *restProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	profile := new(domain.Profile)
	path := fmt.Sprintf("/api/profile/%s", url.PathEscape(userID))
	if err := r.http.Get(ctx, path, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
