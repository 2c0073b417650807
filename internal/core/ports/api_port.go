package ports

import (
	"context"
	"net/url"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
)

// APIRequest describes one call to the rental API. Path is relative to the
// base URL and may hold {name} placeholders filled from PathParams.
type APIRequest struct {
	Method      string
	Path        string
	PathParams  map[string]string
	Query       url.Values
	Body        interface{}
	Headers     map[string]string
	BearerToken string
}

type APIClient interface {
	Do(ctx context.Context, req APIRequest) (*domain.Envelope, error)
}
