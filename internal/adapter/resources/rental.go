package resources

import (
	"context"
	"net/http"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type RentalClient struct {
	crud crud[domain.Rental]
}

func NewRentalClient(api ports.APIClient) *RentalClient {
	c := newCrud[domain.Rental](api, "/rentals", "rentals")
	c.listPath = "/rentals/all"
	return &RentalClient{crud: c}
}

// List fetches every rental; filtering happens on the caller's side.
func (c *RentalClient) List(ctx context.Context) (domain.Result[domain.Page[domain.Rental]], error) {
	return c.crud.list(ctx, "resources.RentalClient.List", nil)
}

func (c *RentalClient) Get(ctx context.Context, id string) (domain.Result[domain.Rental], error) {
	return c.crud.get(ctx, "resources.RentalClient.Get", id)
}

func (c *RentalClient) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) (domain.Result[domain.Rental], error) {
	return c.crud.one(ctx, "resources.RentalClient.UpdateStatus", ports.APIRequest{
		Method:     http.MethodPut,
		Path:       "/rentals/{id}/status",
		PathParams: map[string]string{"id": id},
		Body:       domain.RentalStatusPayload{Status: status},
	})
}
