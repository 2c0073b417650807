package resources

import (
	"context"
	"net/url"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type MotorbikeClient struct {
	crud crud[domain.Motorbike]
}

func NewMotorbikeClient(api ports.APIClient) *MotorbikeClient {
	return &MotorbikeClient{crud: newCrud[domain.Motorbike](api, "/motorbikes", "motorbikes")}
}

func (c *MotorbikeClient) List(ctx context.Context, query ports.MotorbikeQuery) (domain.Result[domain.Page[domain.Motorbike]], error) {
	q := url.Values{}
	setInt(q, "page", query.Page)
	setInt(q, "limit", query.Limit)
	setString(q, "type", string(query.Type))
	setString(q, "status", string(query.Status))
	setString(q, "search", query.Search)
	return c.crud.list(ctx, "resources.MotorbikeClient.List", q)
}

func (c *MotorbikeClient) Get(ctx context.Context, id string) (domain.Result[domain.Motorbike], error) {
	return c.crud.get(ctx, "resources.MotorbikeClient.Get", id)
}

func (c *MotorbikeClient) Create(ctx context.Context, payload domain.MotorbikePayload) (domain.Result[domain.Motorbike], error) {
	return c.crud.create(ctx, "resources.MotorbikeClient.Create", payload)
}

func (c *MotorbikeClient) Update(ctx context.Context, id string, payload domain.MotorbikePayload) (domain.Result[domain.Motorbike], error) {
	return c.crud.update(ctx, "resources.MotorbikeClient.Update", id, payload)
}

func (c *MotorbikeClient) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return c.crud.delete(ctx, "resources.MotorbikeClient.Delete", id)
}
