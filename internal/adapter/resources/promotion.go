package resources

import (
	"context"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type PromotionClient struct {
	crud crud[domain.Promotion]
}

func NewPromotionClient(api ports.APIClient) *PromotionClient {
	return &PromotionClient{crud: newCrud[domain.Promotion](api, "/promotions", "promotions")}
}

func (c *PromotionClient) List(ctx context.Context) (domain.Result[domain.Page[domain.Promotion]], error) {
	return c.crud.list(ctx, "resources.PromotionClient.List", nil)
}

func (c *PromotionClient) Get(ctx context.Context, id string) (domain.Result[domain.Promotion], error) {
	return c.crud.get(ctx, "resources.PromotionClient.Get", id)
}

func (c *PromotionClient) Create(ctx context.Context, payload domain.PromotionPayload) (domain.Result[domain.Promotion], error) {
	return c.crud.create(ctx, "resources.PromotionClient.Create", payload)
}

func (c *PromotionClient) Update(ctx context.Context, id string, payload domain.PromotionPayload) (domain.Result[domain.Promotion], error) {
	return c.crud.update(ctx, "resources.PromotionClient.Update", id, payload)
}

func (c *PromotionClient) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return c.crud.delete(ctx, "resources.PromotionClient.Delete", id)
}
