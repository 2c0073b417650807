package resources

import (
	"context"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type BlogClient struct {
	crud crud[domain.Blog]
}

func NewBlogClient(api ports.APIClient) *BlogClient {
	return &BlogClient{crud: newCrud[domain.Blog](api, "/blogs", "blogs")}
}

func (c *BlogClient) List(ctx context.Context) (domain.Result[domain.Page[domain.Blog]], error) {
	return c.crud.list(ctx, "resources.BlogClient.List", nil)
}

func (c *BlogClient) Get(ctx context.Context, id string) (domain.Result[domain.Blog], error) {
	return c.crud.get(ctx, "resources.BlogClient.Get", id)
}

func (c *BlogClient) Create(ctx context.Context, payload domain.BlogPayload) (domain.Result[domain.Blog], error) {
	return c.crud.create(ctx, "resources.BlogClient.Create", payload)
}

func (c *BlogClient) Update(ctx context.Context, id string, payload domain.BlogPayload) (domain.Result[domain.Blog], error) {
	return c.crud.update(ctx, "resources.BlogClient.Update", id, payload)
}

func (c *BlogClient) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return c.crud.delete(ctx, "resources.BlogClient.Delete", id)
}
