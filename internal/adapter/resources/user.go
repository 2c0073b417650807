package resources

import (
	"context"
	"net/url"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type UserClient struct {
	crud crud[domain.UserProfile]
}

func NewUserClient(api ports.APIClient) *UserClient {
	return &UserClient{crud: newCrud[domain.UserProfile](api, "/users", "users")}
}

func (c *UserClient) List(ctx context.Context, query ports.UserQuery) (domain.Result[domain.Page[domain.UserProfile]], error) {
	q := url.Values{}
	setInt(q, "page", query.Page)
	setInt(q, "limit", query.Limit)
	setString(q, "search", query.Search)
	return c.crud.list(ctx, "resources.UserClient.List", q)
}

func (c *UserClient) Get(ctx context.Context, id string) (domain.Result[domain.UserProfile], error) {
	return c.crud.get(ctx, "resources.UserClient.Get", id)
}

func (c *UserClient) Update(ctx context.Context, id string, payload domain.UserPayload) (domain.Result[domain.UserProfile], error) {
	return c.crud.update(ctx, "resources.UserClient.Update", id, payload)
}

func (c *UserClient) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return c.crud.delete(ctx, "resources.UserClient.Delete", id)
}
