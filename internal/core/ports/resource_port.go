package ports

import (
	"context"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
)

type MotorbikeQuery struct {
	Page   int64                  `json:"page,omitempty"`
	Limit  int64                  `json:"limit,omitempty"`
	Type   domain.MotorbikeType   `json:"type,omitempty"`
	Status domain.MotorbikeStatus `json:"status,omitempty"`
	Search string                 `json:"search,omitempty"`
}

type UserQuery struct {
	Page   int64  `json:"page,omitempty"`
	Limit  int64  `json:"limit,omitempty"`
	Search string `json:"search,omitempty"`
}

type NoQuery struct{}

type MotorbikeClient interface {
	List(ctx context.Context, query MotorbikeQuery) (domain.Result[domain.Page[domain.Motorbike]], error)
	Get(ctx context.Context, id string) (domain.Result[domain.Motorbike], error)
	Create(ctx context.Context, payload domain.MotorbikePayload) (domain.Result[domain.Motorbike], error)
	Update(ctx context.Context, id string, payload domain.MotorbikePayload) (domain.Result[domain.Motorbike], error)
	Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error)
}

type RentalClient interface {
	List(ctx context.Context) (domain.Result[domain.Page[domain.Rental]], error)
	Get(ctx context.Context, id string) (domain.Result[domain.Rental], error)
	UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) (domain.Result[domain.Rental], error)
}

type UserClient interface {
	List(ctx context.Context, query UserQuery) (domain.Result[domain.Page[domain.UserProfile]], error)
	Get(ctx context.Context, id string) (domain.Result[domain.UserProfile], error)
	Update(ctx context.Context, id string, payload domain.UserPayload) (domain.Result[domain.UserProfile], error)
	Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error)
}

type BlogClient interface {
	List(ctx context.Context) (domain.Result[domain.Page[domain.Blog]], error)
	Get(ctx context.Context, id string) (domain.Result[domain.Blog], error)
	Create(ctx context.Context, payload domain.BlogPayload) (domain.Result[domain.Blog], error)
	Update(ctx context.Context, id string, payload domain.BlogPayload) (domain.Result[domain.Blog], error)
	Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error)
}

type PromotionClient interface {
	List(ctx context.Context) (domain.Result[domain.Page[domain.Promotion]], error)
	Get(ctx context.Context, id string) (domain.Result[domain.Promotion], error)
	Create(ctx context.Context, payload domain.PromotionPayload) (domain.Result[domain.Promotion], error)
	Update(ctx context.Context, id string, payload domain.PromotionPayload) (domain.Result[domain.Promotion], error)
	Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error)
}

// Clients bundles the resource clients of one session.
type Clients struct {
	Auth       AuthClient
	Motorbikes MotorbikeClient
	Rentals    RentalClient
	Users      UserClient
	Blogs      BlogClient
	Promotions PromotionClient
}
