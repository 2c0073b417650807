package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type (
	MotorbikeController = PageController[domain.Motorbike, domain.MotorbikeForm, ports.MotorbikeQuery]
	UserController      = PageController[domain.UserProfile, domain.UserForm, ports.UserQuery]
	BlogController      = PageController[domain.Blog, domain.BlogForm, ports.NoQuery]
	PromotionController = PageController[domain.Promotion, domain.PromotionForm, ports.NoQuery]
)

type motorbikePage struct {
	client ports.MotorbikeClient
}

func (p motorbikePage) List(ctx context.Context, q ports.MotorbikeQuery) (domain.Result[domain.Page[domain.Motorbike]], error) {
	return p.client.List(ctx, q)
}

func (p motorbikePage) Create(ctx context.Context, f domain.MotorbikeForm) (domain.Result[domain.Motorbike], error) {
	return p.client.Create(ctx, f.Payload())
}

func (p motorbikePage) Update(ctx context.Context, id string, f domain.MotorbikeForm) (domain.Result[domain.Motorbike], error) {
	return p.client.Update(ctx, id, f.Payload())
}

func (p motorbikePage) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return p.client.Delete(ctx, id)
}

func (motorbikePage) ItemID(m domain.Motorbike) string { return m.ID }
func (motorbikePage) EmptyForm() domain.MotorbikeForm  { return domain.NewMotorbikeForm() }
func (motorbikePage) FormFor(m domain.Motorbike) domain.MotorbikeForm {
	return domain.MotorbikeFormFrom(m)
}

func NewMotorbikeController(client ports.MotorbikeClient, toasts ToastSink, logger ports.LoggerPort, validate *validator.Validate) *MotorbikeController {
	return NewPageController[domain.Motorbike, domain.MotorbikeForm, ports.MotorbikeQuery](
		"motorbikes",
		motorbikePage{client: client},
		Capabilities{CanCreate: true, CanEdit: true, CanDelete: true},
		domain.MotorbikeMessages,
		ports.MotorbikeQuery{Page: 1, Limit: DefaultPageSize},
		toasts, logger, validate,
	)
}

// userPage has no create: accounts are opened through registration.
type userPage struct {
	client ports.UserClient
}

func (p userPage) List(ctx context.Context, q ports.UserQuery) (domain.Result[domain.Page[domain.UserProfile]], error) {
	return p.client.List(ctx, q)
}

func (p userPage) Create(ctx context.Context, f domain.UserForm) (domain.Result[domain.UserProfile], error) {
	return domain.Result[domain.UserProfile]{}, fmt.Errorf("services.userPage.Create: %w", domain.ErrUnsupported)
}

func (p userPage) Update(ctx context.Context, id string, f domain.UserForm) (domain.Result[domain.UserProfile], error) {
	return p.client.Update(ctx, id, f.Payload())
}

func (p userPage) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return p.client.Delete(ctx, id)
}

func (userPage) ItemID(u domain.UserProfile) string           { return u.ID }
func (userPage) EmptyForm() domain.UserForm                   { return domain.NewUserForm() }
func (userPage) FormFor(u domain.UserProfile) domain.UserForm { return domain.UserFormFrom(u) }

func NewUserController(client ports.UserClient, toasts ToastSink, logger ports.LoggerPort, validate *validator.Validate) *UserController {
	return NewPageController[domain.UserProfile, domain.UserForm, ports.UserQuery](
		"users",
		userPage{client: client},
		Capabilities{CanEdit: true, CanDelete: true},
		domain.UserMessages,
		ports.UserQuery{Page: 1, Limit: DefaultPageSize},
		toasts, logger, validate,
	)
}

type blogPage struct {
	client ports.BlogClient
}

func (p blogPage) List(ctx context.Context, _ ports.NoQuery) (domain.Result[domain.Page[domain.Blog]], error) {
	return p.client.List(ctx)
}

func (p blogPage) Create(ctx context.Context, f domain.BlogForm) (domain.Result[domain.Blog], error) {
	return p.client.Create(ctx, f.Payload())
}

func (p blogPage) Update(ctx context.Context, id string, f domain.BlogForm) (domain.Result[domain.Blog], error) {
	return p.client.Update(ctx, id, f.Payload())
}

func (p blogPage) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return p.client.Delete(ctx, id)
}

func (blogPage) ItemID(b domain.Blog) string           { return b.ID }
func (blogPage) EmptyForm() domain.BlogForm            { return domain.NewBlogForm() }
func (blogPage) FormFor(b domain.Blog) domain.BlogForm { return domain.BlogFormFrom(b) }

func NewBlogController(client ports.BlogClient, toasts ToastSink, logger ports.LoggerPort, validate *validator.Validate) *BlogController {
	return NewPageController[domain.Blog, domain.BlogForm, ports.NoQuery](
		"blogs",
		blogPage{client: client},
		Capabilities{CanCreate: true, CanEdit: true, CanDelete: true},
		domain.BlogMessages,
		ports.NoQuery{},
		toasts, logger, validate,
	)
}

type promotionPage struct {
	client ports.PromotionClient
}

func (p promotionPage) List(ctx context.Context, _ ports.NoQuery) (domain.Result[domain.Page[domain.Promotion]], error) {
	return p.client.List(ctx)
}

func (p promotionPage) Create(ctx context.Context, f domain.PromotionForm) (domain.Result[domain.Promotion], error) {
	return p.client.Create(ctx, f.Payload())
}

func (p promotionPage) Update(ctx context.Context, id string, f domain.PromotionForm) (domain.Result[domain.Promotion], error) {
	return p.client.Update(ctx, id, f.Payload())
}

func (p promotionPage) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return p.client.Delete(ctx, id)
}

func (promotionPage) ItemID(p domain.Promotion) string { return p.ID }
func (promotionPage) EmptyForm() domain.PromotionForm  { return domain.NewPromotionForm() }
func (promotionPage) FormFor(p domain.Promotion) domain.PromotionForm {
	return domain.PromotionFormFrom(p)
}

func NewPromotionController(client ports.PromotionClient, toasts ToastSink, logger ports.LoggerPort, validate *validator.Validate) *PromotionController {
	return NewPageController[domain.Promotion, domain.PromotionForm, ports.NoQuery](
		"promotions",
		promotionPage{client: client},
		Capabilities{CanCreate: true, CanEdit: true, CanDelete: true},
		domain.PromotionMessages,
		ports.NoQuery{},
		toasts, logger, validate,
	)
}
