package http

import (
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type (
	MotorbikeHandler = PageHandler[domain.Motorbike, domain.MotorbikeForm, ports.MotorbikeQuery]
	UserHandler      = PageHandler[domain.UserProfile, domain.UserForm, ports.UserQuery]
	BlogHandler      = PageHandler[domain.Blog, domain.BlogForm, ports.NoQuery]
	PromotionHandler = PageHandler[domain.Promotion, domain.PromotionForm, ports.NoQuery]
)
