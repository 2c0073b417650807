package domain

import "github.com/go-openapi/strfmt"

// swagger:model domain.Promotion
type Promotion struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Badge       string           `json:"badge,omitempty"`
	IsActive    bool             `json:"isActive"`
	StartDate   *strfmt.DateTime `json:"startDate,omitempty"`
	EndDate     *strfmt.DateTime `json:"endDate,omitempty"`
}

type PromotionPayload struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Badge       string           `json:"badge,omitempty"`
	IsActive    bool             `json:"isActive"`
	StartDate   *strfmt.DateTime `json:"startDate,omitempty"`
	EndDate     *strfmt.DateTime `json:"endDate,omitempty"`
}
