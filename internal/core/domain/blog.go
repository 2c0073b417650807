package domain

import "github.com/go-openapi/strfmt"

const DefaultBlogAuthor = "Admin"

// swagger:model domain.Blog
type Blog struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     string          `json:"content"`
	Image       string          `json:"image"`
	Tag         string          `json:"tag,omitempty"`
	Author      string          `json:"author"`
	CreatedAt   strfmt.DateTime `json:"createdAt"`
}

type BlogPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Tag         string `json:"tag,omitempty"`
	Author      string `json:"author"`
}
