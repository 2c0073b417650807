package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
)

const formDateLayout = "2006-01-02"

// MotorbikeForm holds the modal's raw input. Only presence is checked;
// numbers that fail to parse are left for the server to reject.
type MotorbikeForm struct {
	Name         string          `json:"name" validate:"required"`
	Type         MotorbikeType   `json:"type"`
	PricePerDay  string          `json:"pricePerDay" validate:"required"`
	Description  string          `json:"description"`
	LicensePlate string          `json:"licensePlate" validate:"required"`
	Year         string          `json:"year"`
	Images       string          `json:"images"`
	FuelCapacity string          `json:"fuelCapacity"`
	EngineSize   string          `json:"engineSize"`
	Status       MotorbikeStatus `json:"status"`
}

func NewMotorbikeForm() MotorbikeForm {
	return MotorbikeForm{Type: Scooter, Status: Available}
}

func MotorbikeFormFrom(m Motorbike) MotorbikeForm {
	f := MotorbikeForm{
		Name:         m.Name,
		Type:         m.Type,
		PricePerDay:  strconv.FormatFloat(m.PricePerDay.Float64(), 'f', -1, 64),
		Description:  m.Description,
		LicensePlate: m.LicensePlate,
		Images:       strings.Join(m.Images, ", "),
		Status:       m.Status,
	}
	if m.Year != nil {
		f.Year = strconv.Itoa(*m.Year)
	}
	if m.FuelCapacity != nil {
		f.FuelCapacity = strconv.FormatFloat(*m.FuelCapacity, 'f', -1, 64)
	}
	if m.EngineSize != nil {
		f.EngineSize = strconv.Itoa(*m.EngineSize)
	}
	return f
}

func (f MotorbikeForm) Payload() MotorbikePayload {
	p := MotorbikePayload{
		Name:         f.Name,
		Type:         f.Type,
		Description:  f.Description,
		LicensePlate: f.LicensePlate,
		Images:       SplitImages(f.Images),
		Status:       f.Status,
	}
	if p.Type == "" {
		p.Type = Scooter
	}
	if p.Status == "" {
		p.Status = Available
	}
	if v, err := swag.ConvertFloat64(strings.TrimSpace(f.PricePerDay)); err == nil {
		p.PricePerDay = v
	}
	if v, err := swag.ConvertInt64(strings.TrimSpace(f.Year)); err == nil {
		p.Year = &v
	}
	if v, err := swag.ConvertFloat64(strings.TrimSpace(f.FuelCapacity)); err == nil {
		p.FuelCapacity = &v
	}
	if v, err := swag.ConvertInt64(strings.TrimSpace(f.EngineSize)); err == nil {
		p.EngineSize = &v
	}
	return p
}

// SplitImages turns "a, b,,c" into [a b c].
func SplitImages(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

type UserForm struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Role    UserRole `json:"role"`
}

func NewUserForm() UserForm {
	return UserForm{Role: Customer}
}

func UserFormFrom(u UserProfile) UserForm {
	f := UserForm{Name: u.Name, Phone: u.Phone, Address: u.Address, Role: u.Role}
	if f.Role == "" {
		f.Role = Customer
	}
	return f
}

func (f UserForm) Payload() UserPayload {
	role := f.Role
	if role == "" {
		role = Customer
	}
	return UserPayload{Name: f.Name, Phone: f.Phone, Address: f.Address, Role: role}
}

type BlogForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Tag         string `json:"tag"`
	Author      string `json:"author"`
}

func NewBlogForm() BlogForm {
	return BlogForm{Author: DefaultBlogAuthor}
}

func BlogFormFrom(b Blog) BlogForm {
	f := BlogForm{
		Title:       b.Title,
		Description: b.Description,
		Content:     b.Content,
		Image:       b.Image,
		Tag:         b.Tag,
		Author:      b.Author,
	}
	if f.Author == "" {
		f.Author = DefaultBlogAuthor
	}
	return f
}

func (f BlogForm) Payload() BlogPayload {
	author := f.Author
	if author == "" {
		author = DefaultBlogAuthor
	}
	return BlogPayload{
		Title:       f.Title,
		Description: f.Description,
		Content:     f.Content,
		Image:       f.Image,
		Tag:         f.Tag,
		Author:      author,
	}
}

// PromotionForm takes dates as yyyy-mm-dd, sent as UTC midnight.
type PromotionForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Badge       string `json:"badge"`
	IsActive    bool   `json:"isActive"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func NewPromotionForm() PromotionForm {
	return PromotionForm{IsActive: true}
}

func PromotionFormFrom(p Promotion) PromotionForm {
	return PromotionForm{
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Badge:       p.Badge,
		IsActive:    p.IsActive,
		StartDate:   formDate(p.StartDate),
		EndDate:     formDate(p.EndDate),
	}
}

func (f PromotionForm) Payload() PromotionPayload {
	return PromotionPayload{
		Title:       f.Title,
		Description: f.Description,
		Image:       f.Image,
		Badge:       f.Badge,
		IsActive:    f.IsActive,
		StartDate:   parseFormDate(f.StartDate),
		EndDate:     parseFormDate(f.EndDate),
	}
}

func formDate(dt *strfmt.DateTime) string {
	if dt == nil || time.Time(*dt).IsZero() {
		return ""
	}
	return time.Time(*dt).UTC().Format(formDateLayout)
}

func parseFormDate(s string) *strfmt.DateTime {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(formDateLayout, s); err == nil {
		dt := strfmt.DateTime(t.UTC())
		return &dt
	}
	if dt, err := strfmt.ParseDateTime(s); err == nil {
		return &dt
	}
	return nil
}
