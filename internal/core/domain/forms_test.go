package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotorbikeForm_Payload(t *testing.T) {
	form := MotorbikeForm{
		Name:         "Honda Vision",
		PricePerDay:  "150000",
		LicensePlate: "59X1-123.45",
		Year:         "2022",
		Images:       " a.jpg, ,b.jpg,",
		FuelCapacity: "5.2",
		EngineSize:   "not-a-number",
	}

	p := form.Payload()
	assert.Equal(t, Scooter, p.Type)
	assert.Equal(t, Available, p.Status)
	assert.Equal(t, 150000.0, p.PricePerDay)
	require.NotNil(t, p.Year)
	assert.Equal(t, int64(2022), *p.Year)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	require.NotNil(t, p.FuelCapacity)
	assert.Equal(t, 5.2, *p.FuelCapacity)
	assert.Nil(t, p.EngineSize)
}

func TestMotorbikeFormFrom_RoundTrip(t *testing.T) {
	year := 2021
	bike := Motorbike{
		ID:           "m1",
		Name:         "Exciter",
		Type:         Manual,
		PricePerDay:  200000,
		LicensePlate: "51A-000.01",
		Year:         &year,
		Images:       []string{"x.png", "y.png"},
		Status:       Maintenance,
	}

	form := MotorbikeFormFrom(bike)
	assert.Equal(t, "200000", form.PricePerDay)
	assert.Equal(t, "x.png, y.png", form.Images)
	assert.Equal(t, "2021", form.Year)

	p := form.Payload()
	assert.Equal(t, Manual, p.Type)
	assert.Equal(t, Maintenance, p.Status)
	assert.Equal(t, []string{"x.png", "y.png"}, p.Images)
}

func TestBlogForm_DefaultAuthor(t *testing.T) {
	assert.Equal(t, DefaultBlogAuthor, NewBlogForm().Author)
	assert.Equal(t, DefaultBlogAuthor, BlogForm{Title: "t"}.Payload().Author)
	assert.Equal(t, "Lan", BlogForm{Author: "Lan"}.Payload().Author)
}

func TestPromotionForm_Dates(t *testing.T) {
	form := NewPromotionForm()
	assert.True(t, form.IsActive)

	form.Title = "Summer"
	form.StartDate = "2024-06-01"
	form.EndDate = "garbage"

	p := form.Payload()
	require.NotNil(t, p.StartDate)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Time(*p.StartDate).UTC())
	assert.Nil(t, p.EndDate)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "endDate")

	start := strfmt.DateTime(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	back := PromotionFormFrom(Promotion{Title: "Summer", StartDate: &start})
	assert.Equal(t, "2024-06-01", back.StartDate)
	assert.Empty(t, back.EndDate)
}

func TestUserForm_DefaultRole(t *testing.T) {
	assert.Equal(t, Customer, UserForm{Name: "An"}.Payload().Role)
	assert.Equal(t, Admin, UserFormFrom(UserProfile{Role: Admin}).Role)
}
