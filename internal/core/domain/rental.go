package domain

import "github.com/go-openapi/strfmt"

type RentalStatus string

const (
	Pending   RentalStatus = "PENDING"
	Confirmed RentalStatus = "CONFIRMED"
	Ongoing   RentalStatus = "ONGOING"
	Completed RentalStatus = "COMPLETED"
	Cancelled RentalStatus = "CANCELLED"
)

var RentalStatuses = []RentalStatus{Pending, Confirmed, Ongoing, Completed, Cancelled}

func (s RentalStatus) Valid() bool {
	for _, known := range RentalStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type RentalUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type RentalMotorbike struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	LicensePlate string   `json:"licensePlate"`
	Images       []string `json:"images,omitempty"`
}

// swagger:model domain.Rental
type Rental struct {
	ID           string           `json:"id"`
	User         *RentalUser      `json:"user,omitempty"`
	Motorbike    *RentalMotorbike `json:"motorbike,omitempty"`
	StartDate    strfmt.DateTime  `json:"startDate"`
	EndDate      strfmt.DateTime  `json:"endDate"`
	NumberOfDays int              `json:"numberOfDays"`
	TotalPrice   Amount           `json:"totalPrice"`
	Status       RentalStatus     `json:"status"`
	CreatedAt    strfmt.DateTime  `json:"createdAt"`
}

type RentalStatusPayload struct {
	Status RentalStatus `json:"status"`
}
