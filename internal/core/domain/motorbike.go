package domain

import "github.com/go-openapi/strfmt"

type MotorbikeType string

const (
	Manual   MotorbikeType = "MANUAL"
	Scooter  MotorbikeType = "SCOOTER"
	SemiAuto MotorbikeType = "SEMI_AUTO"
)

var MotorbikeTypes = []MotorbikeType{Manual, Scooter, SemiAuto}

type MotorbikeStatus string

const (
	Available   MotorbikeStatus = "AVAILABLE"
	Rented      MotorbikeStatus = "RENTED"
	Maintenance MotorbikeStatus = "MAINTENANCE"
	Unavailable MotorbikeStatus = "UNAVAILABLE"
)

var MotorbikeStatuses = []MotorbikeStatus{Available, Rented, Maintenance, Unavailable}

// swagger:model domain.Motorbike
type Motorbike struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         MotorbikeType   `json:"type"`
	PricePerDay  Amount          `json:"pricePerDay"`
	LicensePlate string          `json:"licensePlate"`
	Description  string          `json:"description,omitempty"`
	Year         *int            `json:"year,omitempty"`
	Images       []string        `json:"images"`
	FuelCapacity *float64        `json:"fuelCapacity,omitempty"`
	EngineSize   *int            `json:"engineSize,omitempty"`
	Status       MotorbikeStatus `json:"status"`
	CreatedAt    strfmt.DateTime `json:"createdAt"`
}

type MotorbikePayload struct {
	Name         string          `json:"name"`
	Type         MotorbikeType   `json:"type"`
	PricePerDay  float64         `json:"pricePerDay"`
	Description  string          `json:"description,omitempty"`
	LicensePlate string          `json:"licensePlate"`
	Year         *int64          `json:"year,omitempty"`
	Images       []string        `json:"images"`
	FuelCapacity *float64        `json:"fuelCapacity,omitempty"`
	EngineSize   *int64          `json:"engineSize,omitempty"`
	Status       MotorbikeStatus `json:"status"`
}
