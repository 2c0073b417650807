package domain

import "time"

type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastWarning ToastLevel = "warning"
	ToastInfo    ToastLevel = "info"
)

const ToastTTL = 4 * time.Second

type Toast struct {
	ID        string     `json:"id"`
	Level     ToastLevel `json:"level"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
}
