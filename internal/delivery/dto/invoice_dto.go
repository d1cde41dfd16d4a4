package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateInvoiceRequest struct {
	AppointmentID   int64           `json:"id_cita" validate:"required,gt=0"`
	PaymentMethodID int64           `json:"id_metodo_pago" validate:"required,gt=0"`
	Amount          decimal.Decimal `json:"monto"` // checked by the usecase: > 0, two decimals
	Notes           *string         `json:"observaciones"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"estado" validate:"required,oneof=pagada pendiente anulada"`
}

// Response DTOs

type InvoiceResponse struct {
	ID                int64       `json:"id_factura"`
	AppointmentID     int64       `json:"id_cita"`
	PaymentMethodID   int64       `json:"id_metodo_pago"`
	PaymentMethodName string      `json:"metodo_pago,omitempty"`
	Amount            json.Number `json:"monto"`
	IssuedAt          time.Time   `json:"fecha_emision"`
	Status            string      `json:"estado"`
	Notes             *string     `json:"observaciones"`
}

type InvoiceStatusResponse struct {
	ID     int64  `json:"id_factura"`
	Status string `json:"estado"`
}

type PaymentMethodResponse struct {
	ID          int64   `json:"id_metodo_pago"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
	Active      bool    `json:"activo"`
}
