package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "pagada"
	InvoicePending InvoiceStatus = "pendiente"
	InvoiceVoided  InvoiceStatus = "anulada"
)

var ErrInvalidAmount = errors.New("amount must be positive with at most two decimals")

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoicePaid, InvoicePending, InvoiceVoided:
		return InvoiceStatus(s), nil
	default:
		return "", fmt.Errorf("unknown invoice status %q", s)
	}
}

// Invoice bills exactly one completed appointment.
type Invoice struct {
	ID              int64           `gorm:"column:id_factura;primaryKey;autoIncrement" json:"id_factura"`
	AppointmentID   int64           `gorm:"column:id_cita;uniqueIndex;not null" json:"id_cita"`
	PaymentMethodID int64           `gorm:"column:id_metodo_pago;not null;index" json:"id_metodo_pago"`
	Amount          decimal.Decimal `gorm:"column:monto;type:numeric(10,2);not null" json:"monto"`
	IssuedAt        time.Time       `gorm:"column:fecha_emision;not null;index" json:"fecha_emision"`
	Status          InvoiceStatus   `gorm:"column:estado;type:varchar(20);not null;default:pendiente;index" json:"estado"`
	Notes           *string         `gorm:"column:observaciones;type:text" json:"observaciones"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID;references:ID" json:"metodo_pago,omitempty"`
}

func (Invoice) TableName() string {
	return "factura"
}

// ValidateAmount enforces amount > 0 with no more than two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return ErrInvalidAmount
	}
	return nil
}
