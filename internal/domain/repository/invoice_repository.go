package repository

import (
	"medical-appointments-api/internal/domain/entity"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(db *gorm.DB, invoice *entity.Invoice) error
	FindByID(db *gorm.DB, id int64) (*entity.Invoice, error)
	FindByAppointment(db *gorm.DB, appointmentID int64) (*entity.Invoice, error)
	FindAll(db *gorm.DB, page entity.Page) ([]entity.Invoice, error)
	UpdateStatus(db *gorm.DB, id int64, status entity.InvoiceStatus) error
}

type PaymentMethodRepository interface {
	FindByID(db *gorm.DB, id int64) (*entity.PaymentMethod, error)
	FindActive(db *gorm.DB) ([]entity.PaymentMethod, error)
}
