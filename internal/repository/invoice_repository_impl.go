package repository

import (
	"errors"

	"medical-appointments-api/internal/domain/entity"
	domainRepo "medical-appointments-api/internal/domain/repository"

	"gorm.io/gorm"
)

type invoiceRepository struct{}

func NewInvoiceRepository() domainRepo.InvoiceRepository {
	return &invoiceRepository{}
}

func (r *invoiceRepository) Create(db *gorm.DB, invoice *entity.Invoice) error {
	return db.Omit("PaymentMethod").Create(invoice).Error
}

func (r *invoiceRepository) FindByID(db *gorm.DB, id int64) (*entity.Invoice, error) {
	return r.findOne(db.Preload("PaymentMethod").Where("id_factura = ?", id))
}

func (r *invoiceRepository) FindByAppointment(db *gorm.DB, appointmentID int64) (*entity.Invoice, error) {
	return r.findOne(db.Where("id_cita = ?", appointmentID))
}

func (r *invoiceRepository) FindAll(db *gorm.DB, page entity.Page) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := db.
		Preload("PaymentMethod").
		Order("fecha_emision DESC, id_factura DESC").
		Offset(page.Offset).Limit(page.Limit).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) UpdateStatus(db *gorm.DB, id int64, status entity.InvoiceStatus) error {
	return db.Model(&entity.Invoice{}).Where("id_factura = ?", id).Update("estado", status).Error
}

func (r *invoiceRepository) findOne(query *gorm.DB) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := query.First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

type paymentMethodRepository struct{}

func NewPaymentMethodRepository() domainRepo.PaymentMethodRepository {
	return &paymentMethodRepository{}
}

func (r *paymentMethodRepository) FindByID(db *gorm.DB, id int64) (*entity.PaymentMethod, error) {
	var method entity.PaymentMethod
	err := db.Where("id_metodo_pago = ?", id).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

func (r *paymentMethodRepository) FindActive(db *gorm.DB) ([]entity.PaymentMethod, error) {
	var methods []entity.PaymentMethod
	err := db.Where("activo = ?", true).Order("nombre ASC").Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}
