package usecase

import (
	"context"
	"time"

	"medical-appointments-api/config"
	"medical-appointments-api/internal/converter"
	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
	"medical-appointments-api/internal/domain/repository"
	"medical-appointments-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type InvoiceUsecase interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id int64) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, query dto.PageQuery) ([]dto.InvoiceResponse, error)
	UpdateInvoiceStatus(ctx context.Context, id int64, req *dto.UpdateInvoiceStatusRequest) (*dto.InvoiceStatusResponse, error)
	ListPaymentMethods(ctx context.Context) ([]dto.PaymentMethodResponse, error)
}

type invoiceUsecase struct {
	log               *logrus.Logger
	transactor        repository.Transactor
	invoiceRepo       repository.InvoiceRepository
	appointmentRepo   repository.AppointmentRepository
	paymentMethodRepo repository.PaymentMethodRepository
	auditService      service.AuditService
	maxLimit          int
	now               func() time.Time
}

func NewInvoiceUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	invoiceRepo repository.InvoiceRepository,
	appointmentRepo repository.AppointmentRepository,
	paymentMethodRepo repository.PaymentMethodRepository,
	auditService service.AuditService,
	pagination config.PaginationConfig,
) InvoiceUsecase {
	return &invoiceUsecase{
		log:               log,
		transactor:        transactor,
		invoiceRepo:       invoiceRepo,
		appointmentRepo:   appointmentRepo,
		paymentMethodRepo: paymentMethodRepo,
		auditService:      auditService,
		maxLimit:          pagination.MaxLimit,
		now:               time.Now,
	}
}

// CreateInvoice bills a completed appointment. An appointment has at most
// one invoice; the unique index on factura.id_cita backs the check.
func (u *invoiceUsecase) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := entity.ValidateAmount(req.Amount); err != nil {
		return nil, ErrInvalidAmount
	}

	invoice := &entity.Invoice{
		AppointmentID:   req.AppointmentID,
		PaymentMethodID: req.PaymentMethodID,
		Amount:          req.Amount,
		IssuedAt:        u.now().UTC(),
		Status:          entity.InvoicePending,
		Notes:           req.Notes,
	}

	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, invoice.AppointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment by ID: %+v", err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if appointment.Status != entity.AppointmentCompleted {
			return ErrAppointmentNotComplete
		}

		existing, err := u.invoiceRepo.FindByAppointment(tx, invoice.AppointmentID)
		if err != nil {
			u.log.Warnf("Failed to find invoice by appointment: %+v", err)
			return err
		}
		if existing != nil {
			return ErrInvoiceAlreadyExists
		}

		method, err := u.paymentMethodRepo.FindByID(tx, invoice.PaymentMethodID)
		if err != nil {
			u.log.Warnf("Failed to find payment method by ID: %+v", err)
			return err
		}
		if method == nil || !method.Active {
			return ErrPaymentMethodNotFound
		}

		if err := u.invoiceRepo.Create(tx, invoice); err != nil {
			u.log.Warnf("Failed to create invoice: %+v", err)
			return translateConstraintError(err)
		}
		invoice.PaymentMethod = method

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionInvoiceCreate, "factura", invoice.ID, invoice)
	})
	if err != nil {
		return nil, err
	}

	return converter.InvoiceToResponse(invoice), nil
}

func (u *invoiceUsecase) GetInvoice(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(u.transactor.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find invoice by ID: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return converter.InvoiceToResponse(invoice), nil
}

func (u *invoiceUsecase) ListInvoices(ctx context.Context, query dto.PageQuery) ([]dto.InvoiceResponse, error) {
	page, err := toPage(query, u.maxLimit)
	if err != nil {
		return nil, err
	}

	invoices, err := u.invoiceRepo.FindAll(u.transactor.DB(ctx), page)
	if err != nil {
		u.log.Warnf("Failed to find all invoices: %+v", err)
		return nil, err
	}

	return converter.InvoicesToResponses(invoices), nil
}

func (u *invoiceUsecase) UpdateInvoiceStatus(ctx context.Context, id int64, req *dto.UpdateInvoiceStatusRequest) (*dto.InvoiceStatusResponse, error) {
	status, err := entity.ParseInvoiceStatus(req.Status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		invoice, err := u.invoiceRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find invoice by ID: %+v", err)
			return err
		}
		if invoice == nil {
			return ErrInvoiceNotFound
		}

		if err := u.invoiceRepo.UpdateStatus(tx, id, status); err != nil {
			u.log.Warnf("Failed to update invoice status: %+v", err)
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionInvoiceStatus, "factura", id,
			map[string]interface{}{"estado": invoice.Status},
			map[string]interface{}{"estado": status},
		)
	})
	if err != nil {
		return nil, err
	}

	return &dto.InvoiceStatusResponse{ID: id, Status: string(status)}, nil
}

func (u *invoiceUsecase) ListPaymentMethods(ctx context.Context) ([]dto.PaymentMethodResponse, error) {
	methods, err := u.paymentMethodRepo.FindActive(u.transactor.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find payment methods: %+v", err)
		return nil, err
	}

	return converter.PaymentMethodsToResponses(methods), nil
}
