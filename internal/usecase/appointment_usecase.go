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

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, query dto.PageQuery) ([]dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentStatusResponse, error)
	CancelAppointment(ctx context.Context, id int64) error
}

type appointmentUsecase struct {
	log               *logrus.Logger
	transactor        repository.Transactor
	appointmentRepo   repository.AppointmentRepository
	patientRepo       repository.PatientRepository
	doctorRepo        repository.DoctorRepository
	auditService      service.AuditService
	strictTransitions bool
	maxLimit          int
	now               func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	appointmentCfg config.AppointmentConfig,
	pagination config.PaginationConfig,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:               log,
		transactor:        transactor,
		appointmentRepo:   appointmentRepo,
		patientRepo:       patientRepo,
		doctorRepo:        doctorRepo,
		auditService:      auditService,
		strictTransitions: appointmentCfg.StrictTransitions,
		maxLimit:          pagination.MaxLimit,
		now:               time.Now,
	}
}

// CreateAppointment books doctor/date/time for a patient. The slot is free
// when no non-cancelled appointment holds exactly the same triple; the
// doctor row lock serialises concurrent bookings of the same doctor.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := u.parseFutureDate(req.Date)
	if err != nil {
		return nil, err
	}
	clock, err := parseClock(req.Time)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      date,
		Time:      clock,
		Reason:    req.Reason,
		Status:    entity.AppointmentPending,
		Notes:     req.Notes,
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(tx, appointment.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient by ID: %+v", err)
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		doctor, err := u.doctorRepo.LockByID(tx, appointment.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to lock doctor: %+v", err)
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}

		if err := u.ensureSlotFree(tx, appointment); err != nil {
			return err
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			u.log.Warnf("Failed to create appointment: %+v", err)
			return translateConstraintError(err)
		}
		appointment.Patient = patient
		appointment.Doctor = doctor

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionAppointmentCreate, "cita_medica", appointment.ID, appointment)
	})
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.transactor.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, query dto.PageQuery) ([]dto.AppointmentResponse, error) {
	page, err := toPage(query, u.maxLimit)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(u.transactor.DB(ctx), page)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// UpdateAppointment changes date, time, reason or notes. Moving a slot-holding
// appointment re-runs the availability check without counting itself.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patch := entity.AppointmentPatch{
		Reason: req.Reason,
		Notes:  req.Notes,
	}
	if req.Date != nil {
		date, err := u.parseFutureDate(*req.Date)
		if err != nil {
			return nil, err
		}
		patch.Date = &date
	}
	if req.Time != nil {
		clock, err := parseClock(*req.Time)
		if err != nil {
			return nil, err
		}
		patch.Time = &clock
	}

	var updated *entity.Appointment
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment by ID: %+v", err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		before := *appointment
		patch.Apply(appointment)

		if patch.MovesSlot() && appointment.HoldsSlot() {
			if _, err := u.doctorRepo.LockByID(tx, appointment.DoctorID); err != nil {
				u.log.Warnf("Failed to lock doctor: %+v", err)
				return err
			}
			if err := u.ensureSlotFree(tx, appointment); err != nil {
				return err
			}
		}

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to update appointment: %+v", err)
			return translateConstraintError(err)
		}

		updated = appointment
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentUpdate, "cita_medica", appointment.ID, before, appointment)
	})
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(updated), nil
}

// UpdateAppointmentStatus sets the lifecycle state. Any state is accepted
// unless strict transitions are configured. Reviving a cancelled appointment
// needs its slot to still be free.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentStatusResponse, error) {
	status, err := entity.ParseAppointmentStatus(req.Status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment by ID: %+v", err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		previous := appointment.Status
		if u.strictTransitions && !previous.CanTransitionTo(status) {
			return ErrInvalidTransition
		}

		if previous == entity.AppointmentCancelled && status != entity.AppointmentCancelled {
			if _, err := u.doctorRepo.LockByID(tx, appointment.DoctorID); err != nil {
				u.log.Warnf("Failed to lock doctor: %+v", err)
				return err
			}
			if err := u.ensureSlotFree(tx, appointment); err != nil {
				return err
			}
		}

		if err := u.appointmentRepo.UpdateStatus(tx, id, status); err != nil {
			u.log.Warnf("Failed to update appointment status: %+v", err)
			return translateConstraintError(err)
		}

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentStatus, "cita_medica", id,
			map[string]interface{}{"estado": previous},
			map[string]interface{}{"estado": status},
		)
	})
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentStatusResponse{ID: id, Status: string(status)}, nil
}

// CancelAppointment is the soft delete: the row stays, its slot is released.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id int64) error {
	return u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment by ID: %+v", err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		if err := u.appointmentRepo.UpdateStatus(tx, id, entity.AppointmentCancelled); err != nil {
			u.log.Warnf("Failed to cancel appointment: %+v", err)
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentCancel, "cita_medica", id,
			map[string]interface{}{"estado": appointment.Status},
			map[string]interface{}{"estado": entity.AppointmentCancelled},
		)
	})
}

func (u *appointmentUsecase) ensureSlotFree(tx *gorm.DB, appointment *entity.Appointment) error {
	holders, err := u.appointmentRepo.FindHoldingSlot(tx, appointment.DoctorID, appointment.Date, appointment.Time)
	if err != nil {
		u.log.Warnf("Failed to check appointment slot: %+v", err)
		return err
	}

	for _, holder := range holders {
		if holder.ID != appointment.ID {
			return ErrSlotUnavailable
		}
	}
	return nil
}

func (u *appointmentUsecase) parseFutureDate(value string) (time.Time, error) {
	date, err := entity.ParseDate(value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if entity.IsDateInPast(date, u.now()) {
		return time.Time{}, ErrAppointmentInPast
	}
	return date, nil
}
