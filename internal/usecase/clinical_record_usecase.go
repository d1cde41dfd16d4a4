package usecase

import (
	"context"
	"time"

	"medical-appointments-api/internal/converter"
	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
	"medical-appointments-api/internal/domain/repository"
	"medical-appointments-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClinicalRecordUsecase interface {
	CreateRecord(ctx context.Context, req *dto.CreateClinicalRecordRequest) (*dto.ClinicalRecordResponse, error)
	ListPatientRecords(ctx context.Context, patientID int64) ([]dto.ClinicalRecordResponse, error)
}

type clinicalRecordUsecase struct {
	log             *logrus.Logger
	transactor      repository.Transactor
	recordRepo      repository.ClinicalRecordRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	now             func() time.Time
}

func NewClinicalRecordUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	recordRepo repository.ClinicalRecordRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) ClinicalRecordUsecase {
	return &clinicalRecordUsecase{
		log:             log,
		transactor:      transactor,
		recordRepo:      recordRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		now:             time.Now,
	}
}

func (u *clinicalRecordUsecase) CreateRecord(ctx context.Context, req *dto.CreateClinicalRecordRequest) (*dto.ClinicalRecordResponse, error) {
	record := &entity.ClinicalRecord{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		RecordedAt:    u.now().UTC(),
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Notes:         req.Notes,
	}

	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(tx, record.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient by ID: %+v", err)
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		doctor, err := u.doctorRepo.FindByID(tx, record.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor by ID: %+v", err)
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}

		if record.AppointmentID != nil {
			appointment, err := u.appointmentRepo.FindByID(tx, *record.AppointmentID)
			if err != nil {
				u.log.Warnf("Failed to find appointment by ID: %+v", err)
				return err
			}
			if appointment == nil {
				return ErrAppointmentNotFound
			}
		}

		if err := u.recordRepo.Create(tx, record); err != nil {
			u.log.Warnf("Failed to create clinical record: %+v", err)
			return translateConstraintError(err)
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionRecordCreate, "historia_clinica", record.ID, record)
	})
	if err != nil {
		return nil, err
	}

	return converter.ClinicalRecordToResponse(record), nil
}

// ListPatientRecords returns the patient's history, newest first.
func (u *clinicalRecordUsecase) ListPatientRecords(ctx context.Context, patientID int64) ([]dto.ClinicalRecordResponse, error) {
	db := u.transactor.DB(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.recordRepo.FindByPatient(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find clinical records: %+v", err)
		return nil, err
	}

	return converter.ClinicalRecordsToResponses(records), nil
}
