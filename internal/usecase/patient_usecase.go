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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, query dto.PageQuery) ([]dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int64) error
}

type patientUsecase struct {
	log          *logrus.Logger
	transactor   repository.Transactor
	patientRepo  repository.PatientRepository
	accountRepo  repository.AccountRepository
	auditService service.AuditService
	sessions     service.SessionStore
	maxLimit     int
	hashCost     int
	now          func() time.Time
}

func NewPatientUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	patientRepo repository.PatientRepository,
	accountRepo repository.AccountRepository,
	auditService service.AuditService,
	sessions service.SessionStore,
	pagination config.PaginationConfig,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		transactor:   transactor,
		patientRepo:  patientRepo,
		accountRepo:  accountRepo,
		auditService: auditService,
		sessions:     sessions,
		maxLimit:     pagination.MaxLimit,
		hashCost:     bcrypt.DefaultCost,
		now:          time.Now,
	}
}

// CreatePatient stores the patient and its login account in one transaction.
// The initial password is the patient's document id.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate, u.now())
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		DocumentID: req.DocumentID,
		Email:      entity.NormalizeEmail(req.Email),
		Phone:      req.Phone,
		Address:    req.Address,
		BirthDate:  birthDate,
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.DocumentID), u.hashCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		existing, err := u.patientRepo.FindByDocument(tx, patient.DocumentID)
		if err != nil {
			u.log.Warnf("Failed to find patient by document: %+v", err)
			return err
		}
		if existing != nil {
			return ErrDocumentAlreadyExists
		}

		existing, err = u.patientRepo.FindByEmail(tx, patient.Email)
		if err != nil {
			u.log.Warnf("Failed to find patient by email: %+v", err)
			return err
		}
		if existing != nil {
			return ErrEmailAlreadyExists
		}

		account, err := u.accountRepo.FindByEmail(tx, patient.Email)
		if err != nil {
			u.log.Warnf("Failed to find account by email: %+v", err)
			return err
		}
		if account != nil {
			return ErrAccountEmailExists
		}

		if err := u.patientRepo.Create(tx, patient); err != nil {
			u.log.Warnf("Failed to create patient: %+v", err)
			return translateConstraintError(err)
		}

		account = &entity.Account{
			Email:        patient.Email,
			PasswordHash: string(passwordHash),
			Role:         entity.RolePatient,
			ReferenceID:  int64Ptr(patient.ID),
			Active:       true,
		}
		if err := u.accountRepo.Create(tx, account); err != nil {
			u.log.Warnf("Failed to create patient account: %+v", err)
			return translateConstraintError(err)
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionPatientCreate, "paciente", patient.ID, patient)
	})
	if err != nil {
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.transactor.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context, query dto.PageQuery) ([]dto.PatientResponse, error) {
	page, err := toPage(query, u.maxLimit)
	if err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(u.transactor.DB(ctx), page)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

// UpdatePatient applies only the fields present in req. A changed email is
// checked against both patients and accounts and copied to the account.
func (u *patientUsecase) UpdatePatient(ctx context.Context, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patch := entity.PatientPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if req.BirthDate != nil {
		birthDate, err := parseBirthDate(*req.BirthDate, u.now())
		if err != nil {
			return nil, err
		}
		patch.BirthDate = &birthDate
	}

	var updated *entity.Patient
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find patient by ID: %+v", err)
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		before := *patient
		patch.Apply(patient)

		emailChanged := patient.Email != before.Email
		if emailChanged {
			other, err := u.patientRepo.FindByEmail(tx, patient.Email)
			if err != nil {
				u.log.Warnf("Failed to find patient by email: %+v", err)
				return err
			}
			if other != nil && other.ID != patient.ID {
				return ErrEmailAlreadyExists
			}

			account, err := u.accountRepo.FindByEmail(tx, patient.Email)
			if err != nil {
				u.log.Warnf("Failed to find account by email: %+v", err)
				return err
			}
			if account != nil {
				return ErrAccountEmailExists
			}
		}

		if err := u.patientRepo.Update(tx, patient); err != nil {
			u.log.Warnf("Failed to update patient: %+v", err)
			return translateConstraintError(err)
		}

		if emailChanged {
			if err := u.syncAccountEmail(tx, patient.ID, patient.Email); err != nil {
				return err
			}
		}

		updated = patient
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientUpdate, "paciente", patient.ID, before, patient)
	})
	if err != nil {
		return nil, err
	}

	return converter.PatientToResponse(updated), nil
}

func (u *patientUsecase) syncAccountEmail(tx *gorm.DB, patientID int64, email string) error {
	account, err := u.accountRepo.FindByReference(tx, entity.RolePatient, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient account: %+v", err)
		return err
	}
	if account == nil {
		return nil
	}

	account.Email = email
	if err := u.accountRepo.Update(tx, account); err != nil {
		u.log.Warnf("Failed to update patient account: %+v", err)
		return translateConstraintError(err)
	}
	return nil
}

// DeletePatient removes the patient (appointments, records and invoices go
// with it through the foreign keys) and its account, then drops the
// account's sessions.
func (u *patientUsecase) DeletePatient(ctx context.Context, id int64) error {
	var account *entity.Account
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find patient by ID: %+v", err)
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		account, err = u.accountRepo.FindByReference(tx, entity.RolePatient, id)
		if err != nil {
			u.log.Warnf("Failed to find patient account: %+v", err)
			return err
		}

		if _, err := u.accountRepo.DeleteByReference(tx, entity.RolePatient, id); err != nil {
			u.log.Warnf("Failed to delete patient account: %+v", err)
			return err
		}

		rows, err := u.patientRepo.Delete(tx, id)
		if err != nil {
			u.log.Warnf("Failed to delete patient: %+v", err)
			return err
		}
		if rows == 0 {
			return ErrPatientNotFound
		}

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionPatientDelete, "paciente", id, patient)
	})
	if err != nil {
		return err
	}

	if account != nil {
		if err := u.sessions.RevokeAll(ctx, account.ID); err != nil {
			u.log.Warnf("Failed to revoke sessions of deleted patient: %+v", err)
		}
	}

	return nil
}
