package usecase

import (
	"context"

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

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, query dto.PageQuery, specialtyID *int64) ([]dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id int64) error
	ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error)
}

type doctorUsecase struct {
	log           *logrus.Logger
	transactor    repository.Transactor
	doctorRepo    repository.DoctorRepository
	specialtyRepo repository.SpecialtyRepository
	accountRepo   repository.AccountRepository
	auditService  service.AuditService
	sessions      service.SessionStore
	maxLimit      int
	hashCost      int
}

func NewDoctorUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	accountRepo repository.AccountRepository,
	auditService service.AuditService,
	sessions service.SessionStore,
	pagination config.PaginationConfig,
) DoctorUsecase {
	return &doctorUsecase{
		log:           log,
		transactor:    transactor,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
		accountRepo:   accountRepo,
		auditService:  auditService,
		sessions:      sessions,
		maxLimit:      pagination.MaxLimit,
		hashCost:      bcrypt.DefaultCost,
	}
}

// CreateDoctor checks documento, licencia and correo for uniqueness and the
// specialty for existence, then stores the doctor with a doctor account whose
// initial password is the document id.
func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DocumentID:  req.DocumentID,
		Email:       entity.NormalizeEmail(req.Email),
		Phone:       req.Phone,
		License:     req.License,
		SpecialtyID: req.SpecialtyID,
		Active:      true,
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.DocumentID), u.hashCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		existing, err := u.doctorRepo.FindByDocument(tx, doctor.DocumentID)
		if err != nil {
			u.log.Warnf("Failed to find doctor by document: %+v", err)
			return err
		}
		if existing != nil {
			return ErrDocumentAlreadyExists
		}

		existing, err = u.doctorRepo.FindByLicense(tx, doctor.License)
		if err != nil {
			u.log.Warnf("Failed to find doctor by license: %+v", err)
			return err
		}
		if existing != nil {
			return ErrLicenseAlreadyExists
		}

		existing, err = u.doctorRepo.FindByEmail(tx, doctor.Email)
		if err != nil {
			u.log.Warnf("Failed to find doctor by email: %+v", err)
			return err
		}
		if existing != nil {
			return ErrEmailAlreadyExists
		}

		specialty, err := u.specialtyRepo.FindByID(tx, doctor.SpecialtyID)
		if err != nil {
			u.log.Warnf("Failed to find specialty by ID: %+v", err)
			return err
		}
		if specialty == nil {
			return ErrSpecialtyNotFound
		}

		account, err := u.accountRepo.FindByEmail(tx, doctor.Email)
		if err != nil {
			u.log.Warnf("Failed to find account by email: %+v", err)
			return err
		}
		if account != nil {
			return ErrAccountEmailExists
		}

		if err := u.doctorRepo.Create(tx, doctor); err != nil {
			u.log.Warnf("Failed to create doctor: %+v", err)
			return translateConstraintError(err)
		}
		doctor.Specialty = specialty

		account = &entity.Account{
			Email:        doctor.Email,
			PasswordHash: string(passwordHash),
			Role:         entity.RoleDoctor,
			ReferenceID:  int64Ptr(doctor.ID),
			Active:       true,
		}
		if err := u.accountRepo.Create(tx, account); err != nil {
			u.log.Warnf("Failed to create doctor account: %+v", err)
			return translateConstraintError(err)
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionDoctorCreate, "doctor", doctor.ID, doctor)
	})
	if err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.transactor.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

// ListDoctors lists every doctor, or only the active doctors of a specialty
// when specialtyID is set.
func (u *doctorUsecase) ListDoctors(ctx context.Context, query dto.PageQuery, specialtyID *int64) ([]dto.DoctorResponse, error) {
	page, err := toPage(query, u.maxLimit)
	if err != nil {
		return nil, err
	}

	doctors, err := u.doctorRepo.FindAll(u.transactor.DB(ctx), entity.DoctorFilter{
		SpecialtyID: specialtyID,
		Page:        page,
	})
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	patch := entity.DoctorPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		SpecialtyID: req.SpecialtyID,
		Active:      req.Active,
	}

	var updated *entity.Doctor
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		doctor, err := u.doctorRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find doctor by ID: %+v", err)
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}

		before := *doctor
		patch.Apply(doctor)

		emailChanged := doctor.Email != before.Email
		if emailChanged {
			other, err := u.doctorRepo.FindByEmail(tx, doctor.Email)
			if err != nil {
				u.log.Warnf("Failed to find doctor by email: %+v", err)
				return err
			}
			if other != nil && other.ID != doctor.ID {
				return ErrEmailAlreadyExists
			}

			account, err := u.accountRepo.FindByEmail(tx, doctor.Email)
			if err != nil {
				u.log.Warnf("Failed to find account by email: %+v", err)
				return err
			}
			if account != nil {
				return ErrAccountEmailExists
			}
		}

		if doctor.SpecialtyID != before.SpecialtyID {
			specialty, err := u.specialtyRepo.FindByID(tx, doctor.SpecialtyID)
			if err != nil {
				u.log.Warnf("Failed to find specialty by ID: %+v", err)
				return err
			}
			if specialty == nil {
				return ErrSpecialtyNotFound
			}
			doctor.Specialty = specialty
		}

		if err := u.doctorRepo.Update(tx, doctor); err != nil {
			u.log.Warnf("Failed to update doctor: %+v", err)
			return translateConstraintError(err)
		}

		if emailChanged || doctor.Active != before.Active {
			if err := u.syncAccount(tx, doctor); err != nil {
				return err
			}
		}

		updated = doctor
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionDoctorUpdate, "doctor", doctor.ID, before, doctor)
	})
	if err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(updated), nil
}

// syncAccount copies email and active flag onto the doctor's account.
func (u *doctorUsecase) syncAccount(tx *gorm.DB, doctor *entity.Doctor) error {
	account, err := u.accountRepo.FindByReference(tx, entity.RoleDoctor, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor account: %+v", err)
		return err
	}
	if account == nil {
		return nil
	}

	account.Email = doctor.Email
	account.Active = doctor.Active
	if err := u.accountRepo.Update(tx, account); err != nil {
		u.log.Warnf("Failed to update doctor account: %+v", err)
		return translateConstraintError(err)
	}
	return nil
}

// DeleteDoctor removes the doctor; schedules, appointments, records and
// invoices cascade through the foreign keys.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int64) error {
	var account *entity.Account
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		doctor, err := u.doctorRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find doctor by ID: %+v", err)
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}

		account, err = u.accountRepo.FindByReference(tx, entity.RoleDoctor, id)
		if err != nil {
			u.log.Warnf("Failed to find doctor account: %+v", err)
			return err
		}

		if _, err := u.accountRepo.DeleteByReference(tx, entity.RoleDoctor, id); err != nil {
			u.log.Warnf("Failed to delete doctor account: %+v", err)
			return err
		}

		rows, err := u.doctorRepo.Delete(tx, id)
		if err != nil {
			u.log.Warnf("Failed to delete doctor: %+v", err)
			return err
		}
		if rows == 0 {
			return ErrDoctorNotFound
		}

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionDoctorDelete, "doctor", id, doctor)
	})
	if err != nil {
		return err
	}

	if account != nil {
		if err := u.sessions.RevokeAll(ctx, account.ID); err != nil {
			u.log.Warnf("Failed to revoke sessions of deleted doctor: %+v", err)
		}
	}

	return nil
}

func (u *doctorUsecase) ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(u.transactor.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all specialties: %+v", err)
		return nil, err
	}

	return converter.SpecialtiesToResponses(specialties), nil
}
