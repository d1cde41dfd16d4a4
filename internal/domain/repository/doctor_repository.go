package repository

import (
	"medical-appointments-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int64) (*entity.Doctor, error)
	// LockByID takes a row lock on the doctor for the rest of the transaction.
	LockByID(db *gorm.DB, id int64) (*entity.Doctor, error)
	FindByDocument(db *gorm.DB, documentID string) (*entity.Doctor, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error)
	FindByLicense(db *gorm.DB, license string) (*entity.Doctor, error)
	FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id int64) (int64, error)
}

type SpecialtyRepository interface {
	FindByID(db *gorm.DB, id int64) (*entity.Specialty, error)
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
}
