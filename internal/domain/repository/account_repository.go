package repository

import (
	"medical-appointments-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(db *gorm.DB, account *entity.Account) error
	FindByID(db *gorm.DB, id int64) (*entity.Account, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Account, error)
	FindByReference(db *gorm.DB, role entity.Role, referenceID int64) (*entity.Account, error)
	Update(db *gorm.DB, account *entity.Account) error
	DeleteByReference(db *gorm.DB, role entity.Role, referenceID int64) (int64, error)
}
