package repository

import (
	"errors"

	"medical-appointments-api/internal/domain/entity"
	domainRepo "medical-appointments-api/internal/domain/repository"

	"gorm.io/gorm"
)

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(db *gorm.DB, account *entity.Account) error {
	return db.Create(account).Error
}

func (r *accountRepository) FindByID(db *gorm.DB, id int64) (*entity.Account, error) {
	return r.findOne(db.Where("id_usuario = ?", id))
}

func (r *accountRepository) FindByEmail(db *gorm.DB, email string) (*entity.Account, error) {
	return r.findOne(db.Where("correo = ?", email))
}

func (r *accountRepository) FindByReference(db *gorm.DB, role entity.Role, referenceID int64) (*entity.Account, error) {
	return r.findOne(db.Where("rol = ? AND id_referencia = ?", role, referenceID))
}

func (r *accountRepository) Update(db *gorm.DB, account *entity.Account) error {
	return db.Save(account).Error
}

func (r *accountRepository) DeleteByReference(db *gorm.DB, role entity.Role, referenceID int64) (int64, error) {
	result := db.Where("rol = ? AND id_referencia = ?", role, referenceID).Delete(&entity.Account{})
	return result.RowsAffected, result.Error
}

func (r *accountRepository) findOne(query *gorm.DB) (*entity.Account, error) {
	var account entity.Account
	err := query.First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
