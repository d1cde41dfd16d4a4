package repository

import (
	"errors"

	"medical-appointments-api/internal/domain/entity"
	domainRepo "medical-appointments-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Specialty").Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	return r.findOne(db.Preload("Specialty").Where("id_doctor = ?", id))
}

func (r *doctorRepository) LockByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	return r.findOne(db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id_doctor = ?", id))
}

func (r *doctorRepository) FindByDocument(db *gorm.DB, documentID string) (*entity.Doctor, error) {
	return r.findOne(db.Where("documento = ?", documentID))
}

func (r *doctorRepository) FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error) {
	return r.findOne(db.Where("correo = ?", email))
}

func (r *doctorRepository) FindByLicense(db *gorm.DB, license string) (*entity.Doctor, error) {
	return r.findOne(db.Where("licencia = ?", license))
}

func (r *doctorRepository) FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.Preload("Specialty")
	if filter.SpecialtyID != nil {
		query = query.Where("id_especialidad = ? AND activo = ?", *filter.SpecialtyID, true)
	}
	err := query.
		Order("id_doctor ASC").
		Offset(filter.Page.Offset).Limit(filter.Page.Limit).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Specialty").Save(doctor).Error
}

// Delete removes the row; schedules, appointments and clinical records go
// with it via ON DELETE CASCADE.
func (r *doctorRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id_doctor = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) findOne(query *gorm.DB) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := query.First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) FindByID(db *gorm.DB, id int64) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.Where("id_especialidad = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.Order("nombre ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}
