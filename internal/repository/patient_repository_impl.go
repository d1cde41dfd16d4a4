package repository

import (
	"errors"

	"medical-appointments-api/internal/domain/entity"
	domainRepo "medical-appointments-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	return r.findOne(db.Where("id_paciente = ?", id))
}

func (r *patientRepository) FindByDocument(db *gorm.DB, documentID string) (*entity.Patient, error) {
	return r.findOne(db.Where("documento = ?", documentID))
}

func (r *patientRepository) FindByEmail(db *gorm.DB, email string) (*entity.Patient, error) {
	return r.findOne(db.Where("correo = ?", email))
}

func (r *patientRepository) FindAll(db *gorm.DB, page entity.Page) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Order("id_paciente ASC").Offset(page.Offset).Limit(page.Limit).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

// Delete removes the row; appointments and clinical records go with it via
// ON DELETE CASCADE.
func (r *patientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id_paciente = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) findOne(query *gorm.DB) (*entity.Patient, error) {
	var patient entity.Patient
	err := query.First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
