package repository

import (
	"medical-appointments-api/internal/domain/entity"
	domainRepo "medical-appointments-api/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicalRecordRepository struct{}

func NewClinicalRecordRepository() domainRepo.ClinicalRecordRepository {
	return &clinicalRecordRepository{}
}

func (r *clinicalRecordRepository) Create(db *gorm.DB, record *entity.ClinicalRecord) error {
	return db.Create(record).Error
}

func (r *clinicalRecordRepository) FindByPatient(db *gorm.DB, patientID int64) ([]entity.ClinicalRecord, error) {
	var records []entity.ClinicalRecord
	err := db.
		Where("id_paciente = ?", patientID).
		Order("fecha_registro DESC, id_historia DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
