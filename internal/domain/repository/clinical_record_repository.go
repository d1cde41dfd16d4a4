package repository

import (
	"medical-appointments-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.ClinicalRecord) error
	FindByPatient(db *gorm.DB, patientID int64) ([]entity.ClinicalRecord, error)
}
