package repository

import (
	"errors"
	"time"

	"medical-appointments-api/internal/domain/entity"
	domainRepo "medical-appointments-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Patient").Preload("Doctor").Preload("Doctor.Specialty").
		Where("id_cita = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, page entity.Page) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Patient").Preload("Doctor").
		Order("fecha DESC, hora DESC, id_cita DESC").
		Offset(page.Offset).Limit(page.Limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindHoldingSlot(db *gorm.DB, doctorID int64, date time.Time, clock string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("id_doctor = ? AND fecha = ? AND hora = ? AND estado <> ?",
			doctorID, date.Format(entity.DateLayout), clock, entity.AppointmentCancelled).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor").Save(appointment).Error
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).Where("id_cita = ?", id).Update("estado", status).Error
}
