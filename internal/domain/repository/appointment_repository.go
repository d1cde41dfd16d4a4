package repository

import (
	"time"

	"medical-appointments-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindAll(db *gorm.DB, page entity.Page) ([]entity.Appointment, error)
	// FindHoldingSlot returns the non-cancelled appointments at doctor/date/time.
	FindHoldingSlot(db *gorm.DB, doctorID int64, date time.Time, clock string) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) error
}
