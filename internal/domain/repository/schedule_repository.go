package repository

import (
	"medical-appointments-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.Schedule) error
	FindByID(db *gorm.DB, id int64) (*entity.Schedule, error)
	FindActiveByDoctor(db *gorm.DB, doctorID int64) ([]entity.Schedule, error)
	FindActiveByDoctorAndDay(db *gorm.DB, doctorID int64, day entity.Weekday) ([]entity.Schedule, error)
	Update(db *gorm.DB, schedule *entity.Schedule) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
