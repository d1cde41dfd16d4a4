package repository

import (
	"errors"

	"medical-appointments-api/internal/domain/entity"
	domainRepo "medical-appointments-api/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) Create(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Create(schedule).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id int64) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Where("id_horario = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// dayOrder sorts Spanish weekday names Monday first.
const dayOrder = "array_position(ARRAY['Lunes','Martes','Miércoles','Jueves','Viernes','Sábado','Domingo']::varchar[], dia_semana)"

func (r *scheduleRepository) FindActiveByDoctor(db *gorm.DB, doctorID int64) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.
		Where("id_doctor = ? AND activo = ?", doctorID, true).
		Order(dayOrder + ", hora_inicio ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindActiveByDoctorAndDay(db *gorm.DB, doctorID int64, day entity.Weekday) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.
		Where("id_doctor = ? AND dia_semana = ? AND activo = ?", doctorID, day, true).
		Order("hora_inicio ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Save(schedule).Error
}

func (r *scheduleRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id_horario = ?", id).Delete(&entity.Schedule{})
	return result.RowsAffected, result.Error
}
