package usecase

import (
	"context"
	"errors"

	"medical-appointments-api/internal/converter"
	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
	"medical-appointments-api/internal/domain/repository"
	"medical-appointments-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	ListDoctorSchedules(ctx context.Context, doctorID int64) ([]dto.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

type scheduleUsecase struct {
	log          *logrus.Logger
	transactor   repository.Transactor
	scheduleRepo repository.ScheduleRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewScheduleUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	scheduleRepo repository.ScheduleRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		log:          log,
		transactor:   transactor,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// CreateSchedule rejects a window that intersects any active window of the
// same doctor on the same day. The doctor row stays locked until commit so
// two concurrent creations cannot both pass the overlap check.
func (u *scheduleUsecase) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	day, err := entity.ParseWeekday(req.Day)
	if err != nil {
		return nil, ErrInvalidWeekday
	}
	start, err := parseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		return nil, err
	}

	schedule := &entity.Schedule{
		DoctorID:  req.DoctorID,
		Day:       day,
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}
	if err := schedule.Validate(); err != nil {
		return nil, ErrInvalidSchedule
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		doctor, err := u.doctorRepo.LockByID(tx, schedule.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to lock doctor: %+v", err)
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}

		if err := u.checkOverlap(tx, schedule); err != nil {
			if errors.Is(err, ErrScheduleOverlap) {
				return scheduleOverlapOnDay(string(schedule.Day))
			}
			return err
		}

		if err := u.scheduleRepo.Create(tx, schedule); err != nil {
			u.log.Warnf("Failed to create schedule: %+v", err)
			return translateConstraintError(err)
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionScheduleCreate, "horario", schedule.ID, schedule)
	})
	if err != nil {
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

// ListDoctorSchedules returns the active windows of a doctor. An unknown
// doctor simply has none.
func (u *scheduleUsecase) ListDoctorSchedules(ctx context.Context, doctorID int64) ([]dto.ScheduleResponse, error) {
	schedules, err := u.scheduleRepo.FindActiveByDoctor(u.transactor.DB(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor schedules: %+v", err)
		return nil, err
	}

	return converter.SchedulesToResponses(schedules), nil
}

func (u *scheduleUsecase) UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	var patch entity.SchedulePatch
	if req.Day != nil {
		day, err := entity.ParseWeekday(*req.Day)
		if err != nil {
			return nil, ErrInvalidWeekday
		}
		patch.Day = &day
	}
	if req.StartTime != nil {
		start, err := parseClock(*req.StartTime)
		if err != nil {
			return nil, err
		}
		patch.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := parseClock(*req.EndTime)
		if err != nil {
			return nil, err
		}
		patch.EndTime = &end
	}
	patch.Active = req.Active

	var updated *entity.Schedule
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		schedule, err := u.scheduleRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find schedule by ID: %+v", err)
			return err
		}
		if schedule == nil {
			return ErrScheduleNotFound
		}

		if _, err := u.doctorRepo.LockByID(tx, schedule.DoctorID); err != nil {
			u.log.Warnf("Failed to lock doctor: %+v", err)
			return err
		}

		before := *schedule
		patch.Apply(schedule)
		if err := schedule.Validate(); err != nil {
			return ErrInvalidSchedule
		}

		if schedule.Active && patch.TouchesInterval() {
			if err := u.checkOverlap(tx, schedule); err != nil {
				return err
			}
		}

		if err := u.scheduleRepo.Update(tx, schedule); err != nil {
			u.log.Warnf("Failed to update schedule: %+v", err)
			return err
		}

		updated = schedule
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionScheduleUpdate, "horario", schedule.ID, before, schedule)
	})
	if err != nil {
		return nil, err
	}

	return converter.ScheduleToResponse(updated), nil
}

func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, id int64) error {
	return u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		schedule, err := u.scheduleRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find schedule by ID: %+v", err)
			return err
		}
		if schedule == nil {
			return ErrScheduleNotFound
		}

		if _, err := u.scheduleRepo.Delete(tx, id); err != nil {
			u.log.Warnf("Failed to delete schedule: %+v", err)
			return err
		}

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionScheduleDelete, "horario", id, schedule)
	})
}

// checkOverlap compares schedule with the other active windows of its
// doctor on the same day, skipping itself.
func (u *scheduleUsecase) checkOverlap(tx *gorm.DB, schedule *entity.Schedule) error {
	existing, err := u.scheduleRepo.FindActiveByDoctorAndDay(tx, schedule.DoctorID, schedule.Day)
	if err != nil {
		u.log.Warnf("Failed to find schedules by day: %+v", err)
		return err
	}

	for i := range existing {
		if existing[i].ID == schedule.ID {
			continue
		}
		if schedule.Overlaps(&existing[i]) {
			return ErrScheduleOverlap
		}
	}
	return nil
}
