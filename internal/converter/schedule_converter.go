package converter

import (
	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
)

func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	return &dto.ScheduleResponse{
		ID:        schedule.ID,
		DoctorID:  schedule.DoctorID,
		Day:       string(schedule.Day),
		StartTime: clockString(schedule.StartTime),
		EndTime:   clockString(schedule.EndTime),
		Active:    schedule.Active,
	}
}

func SchedulesToResponses(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = *ScheduleToResponse(&schedule)
	}
	return responses
}

// clockString renders stored times as HH:MM:SS, falling back to the raw value.
func clockString(value string) string {
	if normalized, err := entity.NormalizeClock(value); err == nil {
		return normalized
	}
	return value
}
