package entity

import (
	"errors"
	"fmt"
	"time"
)

// Weekday is a Spanish day-of-week name as stored in horario.dia_semana.
type Weekday string

const (
	Monday    Weekday = "Lunes"
	Tuesday   Weekday = "Martes"
	Wednesday Weekday = "Miércoles"
	Thursday  Weekday = "Jueves"
	Friday    Weekday = "Viernes"
	Saturday  Weekday = "Sábado"
	Sunday    Weekday = "Domingo"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var ErrInvalidInterval = errors.New("end time must be after start time")

func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// Schedule is a recurring weekly availability window [StartTime, EndTime).
type Schedule struct {
	ID        int64     `gorm:"column:id_horario;primaryKey;autoIncrement" json:"id_horario"`
	DoctorID  int64     `gorm:"column:id_doctor;not null;index" json:"id_doctor"`
	Day       Weekday   `gorm:"column:dia_semana;type:varchar(10);not null" json:"dia_semana"`
	StartTime string    `gorm:"column:hora_inicio;type:time;not null" json:"hora_inicio"`
	EndTime   string    `gorm:"column:hora_fin;type:time;not null" json:"hora_fin"`
	Active    bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Schedule) TableName() string {
	return "horario"
}

// Validate checks that both bounds parse and end > start.
func (s *Schedule) Validate() error {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return ErrInvalidInterval
	}
	return nil
}

// Overlaps reports whether two schedules of the same day intersect.
// Touching intervals ([10,12) and [12,14)) do not overlap. A window whose
// times cannot be parsed is reported as overlapping so it never lets a
// conflicting schedule through.
func (s *Schedule) Overlaps(other *Schedule) bool {
	if s.Day != other.Day {
		return false
	}
	s1, err1 := ParseClock(s.StartTime)
	e1, err2 := ParseClock(s.EndTime)
	s2, err3 := ParseClock(other.StartTime)
	e2, err4 := ParseClock(other.EndTime)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return true
	}
	return s1.Before(e2) && s2.Before(e1)
}

// SchedulePatch holds the fields a caller explicitly asked to change.
type SchedulePatch struct {
	Day       *Weekday
	StartTime *string
	EndTime   *string
	Active    *bool
}

func (p SchedulePatch) Apply(schedule *Schedule) {
	if p.Day != nil {
		schedule.Day = *p.Day
	}
	if p.StartTime != nil {
		schedule.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		schedule.EndTime = *p.EndTime
	}
	if p.Active != nil {
		schedule.Active = *p.Active
	}
}

// TouchesInterval is true when the patch may move the schedule in time.
func (p SchedulePatch) TouchesInterval() bool {
	return p.Day != nil || p.StartTime != nil || p.EndTime != nil || (p.Active != nil && *p.Active)
}
