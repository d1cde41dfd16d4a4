package entity

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pendiente"
	AppointmentConfirmed AppointmentStatus = "confirmada"
	AppointmentCompleted AppointmentStatus = "completada"
	AppointmentCancelled AppointmentStatus = "cancelada"
)

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// CanTransitionTo follows the lifecycle
// pendiente -> confirmada -> completada, pendiente|confirmada -> cancelada.
// Setting the current status again is always allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case AppointmentPending:
		return next == AppointmentConfirmed || next == AppointmentCancelled
	case AppointmentConfirmed:
		return next == AppointmentCompleted || next == AppointmentCancelled
	default:
		return false
	}
}

// Appointment is a visit of a patient to a doctor at an exact date and time.
type Appointment struct {
	ID        int64             `gorm:"column:id_cita;primaryKey;autoIncrement" json:"id_cita"`
	PatientID int64             `gorm:"column:id_paciente;not null;index" json:"id_paciente"`
	DoctorID  int64             `gorm:"column:id_doctor;not null;index" json:"id_doctor"`
	Date      time.Time         `gorm:"column:fecha;type:date;not null;index" json:"fecha"`
	Time      string            `gorm:"column:hora;type:time;not null" json:"hora"`
	Reason    string            `gorm:"column:motivo;type:varchar(255);not null" json:"motivo"`
	Status    AppointmentStatus `gorm:"column:estado;type:varchar(20);not null;default:pendiente;index" json:"estado"`
	Notes     *string           `gorm:"column:observaciones;type:text" json:"observaciones"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;references:ID" json:"paciente,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "cita_medica"
}

// HoldsSlot is true while the appointment blocks its doctor/date/time.
func (a *Appointment) HoldsSlot() bool {
	return a.Status != AppointmentCancelled
}

// SameSlot compares doctor, date and time of day.
func (a *Appointment) SameSlot(doctorID int64, date time.Time, clock string) bool {
	if a.DoctorID != doctorID || a.Date.Format(DateLayout) != date.Format(DateLayout) {
		return false
	}
	t1, err1 := ParseClock(a.Time)
	t2, err2 := ParseClock(clock)
	return err1 == nil && err2 == nil && t1.Equal(t2)
}

// IsDateInPast reports whether date falls before the day of now.
func IsDateInPast(date, now time.Time) bool {
	return truncateDay(date).Before(truncateDay(now))
}

// AppointmentPatch holds the fields a caller explicitly asked to change.
type AppointmentPatch struct {
	Date   *time.Time
	Time   *string
	Reason *string
	Notes  *string
}

func (p AppointmentPatch) Apply(appointment *Appointment) {
	if p.Date != nil {
		appointment.Date = *p.Date
	}
	if p.Time != nil {
		appointment.Time = *p.Time
	}
	if p.Reason != nil {
		appointment.Reason = *p.Reason
	}
	if p.Notes != nil {
		appointment.Notes = p.Notes
	}
}

// MovesSlot is true when the patch changes date or time.
func (p AppointmentPatch) MovesSlot() bool {
	return p.Date != nil || p.Time != nil
}
