package entity

import (
	"errors"
	"strings"
	"time"
)

const maxPatientAgeYears = 120

var (
	ErrBirthDateInFuture = errors.New("birth date is in the future")
	ErrBirthDateTooOld   = errors.New("birth date implies an age above the limit")
)

// Patient is a person who books appointments.
type Patient struct {
	ID         int64     `gorm:"column:id_paciente;primaryKey;autoIncrement" json:"id_paciente"`
	FirstName  string    `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	LastName   string    `gorm:"column:apellido;type:varchar(100);not null" json:"apellido"`
	DocumentID string    `gorm:"column:documento;type:varchar(20);uniqueIndex;not null" json:"documento"`
	Email      string    `gorm:"column:correo;type:varchar(100);uniqueIndex;not null" json:"correo"`
	Phone      string    `gorm:"column:telefono;type:varchar(20);not null" json:"telefono"`
	Address    *string   `gorm:"column:direccion;type:varchar(255)" json:"direccion"`
	BirthDate  time.Time `gorm:"column:fecha_nacimiento;type:date;not null" json:"fecha_nacimiento"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "paciente"
}

// PatientPatch holds the fields a caller explicitly asked to change.
type PatientPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
	BirthDate *time.Time
}

func (p PatientPatch) Apply(patient *Patient) {
	if p.FirstName != nil {
		patient.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		patient.LastName = *p.LastName
	}
	if p.Email != nil {
		patient.Email = NormalizeEmail(*p.Email)
	}
	if p.Phone != nil {
		patient.Phone = *p.Phone
	}
	if p.Address != nil {
		patient.Address = p.Address
	}
	if p.BirthDate != nil {
		patient.BirthDate = *p.BirthDate
	}
}

// ValidateBirthDate rejects future dates and ages above 120 years.
func ValidateBirthDate(birth, now time.Time) error {
	today := truncateDay(now)
	birth = truncateDay(birth)
	if birth.After(today) {
		return ErrBirthDateInFuture
	}
	if int(today.Sub(birth).Hours()/24)/365 > maxPatientAgeYears {
		return ErrBirthDateTooOld
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
