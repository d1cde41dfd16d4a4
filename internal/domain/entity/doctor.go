package entity

import "time"

// Doctor is a practitioner that owns schedules and attends appointments.
type Doctor struct {
	ID          int64     `gorm:"column:id_doctor;primaryKey;autoIncrement" json:"id_doctor"`
	FirstName   string    `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	LastName    string    `gorm:"column:apellido;type:varchar(100);not null" json:"apellido"`
	DocumentID  string    `gorm:"column:documento;type:varchar(20);uniqueIndex;not null" json:"documento"`
	Email       string    `gorm:"column:correo;type:varchar(100);uniqueIndex;not null" json:"correo"`
	Phone       *string   `gorm:"column:telefono;type:varchar(20)" json:"telefono"`
	License     string    `gorm:"column:licencia;type:varchar(50);uniqueIndex;not null" json:"licencia"`
	SpecialtyID int64     `gorm:"column:id_especialidad;not null;index" json:"id_especialidad"`
	Active      bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialty *Specialty `gorm:"foreignKey:SpecialtyID;references:ID" json:"especialidad,omitempty"`
}

func (Doctor) TableName() string {
	return "doctor"
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// DoctorPatch holds the fields a caller explicitly asked to change.
type DoctorPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	SpecialtyID *int64
	Active      *bool
}

func (p DoctorPatch) Apply(doctor *Doctor) {
	if p.FirstName != nil {
		doctor.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		doctor.LastName = *p.LastName
	}
	if p.Email != nil {
		doctor.Email = NormalizeEmail(*p.Email)
	}
	if p.Phone != nil {
		doctor.Phone = p.Phone
	}
	if p.SpecialtyID != nil && *p.SpecialtyID != doctor.SpecialtyID {
		doctor.SpecialtyID = *p.SpecialtyID
		doctor.Specialty = nil
	}
	if p.Active != nil {
		doctor.Active = *p.Active
	}
}
