package entity

import "time"

// ClinicalRecord is one entry of a patient's medical history.
type ClinicalRecord struct {
	ID            int64     `gorm:"column:id_historia;primaryKey;autoIncrement" json:"id_historia"`
	PatientID     int64     `gorm:"column:id_paciente;not null;index" json:"id_paciente"`
	DoctorID      int64     `gorm:"column:id_doctor;not null;index" json:"id_doctor"`
	AppointmentID *int64    `gorm:"column:id_cita;index" json:"id_cita"`
	RecordedAt    time.Time `gorm:"column:fecha_registro;not null;index" json:"fecha_registro"`
	Diagnosis     string    `gorm:"column:diagnostico;type:text;not null" json:"diagnostico"`
	Treatment     *string   `gorm:"column:tratamiento;type:text" json:"tratamiento"`
	Notes         *string   `gorm:"column:observaciones;type:text" json:"observaciones"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClinicalRecord) TableName() string {
	return "historia_clinica"
}
