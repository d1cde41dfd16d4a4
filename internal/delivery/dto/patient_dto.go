package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FirstName  string  `json:"nombre" validate:"required,notblank,max=100"`
	LastName   string  `json:"apellido" validate:"required,notblank,max=100"`
	DocumentID string  `json:"documento" validate:"required,min=5,max=20"`
	Email      string  `json:"correo" validate:"required,email,max=100"`
	Phone      string  `json:"telefono" validate:"required,min=7,max=20"`
	Address    *string `json:"direccion" validate:"omitempty,max=255"`
	BirthDate  string  `json:"fecha_nacimiento" validate:"required,isodate"` // Format: YYYY-MM-DD
}

type UpdatePatientRequest struct {
	FirstName *string `json:"nombre" validate:"omitempty,notblank,max=100"`
	LastName  *string `json:"apellido" validate:"omitempty,notblank,max=100"`
	Email     *string `json:"correo" validate:"omitempty,email,max=100"`
	Phone     *string `json:"telefono" validate:"omitempty,min=7,max=20"`
	Address   *string `json:"direccion" validate:"omitempty,max=255"`
	BirthDate *string `json:"fecha_nacimiento" validate:"omitempty,isodate"`
}

// Response DTOs

type PatientResponse struct {
	ID         int64     `json:"id_paciente"`
	FirstName  string    `json:"nombre"`
	LastName   string    `json:"apellido"`
	DocumentID string    `json:"documento"`
	Email      string    `json:"correo"`
	Phone      string    `json:"telefono"`
	Address    *string   `json:"direccion"`
	BirthDate  string    `json:"fecha_nacimiento"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
