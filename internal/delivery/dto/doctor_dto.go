package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	FirstName   string  `json:"nombre" validate:"required,notblank,max=100"`
	LastName    string  `json:"apellido" validate:"required,notblank,max=100"`
	DocumentID  string  `json:"documento" validate:"required,min=5,max=20"`
	Email       string  `json:"correo" validate:"required,email,max=100"`
	Phone       *string `json:"telefono" validate:"omitempty,min=7,max=20"`
	License     string  `json:"licencia" validate:"required,min=5,max=50"`
	SpecialtyID int64   `json:"id_especialidad" validate:"required,gt=0"`
}

type UpdateDoctorRequest struct {
	FirstName   *string `json:"nombre" validate:"omitempty,notblank,max=100"`
	LastName    *string `json:"apellido" validate:"omitempty,notblank,max=100"`
	Email       *string `json:"correo" validate:"omitempty,email,max=100"`
	Phone       *string `json:"telefono" validate:"omitempty,min=7,max=20"`
	SpecialtyID *int64  `json:"id_especialidad" validate:"omitempty,gt=0"`
	Active      *bool   `json:"activo"`
}

// Response DTOs

type DoctorResponse struct {
	ID            int64     `json:"id_doctor"`
	FirstName     string    `json:"nombre"`
	LastName      string    `json:"apellido"`
	DocumentID    string    `json:"documento"`
	Email         string    `json:"correo"`
	Phone         *string   `json:"telefono"`
	License       string    `json:"licencia"`
	SpecialtyID   int64     `json:"id_especialidad"`
	SpecialtyName *string   `json:"especialidad_nombre,omitempty"`
	Active        bool      `json:"activo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SpecialtyResponse struct {
	ID          int64   `json:"id_especialidad"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}
