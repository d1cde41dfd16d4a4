package usecase

import (
	"time"

	"medical-appointments-api/internal/domain/entity"
	pgrepo "medical-appointments-api/internal/repository"
)

func parseBirthDate(value string, now time.Time) (time.Time, error) {
	birth, err := entity.ParseDate(value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	switch entity.ValidateBirthDate(birth, now) {
	case entity.ErrBirthDateInFuture:
		return time.Time{}, ErrBirthDateInFuture
	case entity.ErrBirthDateTooOld:
		return time.Time{}, ErrBirthDateTooOld
	}
	return birth, nil
}

func parseClock(value string) (string, error) {
	clock, err := entity.NormalizeClock(value)
	if err != nil {
		return "", ErrInvalidTime
	}
	return clock, nil
}

func int64Ptr(v int64) *int64 {
	return &v
}

// translateConstraintError maps a constraint violation that slipped past the
// pre-insert checks (a concurrent writer) to its business error.
func translateConstraintError(err error) error {
	switch {
	case pgrepo.IsDuplicateKeyError(err, "paciente_documento"),
		pgrepo.IsDuplicateKeyError(err, "doctor_documento"):
		return ErrDocumentAlreadyExists
	case pgrepo.IsDuplicateKeyError(err, "paciente_correo"),
		pgrepo.IsDuplicateKeyError(err, "doctor_correo"):
		return ErrEmailAlreadyExists
	case pgrepo.IsDuplicateKeyError(err, "usuario_correo"):
		return ErrAccountEmailExists
	case pgrepo.IsDuplicateKeyError(err, "doctor_licencia"):
		return ErrLicenseAlreadyExists
	case pgrepo.IsDuplicateKeyError(err, "cita_slot"):
		return ErrSlotUnavailable
	case pgrepo.IsDuplicateKeyError(err, "factura_cita"):
		return ErrInvoiceAlreadyExists
	case pgrepo.IsForeignKeyError(err, "doctor_especialidad"):
		return ErrSpecialtyNotFound
	case pgrepo.IsForeignKeyError(err, "paciente"):
		return ErrPatientNotFound
	case pgrepo.IsForeignKeyError(err, "doctor"):
		return ErrDoctorNotFound
	case pgrepo.IsForeignKeyError(err, "metodo_pago"):
		return ErrPaymentMethodNotFound
	case pgrepo.IsForeignKeyError(err, "cita"):
		return ErrAppointmentNotFound
	}
	return err
}
