package usecase

import "medical-appointments-api/pkg/apperror"

var (
	ErrPatientNotFound        = apperror.NotFound("Paciente no encontrado")
	ErrDoctorNotFound         = apperror.NotFound("Doctor no encontrado")
	ErrSpecialtyNotFound      = apperror.NotFound("La especialidad especificada no existe")
	ErrScheduleNotFound       = apperror.NotFound("Horario no encontrado")
	ErrAppointmentNotFound    = apperror.NotFound("Cita no encontrada")
	ErrInvoiceNotFound        = apperror.NotFound("Factura no encontrada")
	ErrPaymentMethodNotFound  = apperror.NotFound("Método de pago no encontrado o inactivo")
	ErrAccountNotFound        = apperror.NotFound("Usuario no encontrado")
	ErrAuditLogNotFound       = apperror.NotFound("Registro de auditoría no encontrado")
	ErrDocumentAlreadyExists  = apperror.Conflict("El documento ya se encuentra registrado")
	ErrEmailAlreadyExists     = apperror.Conflict("El correo electrónico ya se encuentra registrado")
	ErrAccountEmailExists     = apperror.Conflict("El correo electrónico ya está registrado en el sistema")
	ErrLicenseAlreadyExists   = apperror.Conflict("La licencia médica ya se encuentra registrada")
	ErrSlotUnavailable        = apperror.Conflict("El horario no está disponible")
	ErrScheduleOverlap        = apperror.Conflict("Solapamiento de horarios detectado")
	ErrInvoiceAlreadyExists   = apperror.Conflict("Ya existe una factura para esta cita")
	ErrAppointmentNotComplete = apperror.Invalid("Solo se pueden facturar citas completadas")
	ErrInvalidSchedule        = apperror.Invalid("La hora de fin debe ser posterior a la hora de inicio")
	ErrAppointmentInPast      = apperror.Invalid("La fecha de la cita no puede estar en el pasado")
	ErrInvalidStatus          = apperror.Invalid("Estado inválido")
	ErrInvalidTransition      = apperror.Invalid("Transición de estado no permitida")
	ErrInvalidAmount          = apperror.Invalid("El monto debe ser mayor a 0 y tener como máximo 2 decimales")
	ErrInvalidDate            = apperror.Invalid("Formato de fecha inválido, use YYYY-MM-DD")
	ErrInvalidTime            = apperror.Invalid("Formato de hora inválido, use HH:MM o HH:MM:SS")
	ErrBirthDateInFuture      = apperror.Invalid("La fecha de nacimiento no puede ser futura")
	ErrBirthDateTooOld        = apperror.Invalid("La fecha de nacimiento no es válida")
	ErrInvalidPagination      = apperror.Invalid("Parámetros de paginación inválidos")
	ErrInvalidWeekday         = apperror.Invalid("Día de la semana inválido")
	ErrInvalidCredentials     = apperror.Unauthorized("Credenciales inválidas")
	ErrInactiveAccount        = apperror.Unauthorized("Usuario inactivo. Contacte al administrador.")
)

// scheduleOverlapOnDay is the creation-time variant of ErrScheduleOverlap,
// naming the day that collides.
func scheduleOverlapOnDay(day string) error {
	return apperror.Conflict("Ya existe un horario que se solapa con el horario propuesto para el día " + day)
}
