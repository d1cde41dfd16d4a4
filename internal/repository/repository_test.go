package repository

import (
	"regexp"
	"testing"
	"time"

	"medical-appointments-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestFindHoldingSlotSkipsCancelled(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	date := time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "cita_medica" WHERE \(?id_doctor = \$1 AND fecha = \$2 AND hora = \$3 AND estado <> \$4\)?`).
		WithArgs(int64(7), "2030-03-12", "10:30:00", "cancelada").
		WillReturnRows(sqlmock.NewRows([]string{"id_cita", "id_doctor", "hora", "estado"}).
			AddRow(int64(3), int64(7), "10:30:00", "pendiente"))

	appointments, err := repo.FindHoldingSlot(db, 7, date, "10:30:00")
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, int64(3), appointments[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentDoesNotWriteAssociations(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	appointment := &entity.Appointment{
		PatientID: 1,
		DoctorID:  7,
		Date:      time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC),
		Time:      "10:30:00",
		Reason:    "Control general",
		Status:    entity.AppointmentPending,
		Patient:   &entity.Patient{ID: 1},
		Doctor:    &entity.Doctor{ID: 7},
	}

	// Only the appointment row is written; an unexpected INSERT into
	// "paciente" or "doctor" fails the test.
	mock.ExpectQuery(`INSERT INTO "cita_medica" .* RETURNING .*"id_cita"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_cita"}).AddRow(int64(11)))

	require.NoError(t, repo.Create(db, appointment))
	assert.Equal(t, int64(11), appointment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentDoesNotWriteAssociations(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	appointment := &entity.Appointment{
		ID:        11,
		PatientID: 1,
		DoctorID:  7,
		Date:      time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC),
		Time:      "11:00:00",
		Reason:    "Control general",
		Status:    entity.AppointmentConfirmed,
		Patient:   &entity.Patient{ID: 1},
		Doctor:    &entity.Doctor{ID: 7},
	}

	mock.ExpectExec(`UPDATE "cita_medica" SET .* WHERE "id_cita" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(db, appointment))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentStatusTouchesOnlyState(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectExec(`UPDATE "cita_medica" SET "estado"=\$1,"updated_at"=\$2 WHERE id_cita = \$3`).
		WithArgs("cancelada", sqlmock.AnyArg(), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(db, 11, entity.AppointmentCancelled))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByDoctorAndDay(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository()

	mock.ExpectQuery(`SELECT \* FROM "horario" WHERE \(?id_doctor = \$1 AND dia_semana = \$2 AND activo = \$3\)? ORDER BY hora_inicio ASC`).
		WithArgs(int64(7), "Lunes", true).
		WillReturnRows(sqlmock.NewRows([]string{"id_horario", "id_doctor", "dia_semana", "hora_inicio", "hora_fin", "activo"}).
			AddRow(int64(1), int64(7), "Lunes", "08:00:00", "12:00:00", true))

	schedules, err := repo.FindActiveByDoctorAndDay(db, 7, entity.Monday)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, entity.Monday, schedules[0].Day)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByDoctorOrdersByWeekday(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository()

	mock.ExpectQuery(`WHERE \(?id_doctor = \$1 AND activo = \$2\)? ORDER BY ` + regexp.QuoteMeta(dayOrder+", hora_inicio ASC")).
		WithArgs(int64(7), true).
		WillReturnRows(sqlmock.NewRows([]string{"id_horario"}))

	schedules, err := repo.FindActiveByDoctor(db, 7)
	require.NoError(t, err)
	assert.Empty(t, schedules)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockDoctorUsesForUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`SELECT \* FROM "doctor" WHERE id_doctor = \$1 ORDER BY "doctor"\."id_doctor" LIMIT \$2 FOR UPDATE`).
		WithArgs(int64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id_doctor", "nombre", "activo"}).AddRow(int64(7), "Laura", true))

	doctor, err := repo.LockByID(db, 7)
	require.NoError(t, err)
	require.NotNil(t, doctor)
	assert.Equal(t, int64(7), doctor.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockDoctorNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id_doctor"}))

	doctor, err := repo.LockByID(db, 99)
	require.NoError(t, err)
	assert.Nil(t, doctor)
	assert.NoError(t, mock.ExpectationsWereMet())
}
