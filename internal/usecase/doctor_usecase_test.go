package usecase

import (
	"context"
	"testing"

	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
	"medical-appointments-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctorRequest(document, license, email string) *dto.CreateDoctorRequest {
	return &dto.CreateDoctorRequest{
		FirstName:   "Luis",
		LastName:    "Gómez",
		DocumentID:  document,
		Email:       email,
		License:     license,
		SpecialtyID: 1,
	}
}

func createDoctor(t *testing.T, env *testEnv, document string) *dto.DoctorResponse {
	t.Helper()
	doctor, err := env.doctors.CreateDoctor(context.Background(), doctorRequest(document, "LIC-"+document, document+"@clinica.com"))
	require.NoError(t, err)
	return doctor
}

func TestCreateDoctorIncludesSpecialtyAndAccount(t *testing.T) {
	env := newTestEnv()

	doctor := createDoctor(t, env, "80012345")
	require.NotNil(t, doctor.SpecialtyName)
	assert.Equal(t, "Medicina General", *doctor.SpecialtyName)
	assert.True(t, doctor.Active)

	account, _ := (&fakeAccountRepo{s: env.store}).FindByReference(nil, entity.RoleDoctor, doctor.ID)
	require.NotNil(t, account)
	assert.Equal(t, "80012345@clinica.com", account.Email)
}

func TestCreateDoctorUniqueness(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	createDoctor(t, env, "80012345")

	_, err := env.doctors.CreateDoctor(ctx, doctorRequest("80012345", "LIC-OTHER", "x@clinica.com"))
	assert.ErrorIs(t, err, ErrDocumentAlreadyExists)

	_, err = env.doctors.CreateDoctor(ctx, doctorRequest("90000000", "LIC-80012345", "x@clinica.com"))
	assert.ErrorIs(t, err, ErrLicenseAlreadyExists)

	_, err = env.doctors.CreateDoctor(ctx, doctorRequest("90000000", "LIC-OTHER", "80012345@clinica.com"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateDoctorUnknownSpecialty(t *testing.T) {
	env := newTestEnv()
	req := doctorRequest("80012345", "LIC-1", "luis@clinica.com")
	req.SpecialtyID = 99

	_, err := env.doctors.CreateDoctor(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Empty(t, env.store.doctors)
}

func TestUpdateDoctorChecksSpecialtyOnlyWhenGiven(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	doctor := createDoctor(t, env, "80012345")

	missing := int64(99)
	_, err := env.doctors.UpdateDoctor(ctx, doctor.ID, &dto.UpdateDoctorRequest{SpecialtyID: &missing})
	assert.ErrorIs(t, err, ErrSpecialtyNotFound)

	cardio := int64(2)
	updated, err := env.doctors.UpdateDoctor(ctx, doctor.ID, &dto.UpdateDoctorRequest{SpecialtyID: &cardio})
	require.NoError(t, err)
	require.NotNil(t, updated.SpecialtyName)
	assert.Equal(t, "Cardiología", *updated.SpecialtyName)
}

func TestUpdateDoctorDeactivatesAccount(t *testing.T) {
	env := newTestEnv()
	doctor := createDoctor(t, env, "80012345")

	inactive := false
	updated, err := env.doctors.UpdateDoctor(context.Background(), doctor.ID, &dto.UpdateDoctorRequest{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	account, _ := (&fakeAccountRepo{s: env.store}).FindByReference(nil, entity.RoleDoctor, doctor.ID)
	require.NotNil(t, account)
	assert.False(t, account.Active)
}

func TestListDoctorsBySpecialtyOnlyActive(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	first := createDoctor(t, env, "80012345")
	createDoctor(t, env, "80054321")

	inactive := false
	_, err := env.doctors.UpdateDoctor(ctx, first.ID, &dto.UpdateDoctorRequest{Active: &inactive})
	require.NoError(t, err)

	all, err := env.doctors.ListDoctors(ctx, dto.PageQuery{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	general := int64(1)
	filtered, err := env.doctors.ListDoctors(ctx, dto.PageQuery{}, &general)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "80054321", filtered[0].DocumentID)
}

func TestDeleteDoctorCascadesSchedules(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	doctor := createDoctor(t, env, "80012345")

	_, err := env.schedules.CreateSchedule(ctx, scheduleRequest(doctor.ID, "Lunes", "08:00", "12:00"))
	require.NoError(t, err)

	before, err := env.schedules.ListDoctorSchedules(ctx, doctor.ID)
	require.NoError(t, err)
	require.Len(t, before, 1)

	require.NoError(t, env.doctors.DeleteDoctor(ctx, doctor.ID))

	after, err := env.schedules.ListDoctorSchedules(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Empty(t, after)

	_, err = env.doctors.GetDoctor(ctx, doctor.ID)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Len(t, env.sessions.revokeAll, 1)
}

func TestListSpecialties(t *testing.T) {
	env := newTestEnv()

	specialties, err := env.doctors.ListSpecialties(context.Background())
	require.NoError(t, err)
	require.Len(t, specialties, 2)
	assert.Equal(t, "Cardiología", specialties[0].Name)
}
