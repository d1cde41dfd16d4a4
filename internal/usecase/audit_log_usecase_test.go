package usecase

import (
	"context"
	"testing"

	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditTrailNewestFirst(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.patients.CreatePatient(ctx, patientRequest("1020304050", "ana@example.com"))
	require.NoError(t, err)
	second, err := env.patients.CreatePatient(ctx, patientRequest("5040302010", "luis@example.com"))
	require.NoError(t, err)

	logs, err := env.audit.GetAllAuditLogs(ctx, dto.PageQuery{Limit: 1})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionPatientCreate, logs[0].Action)
	assert.EqualValues(t, second.ID, logs[0].Metadata["entity_id"])

	got, err := env.audit.GetAuditLog(ctx, logs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, logs[0].ID, got.ID)
}

func TestAuditTrailErrors(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.audit.GetAuditLog(ctx, 999)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)

	_, err = env.audit.GetAllAuditLogs(ctx, dto.PageQuery{Skip: -1})
	assert.ErrorIs(t, err, ErrInvalidPagination)
}
