package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medrec/hospital-api/internal/config"
	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository/sqlite"
	apperrors "github.com/medrec/hospital-api/pkg/errors"
)

func newTestService(t *testing.T) (*Service, int64, int64) {
	t.Helper()

	db, err := sqlite.NewDB(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()
	require.NoError(t, sqlite.Migrate(ctx, db))

	patient := &model.Patient{Name: "Test Patient"}
	require.NoError(t, sqlite.NewPatientRepository(db).Create(ctx, patient))
	doctor := &model.Doctor{Name: "Dr. Test"}
	require.NoError(t, sqlite.NewDoctorRepository(db).Create(ctx, doctor))

	return NewService(sqlite.NewAppointmentRepository(db)), patient.ID, doctor.ID
}

func TestCreateAppointmentRejectsBadDateTime(t *testing.T) {
	svc, patientID, doctorID := newTestService(t)

	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		PatientID:   patientID,
		DoctorID:    doctorID,
		ScheduledAt: "tomorrow at noon",
	})
	assert.True(t, apperrors.IsBadRequest(err))

	appointments, err := svc.ListAppointments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestCreateAppointmentRoundTrip(t *testing.T) {
	svc, patientID, doctorID := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAppointment(ctx, &model.CreateAppointmentRequest{
		PatientID:   patientID,
		DoctorID:    doctorID,
		ScheduledAt: "2025-06-01T09:30:00Z",
	})
	require.NoError(t, err)

	got, err := svc.GetAppointment(ctx, created.ID)
	require.NoError(t, err)
	want := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	assert.True(t, got.ScheduledAt.Equal(want))
}

func TestCreateAppointmentRequiresReferences(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		ScheduledAt: "2025-06-01T09:30:00Z",
	})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestCreateAppointmentUnknownReferences(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		PatientID:   999,
		DoctorID:    998,
		ScheduledAt: "2025-06-01T09:30:00Z",
	})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestDeleteAppointmentTwice(t *testing.T) {
	svc, patientID, doctorID := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAppointment(ctx, &model.CreateAppointmentRequest{
		PatientID:   patientID,
		DoctorID:    doctorID,
		ScheduledAt: "2025-06-01T09:30:00Z",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAppointment(ctx, created.ID))
	assert.True(t, apperrors.IsNotFound(svc.DeleteAppointment(ctx, created.ID)))
}
