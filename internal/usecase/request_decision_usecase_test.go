package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubAuditService struct{}

func (s *stubAuditService) LogDecision(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, requestID string, metadata map[string]interface{}) error {
	return nil
}

func (s *stubAuditService) LogAction(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata map[string]interface{}) error {
	return nil
}

func newDecisionTest(t *testing.T) (RequestDecisionUsecase, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	u := NewRequestDecisionUsecase(
		db,
		log,
		repository.NewDoctorRepository(),
		repository.NewPrescriptionRequestRepository(),
		repository.NewPrescriptionRepository(),
		&stubAuditService{},
		redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"}),
	)
	return u, mock
}

func expectDoctorLookup(mock sqlmock.Sqlmock, doctorID entity.DoctorID, userID uuid.UUID) {
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "license_number"}).
			AddRow(doctorID.String(), userID.String(), "DE-12345"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func expectRequestLookup(mock sqlmock.Sqlmock, requestID, patientID uuid.UUID) {
	mock.ExpectQuery(`SELECT \* FROM "prescription_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "status", "total_amount"}).
			AddRow(requestID.String(), patientID.String(), "new", "150.00"))
	mock.ExpectQuery(`SELECT \* FROM "request_products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "request_id", "product_id"}))
}

func TestApprove(t *testing.T) {
	userID := uuid.New()
	doctorID := entity.DoctorID(uuid.New())
	requestID := uuid.New()
	patientID := uuid.New()

	t.Run("creates the prescription with the request flipped in one transaction", func(t *testing.T) {
		u, mock := newDecisionTest(t)
		prescriptionID := uuid.New()

		expectDoctorLookup(mock, doctorID, userID)
		mock.ExpectBegin()
		expectRequestLookup(mock, requestID, patientID)
		mock.ExpectExec(`UPDATE "prescription_requests" SET`).
			WithArgs(doctorID.String(), "all good", "approved", sqlmock.AnyArg(), requestID.String(), "new", "info_requested").
			WillReturnResult(sqlmock.NewResult(0, 1))
		// The decision is stamped with the doctor id and the prescription
		// records the patient's consent.
		mock.ExpectQuery(`INSERT INTO "prescriptions"`).
			WithArgs(patientID.String(), doctorID.String(), "approved", "[]", sqlmock.AnyArg(), sqlmock.AnyArg(), "all good", true, true, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(prescriptionID.String()))
		mock.ExpectCommit()

		result, err := u.Approve(context.Background(), userID, requestID, &dto.DecisionRequest{Notes: "all good"})
		require.NoError(t, err)
		assert.Equal(t, prescriptionID.String(), result.PrescriptionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already decided request conflicts without a prescription", func(t *testing.T) {
		u, mock := newDecisionTest(t)

		expectDoctorLookup(mock, doctorID, userID)
		mock.ExpectBegin()
		expectRequestLookup(mock, requestID, patientID)
		mock.ExpectExec(`UPDATE "prescription_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := u.Approve(context.Background(), userID, requestID, &dto.DecisionRequest{Notes: "all good"})
		assert.ErrorIs(t, err, ErrRequestAlreadyDecided)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed prescription insert rolls back the status flip", func(t *testing.T) {
		u, mock := newDecisionTest(t)

		expectDoctorLookup(mock, doctorID, userID)
		mock.ExpectBegin()
		expectRequestLookup(mock, requestID, patientID)
		mock.ExpectExec(`UPDATE "prescription_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "prescriptions"`).
			WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		_, err := u.Approve(context.Background(), userID, requestID, &dto.DecisionRequest{Notes: "all good"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("vanished patient maps the foreign key violation", func(t *testing.T) {
		u, mock := newDecisionTest(t)

		expectDoctorLookup(mock, doctorID, userID)
		mock.ExpectBegin()
		expectRequestLookup(mock, requestID, patientID)
		mock.ExpectExec(`UPDATE "prescription_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "prescriptions"`).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "prescriptions_patient_id_fkey"})
		mock.ExpectRollback()

		_, err := u.Approve(context.Background(), userID, requestID, &dto.DecisionRequest{Notes: "all good"})
		assert.ErrorIs(t, err, ErrPatientNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing doctor profile is rejected before any write", func(t *testing.T) {
		u, mock := newDecisionTest(t)

		mock.ExpectQuery(`SELECT \* FROM "doctors"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := u.Approve(context.Background(), userID, requestID, &dto.DecisionRequest{Notes: "all good"})
		assert.ErrorIs(t, err, ErrDoctorProfileNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeny(t *testing.T) {
	userID := uuid.New()
	doctorID := entity.DoctorID(uuid.New())
	requestID := uuid.New()
	patientID := uuid.New()

	t.Run("stamps the doctor and reasoning", func(t *testing.T) {
		u, mock := newDecisionTest(t)

		expectDoctorLookup(mock, doctorID, userID)
		mock.ExpectBegin()
		expectRequestLookup(mock, requestID, patientID)
		mock.ExpectExec(`UPDATE "prescription_requests" SET`).
			WithArgs(doctorID.String(), "not medically indicated", "denied", sqlmock.AnyArg(), requestID.String(), "new", "info_requested").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := u.Deny(context.Background(), userID, requestID, &dto.DecisionRequest{Notes: "not medically indicated"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("requires notes before touching the database", func(t *testing.T) {
		u, mock := newDecisionTest(t)

		err := u.Deny(context.Background(), userID, requestID, &dto.DecisionRequest{Notes: "   "})
		assert.ErrorIs(t, err, ErrNotesRequired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
