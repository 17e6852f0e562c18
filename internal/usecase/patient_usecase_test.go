package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"doctor-portal-api/internal/repository"
)

func newPatientTest(t *testing.T) (PatientUsecase, sqlmock.Sqlmock) {
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

	u := NewPatientUsecase(db, log, repository.NewPatientRepository(), repository.NewUserRepository())
	return u, mock
}

func TestGetPatientNames(t *testing.T) {
	knownID := uuid.New()
	unknownID := uuid.New()
	userID := uuid.New()

	t.Run("resolves known patients and falls back for the rest", func(t *testing.T) {
		u, mock := newPatientTest(t)

		mock.ExpectQuery(`SELECT \* FROM "patients"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
				AddRow(knownID.String(), userID.String()))
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).
				AddRow(userID.String(), "Jane", "Doe"))

		names, err := u.GetPatientNames(context.Background(), []uuid.UUID{knownID, unknownID})
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", names[knownID.String()])
		assert.Equal(t, "Unknown", names[unknownID.String()])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch skips the database", func(t *testing.T) {
		u, mock := newPatientTest(t)

		names, err := u.GetPatientNames(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, names)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
