package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"doctor-portal-api/config"
	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/repository"
	"doctor-portal-api/pkg/jwt"

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

func TestPrimaryRole(t *testing.T) {
	t.Run("doctor wins", func(t *testing.T) {
		roles := []entity.UserRole{
			{Role: entity.RoleAdmin},
			{Role: entity.RoleDoctor},
		}
		assert.Equal(t, entity.RoleDoctor, primaryRole(roles))
	})

	t.Run("admin over patient", func(t *testing.T) {
		roles := []entity.UserRole{
			{Role: entity.RolePatient},
			{Role: entity.RoleAdmin},
		}
		assert.Equal(t, entity.RoleAdmin, primaryRole(roles))
	})

	t.Run("no roles", func(t *testing.T) {
		assert.Equal(t, "", primaryRole(nil))
	})
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_doctors_license_number"}

	assert.True(t, isDuplicateKeyError(dup, "license_number"))
	assert.False(t, isDuplicateKeyError(dup, "email"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert: %w", dup), "license_number"))
	assert.False(t, isDuplicateKeyError(errors.New("plain error"), "license_number"))
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_prescriptions_doctor_id"}

	assert.True(t, isForeignKeyError(fk, "doctor_id"))
	assert.False(t, isForeignKeyError(fk, "patient_id"))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "fk_prescriptions_doctor_id"}, "doctor_id"))
}

func newAuthTest(t *testing.T) (AuthUsecase, sqlmock.Sqlmock) {
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

	u := NewAuthUsecase(
		db,
		log,
		repository.NewUserRepository(),
		repository.NewUserRoleRepository(),
		repository.NewDoctorRepository(),
		repository.NewDoctorApprovalRequestRepository(),
		&stubAuditService{},
		jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: 15 * time.Minute, RefreshExpiry: 24 * time.Hour}),
		redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"}),
	)
	return u, mock
}

func registerRequest() *dto.RegisterDoctorRequest {
	return &dto.RegisterDoctorRequest{
		Email:         "doc@example.com",
		Password:      "supersecret",
		FirstName:     "Jane",
		LastName:      "Doe",
		LicenseNumber: "DE-12345",
		PhoneNumber:   "+4915112345678",
		Address: dto.AddressRequest{
			Street:     "Hauptstr. 1",
			City:       "Berlin",
			PostalCode: "10115",
			Country:    "DE",
		},
	}
}

func TestRegisterDoctor(t *testing.T) {
	t.Run("creates an inactive account pending approval", func(t *testing.T) {
		u, mock := newAuthTest(t)

		userID := uuid.New()
		doctorID := uuid.New()

		mock.ExpectBegin()
		// The account must not be able to sign in before an admin approves it.
		mock.ExpectQuery(`INSERT INTO "users"`).
			WithArgs("doc@example.com", sqlmock.AnyArg(), "Jane", "Doe", "+4915112345678", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))
		mock.ExpectQuery(`INSERT INTO "user_roles"`).
			WithArgs(userID.String(), "doctor", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery(`SELECT \* FROM "doctors"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "doctors"`).
			WillReturnRows(sqlmock.NewRows([]string{"is_verified", "is_approved", "id"}).
				AddRow(false, false, doctorID.String()))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "doctor_approval_requests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		resp, err := u.RegisterDoctor(context.Background(), registerRequest())
		require.NoError(t, err)
		assert.Equal(t, "doc@example.com", resp.Email)
		require.NotNil(t, resp.IsActive)
		assert.False(t, *resp.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email rolls everything back", func(t *testing.T) {
		u, mock := newAuthTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})
		mock.ExpectRollback()

		_, err := u.RegisterDoctor(context.Background(), registerRequest())
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("taken license number is rejected before the doctor insert", func(t *testing.T) {
		u, mock := newAuthTest(t)

		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))
		mock.ExpectQuery(`INSERT INTO "user_roles"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery(`SELECT \* FROM "doctors"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "license_number"}).
				AddRow(uuid.NewString(), "DE-12345"))
		mock.ExpectRollback()

		_, err := u.RegisterDoctor(context.Background(), registerRequest())
		assert.ErrorIs(t, err, ErrLicenseNumberExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
