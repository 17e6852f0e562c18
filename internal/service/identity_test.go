package service

import (
	"testing"
	"time"

	"doctor-portal-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func TestAge(t *testing.T) {
	birth := date(2000, time.June, 15)

	t.Run("day before birthday", func(t *testing.T) {
		age := Age(&birth, date(2024, time.June, 14))
		require.NotNil(t, age)
		assert.Equal(t, 23, *age)
	})

	t.Run("on birthday", func(t *testing.T) {
		age := Age(&birth, date(2024, time.June, 15))
		require.NotNil(t, age)
		assert.Equal(t, 24, *age)
	})

	t.Run("missing birth date", func(t *testing.T) {
		assert.Nil(t, Age(nil, date(2024, time.June, 15)))
	})

	t.Run("birth date in the future", func(t *testing.T) {
		future := date(2030, time.January, 1)
		assert.Nil(t, Age(&future, date(2024, time.June, 15)))
	})

	t.Run("newborn is zero not nil", func(t *testing.T) {
		newborn := date(2024, time.March, 1)
		age := Age(&newborn, date(2024, time.June, 15))
		require.NotNil(t, age)
		assert.Equal(t, 0, *age)
	})
}

func TestDisplayName(t *testing.T) {
	t.Run("both names", func(t *testing.T) {
		assert.Equal(t, "Jane Doe", DisplayName(strPtr("Jane"), strPtr("Doe"), "Unknown"))
	})

	t.Run("first name only", func(t *testing.T) {
		assert.Equal(t, "Jane", DisplayName(strPtr("Jane"), nil, "Unknown"))
	})

	t.Run("last name only", func(t *testing.T) {
		assert.Equal(t, "Doe", DisplayName(nil, strPtr("Doe"), "Unknown"))
	})

	t.Run("whitespace collapses to fallback", func(t *testing.T) {
		assert.Equal(t, "Unknown", DisplayName(strPtr("  "), strPtr(""), "Unknown"))
	})

	t.Run("nil names fall back", func(t *testing.T) {
		assert.Equal(t, "Unknown", DisplayName(nil, nil, "Unknown"))
	})
}

func TestResolveIdentity(t *testing.T) {
	userID := uuid.New()
	patientID := uuid.New()
	bareUserID := uuid.New()

	users := map[uuid.UUID]entity.User{
		userID:     {ID: userID, Email: "patient@example.com", FirstName: strPtr("Max"), LastName: strPtr("Muster")},
		bareUserID: {ID: bareUserID, Email: "legacy@example.com", FirstName: strPtr("Lena")},
	}
	patients := map[uuid.UUID]entity.Patient{
		patientID: {ID: patientID, UserID: userID},
	}

	t.Run("patient reference wins", func(t *testing.T) {
		resolved := ResolveIdentity(IdentityRef{PatientID: &patientID}, patients, users)
		assert.Equal(t, patientID, resolved.Patient.ID)
		assert.Equal(t, "patient@example.com", resolved.User.Email)
	})

	t.Run("bare user reference", func(t *testing.T) {
		resolved := ResolveIdentity(IdentityRef{UserID: &bareUserID}, patients, users)
		assert.Equal(t, uuid.Nil, resolved.Patient.ID)
		assert.Equal(t, "legacy@example.com", resolved.User.Email)
	})

	t.Run("bare user with matching patient profile", func(t *testing.T) {
		resolved := ResolveIdentity(IdentityRef{UserID: &userID}, patients, users)
		assert.Equal(t, patientID, resolved.Patient.ID)
		assert.Equal(t, "patient@example.com", resolved.User.Email)
	})

	t.Run("dangling patient id falls back to user id", func(t *testing.T) {
		missing := uuid.New()
		resolved := ResolveIdentity(IdentityRef{PatientID: &missing, UserID: &bareUserID}, patients, users)
		assert.Equal(t, uuid.Nil, resolved.Patient.ID)
		assert.Equal(t, "legacy@example.com", resolved.User.Email)
	})

	t.Run("nothing resolves to zero values", func(t *testing.T) {
		resolved := ResolveIdentity(IdentityRef{}, patients, users)
		assert.Equal(t, uuid.Nil, resolved.Patient.ID)
		assert.Equal(t, uuid.Nil, resolved.User.ID)
	})
}
