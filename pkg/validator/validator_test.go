package validator

import (
	"testing"

	"doctor-portal-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() dto.RegisterDoctorRequest {
	return dto.RegisterDoctorRequest{
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

func TestValidateRegisterDoctorRequest(t *testing.T) {
	cv := NewValidator()

	t.Run("valid request passes", func(t *testing.T) {
		req := validRegisterRequest()
		assert.NoError(t, cv.Validate(&req))
	})

	t.Run("missing license number", func(t *testing.T) {
		req := validRegisterRequest()
		req.LicenseNumber = ""
		err := cv.Validate(&req)
		require.Error(t, err)

		fields := cv.FormatValidationErrors(err)
		assert.Contains(t, fields, "license_number")
	})

	t.Run("bad email", func(t *testing.T) {
		req := validRegisterRequest()
		req.Email = "not-an-email"
		err := cv.Validate(&req)
		require.Error(t, err)

		fields := cv.FormatValidationErrors(err)
		assert.Equal(t, "email must be a valid email address", fields["email"])
	})

	t.Run("short password", func(t *testing.T) {
		req := validRegisterRequest()
		req.Password = "short"
		err := cv.Validate(&req)
		require.Error(t, err)

		fields := cv.FormatValidationErrors(err)
		assert.Contains(t, fields["password"], "at least 8")
	})

	t.Run("missing address fields", func(t *testing.T) {
		req := validRegisterRequest()
		req.Address.City = ""
		err := cv.Validate(&req)
		require.Error(t, err)

		fields := cv.FormatValidationErrors(err)
		assert.Contains(t, fields, "city")
	})
}
