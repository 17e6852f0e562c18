package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrescriptionRequestStatus(t *testing.T) {
	t.Run("open statuses", func(t *testing.T) {
		assert.True(t, (&PrescriptionRequest{Status: RequestStatusNew}).IsOpen())
		assert.True(t, (&PrescriptionRequest{Status: RequestStatusInfoRequested}).IsOpen())
		assert.False(t, (&PrescriptionRequest{Status: RequestStatusApproved}).IsOpen())
		assert.False(t, (&PrescriptionRequest{Status: RequestStatusDenied}).IsOpen())
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.True(t, (&PrescriptionRequest{Status: RequestStatusApproved}).IsTerminal())
		assert.True(t, (&PrescriptionRequest{Status: RequestStatusDenied}).IsTerminal())
		assert.False(t, (&PrescriptionRequest{Status: RequestStatusNew}).IsTerminal())
	})
}

func TestPrescriptionRequestDisplayID(t *testing.T) {
	t.Run("external id preferred", func(t *testing.T) {
		r := &PrescriptionRequest{ID: uuid.New(), ExternalID: "REQ-1042"}
		assert.Equal(t, "REQ-1042", r.DisplayID())
	})

	t.Run("falls back to id prefix", func(t *testing.T) {
		id := uuid.MustParse("7b1d2f7c-1111-2222-3333-444455556666")
		r := &PrescriptionRequest{ID: id}
		assert.Equal(t, "7b1d2f7c", r.DisplayID())
	})
}

func TestDoctorIDRoundTrip(t *testing.T) {
	id := DoctorID(uuid.New())

	value, err := id.Value()
	require.NoError(t, err)

	var scanned DoctorID
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, id, scanned)

	t.Run("scan bytes", func(t *testing.T) {
		var fromBytes DoctorID
		require.NoError(t, fromBytes.Scan([]byte(id.String())))
		assert.Equal(t, id, fromBytes)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var bad DoctorID
		assert.Error(t, bad.Scan(42))
		assert.Error(t, bad.Scan("not-a-uuid"))
	})

	t.Run("zero check", func(t *testing.T) {
		var zero DoctorID
		assert.True(t, zero.IsZero())
		assert.False(t, id.IsZero())
	})
}
