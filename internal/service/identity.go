package service

import (
	"strings"
	"time"

	"doctor-portal-api/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityRef is the requester reference carried by a prescription request:
// either a patient id, a bare user id, or (for broken legacy rows) neither.
type IdentityRef struct {
	PatientID *uuid.UUID
	UserID    *uuid.UUID
}

// ResolvedIdentity is the patient/user pair a reference resolves to. Both
// values are zero structs (never nil) when a lookup has no match, so callers
// can render placeholders without nil checks.
type ResolvedIdentity struct {
	Patient entity.Patient
	User    entity.User
}

// ResolveIdentity resolves a requester reference against batch-preloaded
// maps. It performs no I/O.
//
// Resolution order: a patient id wins, and its user_id is chased into the
// user map. A bare user id resolves the user directly and scans the patient
// map for a profile pointing back at that user (best effort; patient stays
// empty when there is none).
func ResolveIdentity(ref IdentityRef, patients map[uuid.UUID]entity.Patient, users map[uuid.UUID]entity.User) ResolvedIdentity {
	var resolved ResolvedIdentity

	switch {
	case ref.PatientID != nil:
		if patient, ok := patients[*ref.PatientID]; ok {
			resolved.Patient = patient
			if user, ok := users[patient.UserID]; ok {
				resolved.User = user
			}
		} else if ref.UserID != nil {
			if user, ok := users[*ref.UserID]; ok {
				resolved.User = user
			}
		}
	case ref.UserID != nil:
		if user, ok := users[*ref.UserID]; ok {
			resolved.User = user
		}
		for _, patient := range patients {
			if patient.UserID == *ref.UserID {
				resolved.Patient = patient
				break
			}
		}
	}

	return resolved
}

// Age returns the number of full calendar years between birthDate and today,
// or nil when the birth date is missing or lies in the future. It never
// returns zero for an unknown date and never a negative number.
func Age(birthDate *time.Time, today time.Time) *int {
	if birthDate == nil {
		return nil
	}

	years := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		years--
	}
	if years < 0 {
		return nil
	}
	return &years
}

// DisplayName joins first and last name with a single space and trims the
// result; fallback is returned when both parts are empty.
func DisplayName(firstName, lastName *string, fallback string) string {
	var first, last string
	if firstName != nil {
		first = *firstName
	}
	if lastName != nil {
		last = *lastName
	}
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" {
		return fallback
	}
	return name
}
