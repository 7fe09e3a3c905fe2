package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmissionDefaults(t *testing.T) {
	s, err := NewSubmission("Asha", "a@x.com", "9876543210", 0, "", "")
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, DefaultAmount, s.Amount)
	assert.Equal(t, StatusPending, s.Status)
	assert.Equal(t, "unknown", s.Source)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Empty(t, s.RazorpayOrderID)
	assert.Empty(t, s.RazorpayPaymentID)
}

func TestNewSubmissionUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := NewSubmission("Asha", "a@x.com", "9876543210", 7999, StatusInitiated, "retail")
		require.NoError(t, err)
		assert.False(t, seen[s.ID], "id %s generated twice", s.ID)
		seen[s.ID] = true
	}
}

func TestNewSubmissionRequiredFields(t *testing.T) {
	cases := []struct {
		name                   string
		fullName, email, phone string
	}{
		{"missing name", "", "a@x.com", "9876543210"},
		{"missing email", "Asha", "", "9876543210"},
		{"missing phone", "Asha", "a@x.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSubmission(tc.fullName, tc.email, tc.phone, 7999, StatusInitiated, "retail")
			assert.Error(t, err)
		})
	}
}

func TestNewSubmissionRejectsUnknownStatus(t *testing.T) {
	_, err := NewSubmission("Asha", "a@x.com", "9876543210", 7999, "refunded", "retail")
	assert.Error(t, err)
}

func TestStatusSets(t *testing.T) {
	for _, s := range []string{StatusInitiated, StatusPending, StatusSuccess, StatusFailed, StatusCancelled, StatusError} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("unknown-status"))

	assert.False(t, IsTerminal(StatusInitiated))
	assert.False(t, IsTerminal(StatusPending))
	for _, s := range []string{StatusSuccess, StatusFailed, StatusCancelled, StatusError} {
		assert.True(t, IsTerminal(s), s)
	}
}
