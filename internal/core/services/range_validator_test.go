package services_test

import (
	"testing"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNumberInRange(t *testing.T) {
	cb := &domain.Checkbook{Number: "CB-1", IsActive: true, RangeFrom: 100, RangeTo: 150}

	tests := []struct {
		number  string
		want    int64
		wantErr error
	}{
		{"100", 100, nil},
		{"150", 150, nil},
		{" 0125 ", 125, nil},
		{"99", 99, apperrors.ErrOutOfRange},
		{"151", 151, apperrors.ErrOutOfRange},
		{"-120", -120, apperrors.ErrOutOfRange},
		{"120.0", 0, apperrors.ErrOutOfRange},
		{"1.2e2", 0, apperrors.ErrOutOfRange},
		{"NaN", 0, apperrors.ErrOutOfRange},
		{"99999999999999999999", 0, apperrors.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			n, err := services.ValidateNumberInRange(cb, tt.number)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestValidateNumberInRange_InactiveFirst(t *testing.T) {
	cb := &domain.Checkbook{Number: "CB-1", IsActive: false, RangeFrom: 1, RangeTo: 10}

	_, err := services.ValidateNumberInRange(cb, "5")
	assert.ErrorIs(t, err, apperrors.ErrInactive)

	_, err = services.ValidateNumberInRange(cb, "500")
	assert.ErrorIs(t, err, apperrors.ErrInactive)
}

func TestCanonicalCheckNumber(t *testing.T) {
	n, err := services.ParseCheckNumber("000042")
	require.NoError(t, err)
	assert.Equal(t, "42", services.CanonicalCheckNumber(n))
}
