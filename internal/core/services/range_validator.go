package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
)

// ValidateNumberInRange checks a candidate check number against the checkbook's active flag
// and reserved interval [RangeFrom, RangeTo]. It returns the parsed number.
// Uniqueness within the checkbook is the caller's job.
func ValidateNumberInRange(cb *domain.Checkbook, number string) (int64, error) {
	if !cb.IsActive {
		return 0, fmt.Errorf("%w: checkbook %s", apperrors.ErrInactive, cb.Number)
	}
	n, err := ParseCheckNumber(number)
	if err != nil {
		return 0, err
	}
	if n < cb.RangeFrom || n > cb.RangeTo {
		return n, fmt.Errorf("%w: %d not in [%d, %d]", apperrors.ErrOutOfRange, n, cb.RangeFrom, cb.RangeTo)
	}
	return n, nil
}

// ParseCheckNumber parses a check number as a base-10 integer. Anything else,
// including fractions and exponents, is a range violation.
func ParseCheckNumber(number string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(number), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", apperrors.ErrOutOfRange, number)
	}
	return n, nil
}

// CanonicalCheckNumber renders a parsed number the way it is stored, so "007" and "7" collide.
func CanonicalCheckNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}
