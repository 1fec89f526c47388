package booking

import (
	"errors"
	"fmt"

	"chairbook/database"
	"chairbook/services/availability"
)

var (
	// ErrSlotUnavailable means the requested start overlaps another booking or
	// falls outside business hours.
	ErrSlotUnavailable = errors.New("requested time is not available")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("not allowed to modify this appointment")
	ErrValidation      = errors.New("invalid appointment request")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// translate maps repository and availability errors onto the booking sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	switch availability.KindOf(err) {
	case availability.KindServiceNotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case availability.KindValidation, availability.KindInvalidDate:
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return err
}
