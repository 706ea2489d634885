package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidDuration reports a slot duration that should have been
	// rejected by request validation.
	ErrInvalidDuration = errors.New("duration must be >= 15 and a multiple of 5 minutes")

	// ErrDataIntegrity is matched by every *DataIntegrityError.
	ErrDataIntegrity = errors.New("calendar data integrity violation")
)

// ValidationError carries every problem found in the raw request parameters.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "Validation failed: " + strings.Join(e.Errors, "; ")
}

// DataIntegrityError reports a calendar event whose times cannot be used.
type DataIntegrityError struct {
	Date      string
	StartTime string
	EndTime   string
	Reason    string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("%s: %s (start: %s, end: %s)", e.Reason, e.Date, e.StartTime, e.EndTime)
}

func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}

// CheckDuration enforces the slot duration contract.
func CheckDuration(d time.Duration) error {
	if d < MinDurationMinutes*time.Minute || d%(DurationStepMinutes*time.Minute) != 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidDuration, d)
	}
	return nil
}
