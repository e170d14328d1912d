package analytics

import "errors"

var (
	// ErrInvalidPeriod is returned when a month is outside 1..12.
	ErrInvalidPeriod = errors.New("invalid period: month must be between 1 and 12")
	// ErrInvalidLimit is returned when a result limit is not positive.
	ErrInvalidLimit = errors.New("invalid limit: must be greater than zero")
	// ErrInvalidWindow is returned when a trend window is not positive.
	ErrInvalidWindow = errors.New("invalid window: days must be greater than zero")
)

// ValidatePeriod checks month and returns ErrInvalidPeriod when it is out of range.
func ValidatePeriod(month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidPeriod
	}
	return nil
}
