package domain

import (
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is the only accepted record timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

var ErrTimestampFormat = errors.New("invalid timestamp format")

func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimestampFormat, s)
	}
	return t, nil
}
