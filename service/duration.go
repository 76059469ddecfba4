package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTime = errors.New("invalid time")

// ComputeDuration returns the minute difference between two HH:MM 24-hour
// wall-clock strings. The result is negative when endTime is earlier than
// startTime (an overnight block); no wraparound correction is applied, so
// callers that want non-negative durations must validate ordering themselves.
func ComputeDuration(startTime, endTime string) (int, error) {
	startHour, startMin, err := parseClock(startTime)
	if err != nil {
		return 0, err
	}

	endHour, endMin, err := parseClock(endTime)
	if err != nil {
		return 0, err
	}

	return (endHour*60 + endMin) - (startHour*60 + startMin), nil
}

func parseClock(s string) (hour, min int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w %q: expected HH:MM", ErrInvalidTime, s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q: %v", ErrInvalidTime, s, err)
	}
	min, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q: %v", ErrInvalidTime, s, err)
	}

	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("%w %q: out of range", ErrInvalidTime, s)
	}

	return hour, min, nil
}
