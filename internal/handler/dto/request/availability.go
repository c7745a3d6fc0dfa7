package request

import (
	"errors"
	"time"
)

var (
	ErrMissingDateTimes = errors.New("start_date_time and end_date_time are required")
	ErrUnparsableTime   = errors.New("start_date_time and end_date_time must be ISO-8601 timestamps")
)

type CheckAvailabilityRequest struct {
	StartDateTime string `json:"start_date_time"`
	EndDateTime   string `json:"end_date_time"`
}

func DecodeCheckAvailability(body []byte) (CheckAvailabilityRequest, error) {
	var req CheckAvailabilityRequest
	if err := unwrap(body, &req); err != nil {
		return CheckAvailabilityRequest{}, err
	}
	return req, nil
}

func (r CheckAvailabilityRequest) Validate() error {
	if r.StartDateTime == "" || r.EndDateTime == "" {
		return ErrMissingDateTimes
	}
	return nil
}

func (r CheckAvailabilityRequest) Times() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, r.StartDateTime)
	if err != nil {
		return time.Time{}, time.Time{}, ErrUnparsableTime
	}
	end, err = time.Parse(time.RFC3339, r.EndDateTime)
	if err != nil {
		return time.Time{}, time.Time{}, ErrUnparsableTime
	}
	return start, end, nil
}
