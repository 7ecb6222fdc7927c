package booking

import (
	"strings"

	"shareit/internal/pkg/errs"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is persisted for historical rows but no exposed
	// operation produces it.
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	}
	return false
}

// StateFilter scopes a booking listing relative to the current time and status.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

var ErrUnknownStateFilter = errs.New("unknown state filter")

func ParseStateFilter(s string) (StateFilter, error) {
	switch StateFilter(strings.ToUpper(s)) {
	case FilterAll:
		return FilterAll, nil
	case FilterCurrent:
		return FilterCurrent, nil
	case FilterPast:
		return FilterPast, nil
	case FilterFuture:
		return FilterFuture, nil
	case FilterWaiting:
		return FilterWaiting, nil
	case FilterRejected:
		return FilterRejected, nil
	default:
		return "", errs.Mark(errs.Newf("unknown state: %s", s), ErrUnknownStateFilter)
	}
}
