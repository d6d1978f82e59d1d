package schedule

import (
	"errors"
	"fmt"
)

// Rejection kinds, in check order: a day-off match wins over the weekday
// check, which wins over the working-hours window.
const (
	RejectDayOff        = "dayOff"
	RejectNonWorkingDay = "nonWorkingDay"
	RejectOutsideHours  = "outsideWorkingHours"
)

// RejectionError is a placement refused by the availability rules. It is an
// expected validation outcome, not a failure: the Reason is shown to the
// user as-is.
type RejectionError struct {
	Kind   string
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// ErrUnresolvedDrop marks a drop gesture whose end instant the calendar
// surface failed to compute. Such drops are reverted without any
// availability check.
var ErrUnresolvedDrop = errors.New("drop has no resolved end time")
