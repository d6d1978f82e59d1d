package schedule

import (
	"fmt"
	"time"

	"consulta/models"
)

// minuteOfDay returns the instant's time-of-day in minutes, in the
// instant's own location.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsNonWorkingDay reports whether the instant falls on a weekday outside
// the configured working days.
func IsNonWorkingDay(t time.Time, wh models.WorkingHours) bool {
	return !wh.IsWorkingDay(t.Weekday())
}

// IsOutsideWorkingHours reports whether the instant's time-of-day is
// earlier than the window start or not earlier than the window end. Only
// meaningful for timed (non-all-day) placements.
func IsOutsideWorkingHours(t time.Time, wh models.WorkingHours) bool {
	start, err := parseClock(wh.StartTime)
	if err != nil {
		return false
	}
	end, err := parseClock(wh.EndTime)
	if err != nil {
		return false
	}
	tod := minuteOfDay(t)
	return tod < start || tod >= end
}

// FindDayOff returns the day-off record whose date matches the instant's
// calendar day and whose category interval contains the instant's
// time-of-day, or nil. Intervals are half-open so a placement at an exact
// end boundary is allowed.
func FindDayOff(t time.Time, records []models.DayOffRecord) *models.DayOffRecord {
	date := t.Format(dateLayout)
	tod := minuteOfDay(t)
	for i := range records {
		if records[i].Date != date {
			continue
		}
		start, end := categoryInterval(records[i])
		if tod >= start && tod < end {
			return &records[i]
		}
	}
	return nil
}

// CheckPlacement runs the three availability checks against the candidate
// instant. The day-off check goes first because it carries the most
// specific reason, then the weekday check, then the working-hours window.
// A nil result means the placement is allowed.
func CheckPlacement(t time.Time, wh models.WorkingHours, dayOffs []models.DayOffRecord) *RejectionError {
	if record := FindDayOff(t, dayOffs); record != nil {
		return &RejectionError{Kind: RejectDayOff, Reason: record.Reason}
	}
	if IsNonWorkingDay(t, wh) {
		return &RejectionError{Kind: RejectNonWorkingDay, Reason: "the selected day is not a working day"}
	}
	if IsOutsideWorkingHours(t, wh) {
		return &RejectionError{
			Kind:   RejectOutsideHours,
			Reason: fmt.Sprintf("sessions can only be scheduled between %s and %s", wh.StartTime, wh.EndTime),
		}
	}
	return nil
}
