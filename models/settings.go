package models

import "time"

// Setting types stored in the remote settings collection.
const (
	SettingTypeDayOff       = "day_off"
	SettingTypeWorkingHours = "working_hours"
)

// Setting is one entry of the heterogeneous settings collection. The Type
// tag says which payload pointer is populated.
type Setting struct {
	ID           string         `bson:"id" json:"id"`
	Type         string         `bson:"type" json:"type"`
	DayOff       *DayOffSetting `bson:"dayOff,omitempty" json:"dayOff,omitempty"`
	WorkingHours *WorkingHours  `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// WorkingHours is the recurring weekly window during which sessions may be
// scheduled. Times are "HH:MM"; weekdays follow time.Weekday (0 = Sunday).
type WorkingHours struct {
	StartTime   string         `bson:"startTime" json:"startTime"` // e.g., "09:00"
	EndTime     string         `bson:"endTime" json:"endTime"`     // e.g., "18:00"
	WorkingDays []time.Weekday `bson:"workingDays" json:"workingDays"`
}

// IsWorkingDay reports whether the given weekday is a working day.
func (wh *WorkingHours) IsWorkingDay(day time.Weekday) bool {
	for _, d := range wh.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// DayOffSetting is the remote representation of a day-off period: an
// inclusive whole-day date range with a description.
type DayOffSetting struct {
	FromDate    string `bson:"fromDate" json:"fromDate"` // e.g., "2025-08-04"
	ToDate      string `bson:"toDate" json:"toDate"`     // inclusive
	Description string `bson:"description" json:"description"`
}

// Day-off categories. Remote settings only produce "full"; the partial-day
// categories survive from the legacy local-storage format.
const (
	DayOffFull      = "full"
	DayOffMorning   = "morning"
	DayOffAfternoon = "afternoon"
	DayOffCustom    = "custom"
)

// DayOffRecord is one concrete unavailable day, materialized from a
// DayOffSetting range or read from the legacy local format.
type DayOffRecord struct {
	ID          string `bson:"id" json:"id"`
	Date        string `bson:"date" json:"date"` // e.g., "2025-08-04"
	Reason      string `bson:"reason" json:"reason"`
	Category    string `bson:"category" json:"category"`
	CustomStart string `bson:"customStart,omitempty" json:"customStart,omitempty"` // "HH:MM", custom only
	CustomEnd   string `bson:"customEnd,omitempty" json:"customEnd,omitempty"`     // "HH:MM", custom only
}
