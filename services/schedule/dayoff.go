package schedule

import (
	"fmt"
	"time"

	"consulta/models"
)

const dateLayout = "2006-01-02"

// Minute boundaries of the partial-day categories.
const (
	morningEndMinute   = 12 * 60 // morning is [00:00, 12:00)
	afternoonEndMinute = 23*60 + 59
	endOfDayMinute     = 24 * 60
)

// ExpandDayOff materializes one full-day DayOffRecord per calendar day of
// the setting's inclusive [FromDate, ToDate] range. An unparseable or
// inverted range yields no records. Record ids are derived from the setting
// id plus the date so they stay stable across re-expansions.
func ExpandDayOff(settingID string, dayOff models.DayOffSetting) []models.DayOffRecord {
	from, err := time.Parse(dateLayout, dayOff.FromDate)
	if err != nil {
		return nil
	}
	to, err := time.Parse(dateLayout, dayOff.ToDate)
	if err != nil {
		return nil
	}

	var records []models.DayOffRecord
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(dateLayout)
		records = append(records, models.DayOffRecord{
			ID:       fmt.Sprintf("%s:%s", settingID, dateStr),
			Date:     dateStr,
			Reason:   dayOff.Description,
			Category: models.DayOffFull,
		})
	}
	return records
}

// categoryInterval returns the half-open [start, end) minute window a
// record blocks on its date. Unknown categories block nothing.
func categoryInterval(record models.DayOffRecord) (int, int) {
	switch record.Category {
	case models.DayOffFull:
		return 0, endOfDayMinute
	case models.DayOffMorning:
		return 0, morningEndMinute
	case models.DayOffAfternoon:
		return morningEndMinute, afternoonEndMinute
	case models.DayOffCustom:
		start, err := parseClock(record.CustomStart)
		if err != nil {
			return 0, 0
		}
		end, err := parseClock(record.CustomEnd)
		if err != nil {
			return 0, 0
		}
		return start, end
	default:
		return 0, 0
	}
}

// parseClock parses an "HH:MM" clock value into minutes from midnight.
func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
