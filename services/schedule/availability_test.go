package schedule

import (
	"testing"
	"time"

	"consulta/models"
)

func weekdayHours() models.WorkingHours {
	return models.WorkingHours{
		StartTime: "09:00",
		EndTime:   "18:00",
		WorkingDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}

func at(date string, hour, minute int) time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

func TestIsNonWorkingDay(t *testing.T) {
	wh := weekdayHours()
	// 2024-06-15 is a Saturday.
	if !IsNonWorkingDay(at("2024-06-15", 10, 0), wh) {
		t.Error("expected Saturday to be a non-working day")
	}
	// 2024-06-17 is a Monday.
	if IsNonWorkingDay(at("2024-06-17", 10, 0), wh) {
		t.Error("expected Monday to be a working day")
	}
}

func TestIsOutsideWorkingHours(t *testing.T) {
	wh := weekdayHours()
	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"before opening", at("2024-06-17", 8, 59), true},
		{"at opening", at("2024-06-17", 9, 0), false},
		{"mid-day", at("2024-06-17", 13, 30), false},
		{"just before closing", at("2024-06-17", 17, 59), false},
		{"at closing", at("2024-06-17", 18, 0), true},
		{"evening", at("2024-06-17", 21, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOutsideWorkingHours(tt.t, wh); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFindDayOffFullDay(t *testing.T) {
	records := []models.DayOffRecord{
		{ID: "r1", Date: "2024-12-25", Reason: "Holiday", Category: models.DayOffFull},
	}
	for _, clock := range [][2]int{{0, 0}, {12, 0}, {23, 58}} {
		if got := FindDayOff(at("2024-12-25", clock[0], clock[1]), records); got == nil {
			t.Errorf("expected match at %02d:%02d", clock[0], clock[1])
		}
	}
	if got := FindDayOff(at("2024-12-26", 10, 0), records); got != nil {
		t.Error("expected no match on the following day")
	}
}

func TestFindDayOffMorning(t *testing.T) {
	records := []models.DayOffRecord{
		{ID: "r1", Date: "2024-07-01", Category: models.DayOffMorning},
	}
	if got := FindDayOff(at("2024-07-01", 11, 59), records); got == nil {
		t.Error("expected 11:59 to match a morning day-off")
	}
	if got := FindDayOff(at("2024-07-01", 12, 0), records); got != nil {
		t.Error("expected 12:00 not to match a morning day-off")
	}
}

func TestFindDayOffCustomWindow(t *testing.T) {
	records := []models.DayOffRecord{
		{ID: "r1", Date: "2024-07-01", Category: models.DayOffCustom, CustomStart: "14:00", CustomEnd: "16:00"},
	}
	if got := FindDayOff(at("2024-07-01", 10, 0), records); got != nil {
		t.Error("expected 10:00 to fall outside the custom window")
	}
	if got := FindDayOff(at("2024-07-01", 15, 0), records); got == nil {
		t.Error("expected 15:00 to fall inside the custom window")
	}
	// Half-open: the exact end boundary is free again.
	if got := FindDayOff(at("2024-07-01", 16, 0), records); got != nil {
		t.Error("expected 16:00 to fall outside the custom window")
	}
}

func TestCheckPlacementPrecedence(t *testing.T) {
	wh := weekdayHours()
	// 2024-12-25 is a Wednesday; the day-off must win over the hours check
	// even outside the window.
	records := []models.DayOffRecord{
		{ID: "r1", Date: "2024-12-25", Reason: "Holiday", Category: models.DayOffFull},
	}
	rejection := CheckPlacement(at("2024-12-25", 20, 0), wh, records)
	if rejection == nil {
		t.Fatal("expected a rejection")
	}
	if rejection.Kind != RejectDayOff {
		t.Errorf("expected day-off rejection, got %s", rejection.Kind)
	}
	if rejection.Reason != "Holiday" {
		t.Errorf("expected reason Holiday, got %q", rejection.Reason)
	}
}

func TestCheckPlacementNonWorkingDay(t *testing.T) {
	rejection := CheckPlacement(at("2024-06-15", 10, 0), weekdayHours(), nil)
	if rejection == nil {
		t.Fatal("expected a rejection")
	}
	if rejection.Kind != RejectNonWorkingDay {
		t.Errorf("expected non-working-day rejection, got %s", rejection.Kind)
	}
}

func TestCheckPlacementOutsideHours(t *testing.T) {
	rejection := CheckPlacement(at("2024-06-17", 8, 0), weekdayHours(), nil)
	if rejection == nil {
		t.Fatal("expected a rejection")
	}
	if rejection.Kind != RejectOutsideHours {
		t.Errorf("expected outside-hours rejection, got %s", rejection.Kind)
	}
}

func TestCheckPlacementAccepted(t *testing.T) {
	if rejection := CheckPlacement(at("2024-06-17", 10, 0), weekdayHours(), nil); rejection != nil {
		t.Fatalf("expected acceptance, got %v", rejection)
	}
}
