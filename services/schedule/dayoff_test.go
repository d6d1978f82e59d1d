package schedule

import (
	"testing"

	"consulta/models"
)

func TestExpandDayOffSingleDay(t *testing.T) {
	records := ExpandDayOff("s1", models.DayOffSetting{
		FromDate:    "2024-12-25",
		ToDate:      "2024-12-25",
		Description: "Holiday",
	})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Date != "2024-12-25" {
		t.Errorf("expected date 2024-12-25, got %s", r.Date)
	}
	if r.Category != models.DayOffFull {
		t.Errorf("expected category full, got %s", r.Category)
	}
	if r.Reason != "Holiday" {
		t.Errorf("expected reason Holiday, got %s", r.Reason)
	}
}

func TestExpandDayOffWeek(t *testing.T) {
	records := ExpandDayOff("s1", models.DayOffSetting{
		FromDate:    "2024-08-05",
		ToDate:      "2024-08-11",
		Description: "Vacation",
	})
	if len(records) != 7 {
		t.Fatalf("expected 7 records, got %d", len(records))
	}
	want := []string{
		"2024-08-05", "2024-08-06", "2024-08-07", "2024-08-08",
		"2024-08-09", "2024-08-10", "2024-08-11",
	}
	seen := make(map[string]bool)
	for i, r := range records {
		if r.Date != want[i] {
			t.Errorf("record %d: expected date %s, got %s", i, want[i], r.Date)
		}
		if seen[r.Date] {
			t.Errorf("duplicate date %s", r.Date)
		}
		seen[r.Date] = true
	}
}

func TestExpandDayOffCrossesMonthBoundary(t *testing.T) {
	records := ExpandDayOff("s1", models.DayOffSetting{
		FromDate: "2024-01-30",
		ToDate:   "2024-02-02",
	})
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	if records[2].Date != "2024-02-01" {
		t.Errorf("expected third record on 2024-02-01, got %s", records[2].Date)
	}
}

func TestExpandDayOffInvertedRange(t *testing.T) {
	records := ExpandDayOff("s1", models.DayOffSetting{
		FromDate: "2024-08-11",
		ToDate:   "2024-08-05",
	})
	if len(records) != 0 {
		t.Fatalf("expected no records for inverted range, got %d", len(records))
	}
}

func TestExpandDayOffUnparseableDates(t *testing.T) {
	records := ExpandDayOff("s1", models.DayOffSetting{
		FromDate: "not-a-date",
		ToDate:   "2024-08-05",
	})
	if len(records) != 0 {
		t.Fatalf("expected no records for bad dates, got %d", len(records))
	}
}

func TestExpandDayOffStableIDs(t *testing.T) {
	setting := models.DayOffSetting{FromDate: "2024-08-05", ToDate: "2024-08-06"}
	first := ExpandDayOff("s1", setting)
	second := ExpandDayOff("s1", setting)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("record %d: id changed across expansions: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
	if first[0].ID == first[1].ID {
		t.Error("records for different days share an id")
	}
}

func TestCategoryInterval(t *testing.T) {
	tests := []struct {
		name      string
		record    models.DayOffRecord
		wantStart int
		wantEnd   int
	}{
		{"full", models.DayOffRecord{Category: models.DayOffFull}, 0, 24 * 60},
		{"morning", models.DayOffRecord{Category: models.DayOffMorning}, 0, 12 * 60},
		{"afternoon", models.DayOffRecord{Category: models.DayOffAfternoon}, 12 * 60, 23*60 + 59},
		{"custom", models.DayOffRecord{Category: models.DayOffCustom, CustomStart: "14:00", CustomEnd: "16:00"}, 14 * 60, 16 * 60},
		{"custom missing bounds", models.DayOffRecord{Category: models.DayOffCustom}, 0, 0},
		{"unknown", models.DayOffRecord{Category: "weird"}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := categoryInterval(tt.record)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("expected [%d, %d), got [%d, %d)", tt.wantStart, tt.wantEnd, start, end)
			}
		})
	}
}
