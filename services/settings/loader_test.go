package settings

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"consulta/models"
	"consulta/utils"
)

type fakeSettingRepo struct {
	settings []models.Setting
	err      error
	getAlls  int
	created  []models.Setting
	deleted  []string
}

func (f *fakeSettingRepo) Create(ctx context.Context, setting models.Setting) error {
	f.created = append(f.created, setting)
	return f.err
}

func (f *fakeSettingRepo) GetAll(ctx context.Context) ([]models.Setting, error) {
	f.getAlls++
	return f.settings, f.err
}

func (f *fakeSettingRepo) GetByType(ctx context.Context, settingType string) ([]models.Setting, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Setting
	for _, s := range f.settings {
		if s.Type == settingType {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSettingRepo) Update(ctx context.Context, setting models.Setting) error { return f.err }
func (f *fakeSettingRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func newTestService(t *testing.T, repo *fakeSettingRepo) *DefaultSettingsService {
	t.Helper()
	local := utils.NewLocalStore(filepath.Join(t.TempDir(), "local_store.json"))
	return NewDefaultSettingsService(repo, local, nil, time.Hour)
}

func TestLoadWorkingHoursDefaults(t *testing.T) {
	svc := newTestService(t, &fakeSettingRepo{})
	wh := svc.LoadWorkingHours()
	if wh.StartTime != "09:00" || wh.EndTime != "18:00" {
		t.Errorf("expected default window 09:00-18:00, got %s-%s", wh.StartTime, wh.EndTime)
	}
	if len(wh.WorkingDays) != 5 {
		t.Errorf("expected Monday-Friday, got %v", wh.WorkingDays)
	}
	if wh.IsWorkingDay(time.Saturday) || wh.IsWorkingDay(time.Sunday) {
		t.Error("weekend must not be a default working day")
	}
}

func TestLoadWorkingHoursCorruptFallsBack(t *testing.T) {
	svc := newTestService(t, &fakeSettingRepo{})
	if err := svc.Local.SetItem(legacyWorkingHoursKey, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	wh := svc.LoadWorkingHours()
	if wh.StartTime != "09:00" || wh.EndTime != "18:00" {
		t.Errorf("corrupt data must fall back to defaults, got %s-%s", wh.StartTime, wh.EndTime)
	}
}

func TestLoadWorkingHoursInvertedWindowFallsBack(t *testing.T) {
	svc := newTestService(t, &fakeSettingRepo{})
	bad, _ := json.Marshal(models.WorkingHours{
		StartTime:   "18:00",
		EndTime:     "09:00",
		WorkingDays: []time.Weekday{time.Monday},
	})
	if err := svc.Local.SetItem(legacyWorkingHoursKey, string(bad)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	wh := svc.LoadWorkingHours()
	if wh.StartTime != "09:00" {
		t.Errorf("inverted window must fall back to defaults, got %s", wh.StartTime)
	}
}

func TestLoadWorkingHoursValidLocal(t *testing.T) {
	svc := newTestService(t, &fakeSettingRepo{})
	saved, _ := json.Marshal(models.WorkingHours{
		StartTime:   "08:00",
		EndTime:     "14:00",
		WorkingDays: []time.Weekday{time.Monday, time.Wednesday},
	})
	if err := svc.Local.SetItem(legacyWorkingHoursKey, string(saved)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	wh := svc.LoadWorkingHours()
	if wh.StartTime != "08:00" || wh.EndTime != "14:00" {
		t.Errorf("expected the saved window, got %s-%s", wh.StartTime, wh.EndTime)
	}
}

func TestGetSnapshotExpandsRemoteDayOffs(t *testing.T) {
	repo := &fakeSettingRepo{
		settings: []models.Setting{
			{
				ID:   "s1",
				Type: models.SettingTypeDayOff,
				DayOff: &models.DayOffSetting{
					FromDate:    "2024-08-05",
					ToDate:      "2024-08-07",
					Description: "Vacation",
				},
			},
		},
	}
	svc := newTestService(t, repo)
	snap := svc.GetSnapshot(context.Background())
	if len(snap.DayOffs) != 3 {
		t.Fatalf("expected 3 expanded records, got %d", len(snap.DayOffs))
	}
	for _, r := range snap.DayOffs {
		if r.Category != models.DayOffFull {
			t.Errorf("remote day-offs must expand as full days, got %s", r.Category)
		}
		if r.Reason != "Vacation" {
			t.Errorf("expected reason Vacation, got %q", r.Reason)
		}
	}
}

func TestGetSnapshotRemoteFailureDegrades(t *testing.T) {
	repo := &fakeSettingRepo{err: errors.New("settings service unavailable")}
	svc := newTestService(t, repo)
	snap := svc.GetSnapshot(context.Background())
	if len(snap.DayOffs) != 0 {
		t.Errorf("expected no day-offs on remote failure, got %d", len(snap.DayOffs))
	}
	// Calendar keeps working: defaults are still there.
	if snap.WorkingHours.StartTime != "09:00" {
		t.Errorf("expected default working hours, got %s", snap.WorkingHours.StartTime)
	}
}

func TestGetSnapshotPreservesLegacyPartialDays(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := newTestService(t, repo)
	legacy, _ := json.Marshal([]models.DayOffRecord{
		{ID: "legacy1", Date: "2024-07-01", Reason: "Course", Category: models.DayOffMorning},
	})
	if err := svc.Local.SetItem(legacyDayOffsKey, string(legacy)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	snap := svc.GetSnapshot(context.Background())
	if len(snap.DayOffs) != 1 {
		t.Fatalf("expected the legacy record, got %d records", len(snap.DayOffs))
	}
	if snap.DayOffs[0].Category != models.DayOffMorning {
		t.Errorf("legacy category must survive, got %s", snap.DayOffs[0].Category)
	}
}

func TestGetSnapshotCacheWindow(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := newTestService(t, repo)

	svc.GetSnapshot(context.Background())
	svc.GetSnapshot(context.Background())
	if repo.getAlls != 1 {
		t.Errorf("expected a single remote fetch within the cache window, got %d", repo.getAlls)
	}
}

func TestGetSnapshotInFlightGuard(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := newTestService(t, repo)

	svc.mu.Lock()
	svc.fetching = true
	svc.mu.Unlock()

	svc.GetSnapshot(context.Background())
	if repo.getAlls != 0 {
		t.Errorf("expected no fetch while one is in flight, got %d", repo.getAlls)
	}
}

func TestCreateDayOffInvalidatesSnapshot(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := newTestService(t, repo)

	svc.GetSnapshot(context.Background())
	if err := svc.CreateDayOff(context.Background(), models.DayOffSetting{
		FromDate: "2024-08-05", ToDate: "2024-08-05",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	svc.GetSnapshot(context.Background())
	if repo.getAlls != 2 {
		t.Errorf("expected a refetch after mutation, got %d fetches", repo.getAlls)
	}
}

func TestCreateDayOffRejectsInvertedRange(t *testing.T) {
	svc := newTestService(t, &fakeSettingRepo{})
	err := svc.CreateDayOff(context.Background(), models.DayOffSetting{
		FromDate: "2024-08-11", ToDate: "2024-08-05",
	})
	if err == nil {
		t.Fatal("expected an error for an inverted range")
	}
}

func TestSubscribeSeesSnapshotTransitions(t *testing.T) {
	svc := newTestService(t, &fakeSettingRepo{})
	notified := 0
	svc.Subscribe(func(Snapshot) { notified++ })
	svc.GetSnapshot(context.Background())
	if notified == 0 {
		t.Error("expected subscribers to see the fetched snapshot")
	}
}
