// File: services/settings/loader.go
package settings

import (
	"context"
	"encoding/json"
	"time"

	"consulta/models"
	"consulta/services/schedule"
	"consulta/utils"

	"go.uber.org/zap"
)

const snapshotCacheKey = "settings:snapshot"

// DefaultWorkingHours is the fallback schedule: 09:00-18:00, Monday
// through Friday.
func DefaultWorkingHours() models.WorkingHours {
	return models.WorkingHours{
		StartTime: "09:00",
		EndTime:   "18:00",
		WorkingDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}

// LoadWorkingHours reads the legacy working-hours JSON from the local
// store. Missing or corrupt data falls back to the defaults with a
// warning; this path never fails.
func (s *DefaultSettingsService) LoadWorkingHours() models.WorkingHours {
	logger := utils.GetLogger()
	if s.Local == nil {
		return DefaultWorkingHours()
	}
	raw, ok := s.Local.GetItem(legacyWorkingHoursKey)
	if !ok {
		return DefaultWorkingHours()
	}
	var wh models.WorkingHours
	if err := json.Unmarshal([]byte(raw), &wh); err != nil {
		logger.Warn("settings: corrupt local working hours, using defaults", zap.Error(err))
		return DefaultWorkingHours()
	}
	if wh.StartTime == "" || wh.EndTime == "" || len(wh.WorkingDays) == 0 || wh.StartTime >= wh.EndTime {
		logger.Warn("settings: invalid local working hours, using defaults",
			zap.String("start", wh.StartTime), zap.String("end", wh.EndTime))
		return DefaultWorkingHours()
	}
	return wh
}

// loadLegacyDayOffs reads the old local-only day-off records, which may
// carry partial-day categories. Corrupt data is dropped with a warning.
func (s *DefaultSettingsService) loadLegacyDayOffs() []models.DayOffRecord {
	if s.Local == nil {
		return nil
	}
	raw, ok := s.Local.GetItem(legacyDayOffsKey)
	if !ok {
		return nil
	}
	var records []models.DayOffRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		utils.GetLogger().Warn("settings: corrupt local day-off records, ignoring", zap.Error(err))
		return nil
	}
	return records
}

// GetSnapshot returns the current schedule configuration. Snapshots
// fetched within the cache window are reused; while a remote fetch is in
// flight, callers get the last snapshot instead of piling on a second
// request. A failed remote fetch degrades to an empty day-off list so the
// calendar keeps working.
func (s *DefaultSettingsService) GetSnapshot(ctx context.Context) Snapshot {
	logger := utils.GetLogger()

	s.mu.Lock()
	current := s.state.Get()
	if !current.FetchedAt.IsZero() && time.Since(current.FetchedAt) < s.TTL {
		s.mu.Unlock()
		return current
	}
	if s.fetching {
		// One fetch in flight at a time; serve what we have.
		s.mu.Unlock()
		return current
	}
	s.fetching = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.fetching = false
		s.mu.Unlock()
	}()

	if snap, ok := s.readCachedSnapshot(ctx); ok {
		return s.state.Set(snap)
	}

	snap := s.fetchSnapshot(ctx, logger)
	s.writeCachedSnapshot(ctx, snap)
	return s.state.Set(snap)
}

// fetchSnapshot assembles working hours and day-offs from the remote
// settings collection plus the legacy local records.
func (s *DefaultSettingsService) fetchSnapshot(ctx context.Context, logger *zap.Logger) Snapshot {
	snap := Snapshot{
		WorkingHours: s.LoadWorkingHours(),
		FetchedAt:    time.Now(),
	}

	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		logger.Warn("settings: remote fetch failed, continuing without day-offs", zap.Error(err))
		snap.DayOffs = s.loadLegacyDayOffs()
		return snap
	}

	for _, setting := range all {
		switch setting.Type {
		case models.SettingTypeWorkingHours:
			if setting.WorkingHours != nil {
				snap.WorkingHours = *setting.WorkingHours
			}
		case models.SettingTypeDayOff:
			if setting.DayOff != nil {
				snap.DayOffs = append(snap.DayOffs, schedule.ExpandDayOff(setting.ID, *setting.DayOff)...)
			}
		}
	}
	snap.DayOffs = append(snap.DayOffs, s.loadLegacyDayOffs()...)
	return snap
}

func (s *DefaultSettingsService) readCachedSnapshot(ctx context.Context) (Snapshot, bool) {
	if s.Cache == nil {
		return Snapshot{}, false
	}
	raw, err := s.Cache.Get(ctx, snapshotCacheKey).Result()
	if err != nil {
		return Snapshot{}, false
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, false
	}
	return snap, true
}

func (s *DefaultSettingsService) writeCachedSnapshot(ctx context.Context, snap Snapshot) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, snapshotCacheKey, data, s.TTL).Err(); err != nil {
		utils.GetLogger().Warn("settings: failed to cache snapshot", zap.Error(err))
	}
}

// invalidate drops the cached snapshot after a settings mutation.
func (s *DefaultSettingsService) invalidate(ctx context.Context) {
	s.state.Update(func(snap Snapshot) Snapshot {
		snap.FetchedAt = time.Time{}
		return snap
	})
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, snapshotCacheKey).Err(); err != nil {
			utils.GetLogger().Warn("settings: failed to invalidate snapshot cache", zap.Error(err))
		}
	}
}
