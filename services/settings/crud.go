// File: services/settings/crud.go
package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"consulta/models"
	"consulta/utils"

	"go.uber.org/zap"
)

// SaveWorkingHours overwrites the working-hours setting wholesale, both in
// the remote settings collection and in the legacy local store.
func (s *DefaultSettingsService) SaveWorkingHours(ctx context.Context, wh models.WorkingHours) error {
	if wh.StartTime >= wh.EndTime {
		return fmt.Errorf("working hours start %q must be before end %q", wh.StartTime, wh.EndTime)
	}
	if len(wh.WorkingDays) == 0 {
		return fmt.Errorf("working hours need at least one working day")
	}

	existing, err := s.Repo.GetByType(ctx, models.SettingTypeWorkingHours)
	if err != nil {
		return fmt.Errorf("failed to load working-hours setting: %w", err)
	}
	if len(existing) > 0 {
		setting := existing[0]
		setting.WorkingHours = &wh
		if err := s.Repo.Update(ctx, setting); err != nil {
			return fmt.Errorf("failed to update working-hours setting: %w", err)
		}
	} else {
		setting := models.Setting{
			Type:         models.SettingTypeWorkingHours,
			WorkingHours: &wh,
		}
		if err := s.Repo.Create(ctx, setting); err != nil {
			return fmt.Errorf("failed to create working-hours setting: %w", err)
		}
	}

	if s.Local != nil {
		data, err := json.Marshal(wh)
		if err == nil {
			if err := s.Local.SetItem(legacyWorkingHoursKey, string(data)); err != nil {
				utils.GetLogger().Warn("settings: failed to persist local working hours", zap.Error(err))
			}
		}
	}

	s.invalidate(ctx)
	return nil
}

// ListDayOffSettings returns the raw day-off settings for the settings
// screen (unexpanded ranges).
func (s *DefaultSettingsService) ListDayOffSettings(ctx context.Context) ([]models.Setting, error) {
	return s.Repo.GetByType(ctx, models.SettingTypeDayOff)
}

// CreateDayOff stores a new day-off range.
func (s *DefaultSettingsService) CreateDayOff(ctx context.Context, dayOff models.DayOffSetting) error {
	if err := validateDayOff(dayOff); err != nil {
		return err
	}
	setting := models.Setting{
		Type:   models.SettingTypeDayOff,
		DayOff: &dayOff,
	}
	if err := s.Repo.Create(ctx, setting); err != nil {
		return fmt.Errorf("failed to create day-off setting: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// UpdateDayOff replaces an existing day-off range.
func (s *DefaultSettingsService) UpdateDayOff(ctx context.Context, settingID string, dayOff models.DayOffSetting) error {
	if err := validateDayOff(dayOff); err != nil {
		return err
	}
	setting := models.Setting{
		ID:     settingID,
		Type:   models.SettingTypeDayOff,
		DayOff: &dayOff,
	}
	if err := s.Repo.Update(ctx, setting); err != nil {
		return fmt.Errorf("failed to update day-off setting: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// DeleteDayOff removes a day-off range.
func (s *DefaultSettingsService) DeleteDayOff(ctx context.Context, settingID string) error {
	if err := s.Repo.Delete(ctx, settingID); err != nil {
		return fmt.Errorf("failed to delete day-off setting: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func validateDayOff(dayOff models.DayOffSetting) error {
	if dayOff.FromDate == "" || dayOff.ToDate == "" {
		return fmt.Errorf("day-off range needs both fromDate and toDate")
	}
	if dayOff.ToDate < dayOff.FromDate {
		return fmt.Errorf("day-off range %q..%q is inverted", dayOff.FromDate, dayOff.ToDate)
	}
	return nil
}
