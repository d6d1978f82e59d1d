// File: services/settings/interface.go
package settings

import (
	"context"
	"sync"
	"time"

	settingRepo "consulta/database/repository/setting"
	"consulta/models"
	"consulta/services/store"
	"consulta/utils"

	"github.com/go-redis/redis/v8"
)

// Local storage keys of the legacy configuration format.
const (
	legacyWorkingHoursKey = "workingHours"
	legacyDayOffsKey      = "dayOffs"
)

// Snapshot is the schedule configuration the calendar renders from:
// current working hours plus the expanded day-off records.
type Snapshot struct {
	WorkingHours models.WorkingHours   `json:"workingHours"`
	DayOffs      []models.DayOffRecord `json:"dayOffs"`
	FetchedAt    time.Time             `json:"fetchedAt"`
}

// SettingsService loads and maintains the schedule configuration.
type SettingsService interface {
	// LoadWorkingHours reads the legacy local working hours; it never fails.
	LoadWorkingHours() models.WorkingHours
	// GetSnapshot returns working hours plus expanded day-offs, served from
	// the cache window when fresh. Remote failure degrades to an empty
	// day-off list.
	GetSnapshot(ctx context.Context) Snapshot
	// Subscribe registers fn to run after every snapshot transition.
	Subscribe(fn func(Snapshot)) func()

	SaveWorkingHours(ctx context.Context, wh models.WorkingHours) error
	ListDayOffSettings(ctx context.Context) ([]models.Setting, error)
	CreateDayOff(ctx context.Context, dayOff models.DayOffSetting) error
	UpdateDayOff(ctx context.Context, settingID string, dayOff models.DayOffSetting) error
	DeleteDayOff(ctx context.Context, settingID string) error
}

// DefaultSettingsService implements SettingsService on the settings
// repository, the legacy local store, and an optional Redis snapshot
// cache.
type DefaultSettingsService struct {
	Repo  settingRepo.SettingRepository
	Local *utils.LocalStore
	Cache *redis.Client
	TTL   time.Duration

	state    *store.Store[Snapshot]
	mu       sync.Mutex
	fetching bool
}

// NewDefaultSettingsService wires the service with an empty snapshot.
func NewDefaultSettingsService(repo settingRepo.SettingRepository, local *utils.LocalStore, cache *redis.Client, ttl time.Duration) *DefaultSettingsService {
	return &DefaultSettingsService{
		Repo:  repo,
		Local: local,
		Cache: cache,
		TTL:   ttl,
		state: store.New(Snapshot{}),
	}
}

// Subscribe registers fn against the snapshot store.
func (s *DefaultSettingsService) Subscribe(fn func(Snapshot)) func() {
	return s.state.Subscribe(fn)
}
