package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	"consulta/models"
)

// Mediator sits between calendar gestures and the session collaborator:
// it validates a gesture's target instant against the availability rules
// before forwarding, and reverts rejected or failed moves. It performs no
// retries of its own.
type Mediator struct {
	Sessions SessionWriter
	Notifier Notifier
	Logger   *zap.Logger
}

// NewMediator builds a Mediator, substituting a no-op notifier for nil.
func NewMediator(sessions SessionWriter, notifier Notifier, logger *zap.Logger) *Mediator {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mediator{Sessions: sessions, Notifier: notifier, Logger: logger}
}

// SelectSlot handles a slot-selection gesture. A rejected selection is
// surfaced through the notifier and never forwarded. On downstream create
// failure the error is surfaced and returned; the caller keeps its form
// state so the user can retry.
func (m *Mediator) SelectSlot(ctx context.Context, start, end time.Time, wh models.WorkingHours, dayOffs []models.DayOffRecord) error {
	if rejection := CheckPlacement(start, wh, dayOffs); rejection != nil {
		m.Logger.Debug("slot selection rejected",
			zap.Time("start", start), zap.String("kind", rejection.Kind))
		m.Notifier.Notify(rejection.Reason)
		return rejection
	}

	if err := m.Sessions.CreateSession(ctx, start, end); err != nil {
		m.Logger.Warn("session create failed", zap.Time("start", start), zap.Error(err))
		m.Notifier.Notify("could not create the session, please try again")
		return err
	}
	return nil
}

// MoveSession handles an event drag/drop gesture. revert restores the
// calendar surface's item to its original position; it runs on every
// rejected or failed move. A drop without a resolved end instant is
// reverted without availability checks.
func (m *Mediator) MoveSession(ctx context.Context, sessionID string, newStart, newEnd time.Time, wh models.WorkingHours, dayOffs []models.DayOffRecord, revert func()) error {
	if newEnd.IsZero() {
		m.Logger.Warn("drop without resolved end, reverting", zap.String("sessionId", sessionID))
		revert()
		return ErrUnresolvedDrop
	}

	if rejection := CheckPlacement(newStart, wh, dayOffs); rejection != nil {
		m.Logger.Debug("session move rejected",
			zap.String("sessionId", sessionID), zap.String("kind", rejection.Kind))
		revert()
		m.Notifier.Notify(rejection.Reason)
		return rejection
	}

	if err := m.Sessions.RescheduleSession(ctx, sessionID, newStart, newEnd); err != nil {
		m.Logger.Warn("session reschedule failed",
			zap.String("sessionId", sessionID), zap.Error(err))
		revert()
		m.Notifier.Notify("could not move the session, please try again")
		return err
	}
	return nil
}
