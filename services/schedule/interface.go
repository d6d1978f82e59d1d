// Package schedule is the scheduling availability and conflict resolver:
// it expands day-off settings into concrete unavailable days, decides
// whether a candidate instant may hold a session, projects sessions and
// day-offs into renderable calendar events, and mediates slot-selection
// and drag/drop gestures against those rules. Everything except the
// mediator's forwarding calls is pure and synchronous.
package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// NameLookup resolves a patient id to a display name. It is consulted only
// when a session carries no denormalized patient name.
type NameLookup interface {
	DisplayName(patientID string) (string, bool)
}

// PaymentStatus answers whether a session's payment is settled.
type PaymentStatus interface {
	IsSettled(sessionID string) bool
}

// Notifier delivers a transient user-facing message (placement rejections,
// downstream save failures).
type Notifier interface {
	Notify(message string)
}

// SessionWriter is the external session collaborator the mediator forwards
// validated placements to. It owns persistence; the mediator never retries.
type SessionWriter interface {
	CreateSession(ctx context.Context, start, end time.Time) error
	RescheduleSession(ctx context.Context, sessionID string, start, end time.Time) error
}

// NoopNameLookup is the default NameLookup; it never resolves.
type NoopNameLookup struct{}

func (NoopNameLookup) DisplayName(string) (string, bool) { return "", false }

// NoopPaymentStatus is the default PaymentStatus; nothing is settled.
type NoopPaymentStatus struct{}

func (NoopPaymentStatus) IsSettled(string) bool { return false }

// NoopNotifier is the default Notifier; it drops messages.
type NoopNotifier struct{}

func (NoopNotifier) Notify(string) {}

// LogNotifier surfaces notifications through the structured log, standing
// in where no delivery channel is configured.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Notify(message string) {
	n.Logger.Info("notification", zap.String("message", message))
}
