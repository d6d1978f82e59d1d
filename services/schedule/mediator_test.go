package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"consulta/models"
)

type fakeWriter struct {
	createCalls     int
	rescheduleCalls int
	lastID          string
	lastStart       time.Time
	lastEnd         time.Time
	err             error
}

func (f *fakeWriter) CreateSession(ctx context.Context, start, end time.Time) error {
	f.createCalls++
	f.lastStart, f.lastEnd = start, end
	return f.err
}

func (f *fakeWriter) RescheduleSession(ctx context.Context, id string, start, end time.Time) error {
	f.rescheduleCalls++
	f.lastID, f.lastStart, f.lastEnd = id, start, end
	return f.err
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(message string) {
	f.messages = append(f.messages, message)
}

func TestSelectSlotAccepted(t *testing.T) {
	writer := &fakeWriter{}
	notifier := &fakeNotifier{}
	m := NewMediator(writer, notifier, nil)

	start := at("2024-06-17", 10, 0)
	if err := m.SelectSlot(context.Background(), start, start.Add(time.Hour), weekdayHours(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.createCalls != 1 {
		t.Fatalf("expected 1 create call, got %d", writer.createCalls)
	}
	if !writer.lastStart.Equal(start) {
		t.Errorf("forwarded wrong start: %v", writer.lastStart)
	}
	if len(notifier.messages) != 0 {
		t.Errorf("unexpected notifications: %v", notifier.messages)
	}
}

func TestSelectSlotRejectedOnDayOff(t *testing.T) {
	writer := &fakeWriter{}
	notifier := &fakeNotifier{}
	m := NewMediator(writer, notifier, nil)

	dayOffs := []models.DayOffRecord{
		{ID: "r1", Date: "2024-12-25", Reason: "Holiday", Category: models.DayOffFull},
	}
	start := at("2024-12-25", 10, 0)
	err := m.SelectSlot(context.Background(), start, start.Add(time.Hour), weekdayHours(), dayOffs)

	var rejection *RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected a rejection, got %v", err)
	}
	if rejection.Reason != "Holiday" {
		t.Errorf("expected reason Holiday, got %q", rejection.Reason)
	}
	if writer.createCalls != 0 {
		t.Error("rejected selection must not be forwarded")
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != "Holiday" {
		t.Errorf("expected the reason to be surfaced, got %v", notifier.messages)
	}
}

func TestSelectSlotDownstreamFailure(t *testing.T) {
	writer := &fakeWriter{err: errors.New("network down")}
	notifier := &fakeNotifier{}
	m := NewMediator(writer, notifier, nil)

	start := at("2024-06-17", 10, 0)
	err := m.SelectSlot(context.Background(), start, start.Add(time.Hour), weekdayHours(), nil)
	if err == nil {
		t.Fatal("expected the downstream error to propagate")
	}
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		t.Fatal("downstream failure must not look like a rejection")
	}
	if len(notifier.messages) != 1 {
		t.Errorf("expected a failure notification, got %v", notifier.messages)
	}
}

func TestMoveSessionOutsideHoursReverts(t *testing.T) {
	writer := &fakeWriter{}
	notifier := &fakeNotifier{}
	m := NewMediator(writer, notifier, nil)

	reverted := false
	newStart := at("2024-06-17", 20, 0)
	err := m.MoveSession(context.Background(), "s1", newStart, newStart.Add(time.Hour),
		weekdayHours(), nil, func() { reverted = true })

	var rejection *RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected a rejection, got %v", err)
	}
	if rejection.Kind != RejectOutsideHours {
		t.Errorf("expected outside-hours rejection, got %s", rejection.Kind)
	}
	if !reverted {
		t.Error("rejected move must revert the visual state")
	}
	if writer.rescheduleCalls != 0 {
		t.Error("rejected move must not be forwarded")
	}
}

func TestMoveSessionAccepted(t *testing.T) {
	writer := &fakeWriter{}
	m := NewMediator(writer, nil, nil)

	reverted := false
	newStart := at("2024-06-17", 11, 0)
	err := m.MoveSession(context.Background(), "s1", newStart, newStart.Add(time.Hour),
		weekdayHours(), nil, func() { reverted = true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reverted {
		t.Error("accepted move must not revert")
	}
	if writer.rescheduleCalls != 1 || writer.lastID != "s1" {
		t.Errorf("expected one forwarded reschedule for s1, got %d (%s)", writer.rescheduleCalls, writer.lastID)
	}
}

func TestMoveSessionMissingEndRevertsWithoutChecks(t *testing.T) {
	writer := &fakeWriter{}
	notifier := &fakeNotifier{}
	m := NewMediator(writer, notifier, nil)

	reverted := false
	// The start would itself be rejected, but a missing end short-circuits
	// before any availability check runs.
	newStart := at("2024-06-15", 10, 0)
	err := m.MoveSession(context.Background(), "s1", newStart, time.Time{},
		weekdayHours(), nil, func() { reverted = true })

	if !errors.Is(err, ErrUnresolvedDrop) {
		t.Fatalf("expected ErrUnresolvedDrop, got %v", err)
	}
	if !reverted {
		t.Error("unresolved drop must revert")
	}
	if writer.rescheduleCalls != 0 {
		t.Error("unresolved drop must not be forwarded")
	}
	if len(notifier.messages) != 0 {
		t.Errorf("unresolved drop is not a user-facing rejection, got %v", notifier.messages)
	}
}

func TestMoveSessionDownstreamFailureReverts(t *testing.T) {
	writer := &fakeWriter{err: errors.New("network down")}
	notifier := &fakeNotifier{}
	m := NewMediator(writer, notifier, nil)

	reverted := false
	newStart := at("2024-06-17", 11, 0)
	err := m.MoveSession(context.Background(), "s1", newStart, newStart.Add(time.Hour),
		weekdayHours(), nil, func() { reverted = true })
	if err == nil {
		t.Fatal("expected the downstream error to propagate")
	}
	if !reverted {
		t.Error("failed move must revert the visual state")
	}
	if len(notifier.messages) != 1 {
		t.Errorf("expected a failure notification, got %v", notifier.messages)
	}
}
