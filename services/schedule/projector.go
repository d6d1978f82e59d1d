package schedule

import (
	"time"

	"consulta/models"
)

// Modality markers prefixed to session titles.
const (
	presentialIcon = "🏥"
	remoteIcon     = "💻"
)

const noPatientTitle = "No patient"

// Projector maps sessions and day-off records into the renderable event
// set. It is a pure function of its inputs plus the injected capability
// lookups; callers may recompute on every render.
type Projector struct {
	Names    NameLookup
	Payments PaymentStatus
}

// NewProjector builds a Projector, substituting no-op capabilities for nil
// ones.
func NewProjector(names NameLookup, payments PaymentStatus) *Projector {
	if names == nil {
		names = NoopNameLookup{}
	}
	if payments == nil {
		payments = NoopPaymentStatus{}
	}
	return &Projector{Names: names, Payments: payments}
}

// Project emits one event per non-cancelled session and a background plus
// labelled foreground event per day-off record. Output order is not
// significant; ids are deterministic so re-renders stay stable.
func (p *Projector) Project(sessions []models.Session, dayOffs []models.DayOffRecord) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(sessions)+2*len(dayOffs))

	for _, s := range sessions {
		if s.Status == models.SessionStatusCancelled {
			continue
		}
		events = append(events, models.CalendarEvent{
			ID:        "session-" + s.ID,
			Title:     p.sessionTitle(s),
			Start:     s.ScheduledFrom,
			End:       s.ScheduledTo,
			ClassName: statusClass(s.Status),
			SessionID: s.ID,
			Paid:      p.Payments.IsSettled(s.ID),
		})
	}

	for _, record := range dayOffs {
		events = append(events, dayOffEvents(record)...)
	}
	return events
}

func (p *Projector) sessionTitle(s models.Session) string {
	icon := presentialIcon
	if s.SessionType == models.SessionTypeRemote {
		icon = remoteIcon
	}
	name := s.PatientName
	if name == "" && s.PatientID != "" {
		if resolved, ok := p.Names.DisplayName(s.PatientID); ok {
			name = resolved
		}
	}
	if name == "" {
		name = noPatientTitle
	}
	return icon + " " + name
}

func statusClass(status string) string {
	switch status {
	case models.SessionStatusPending:
		return "event-pending"
	case models.SessionStatusConfirmed:
		return "event-confirmed"
	case models.SessionStatusCompleted:
		return "event-completed"
	default:
		return "event-default"
	}
}

// dayOffEvents derives the background stripe and its label from one
// record. Both share the record's id prefix with a role suffix so keys
// stay distinguishable and stable.
func dayOffEvents(record models.DayOffRecord) []models.CalendarEvent {
	day, err := time.ParseInLocation(dateLayout, record.Date, time.Local)
	if err != nil {
		return nil
	}

	var start, end time.Time
	allDay := record.Category == models.DayOffFull
	if allDay {
		start = day
		end = day.AddDate(0, 0, 1)
	} else {
		startMin, endMin := categoryInterval(record)
		if startMin == endMin {
			return nil
		}
		start = day.Add(time.Duration(startMin) * time.Minute)
		end = day.Add(time.Duration(endMin) * time.Minute)
	}

	prefix := "dayoff-" + record.ID
	return []models.CalendarEvent{
		{
			ID:         prefix + "-bg",
			Start:      start,
			End:        end,
			AllDay:     allDay,
			Background: true,
			DayOffID:   record.ID,
		},
		{
			ID:       prefix + "-label",
			Title:    record.Reason,
			Start:    start,
			End:      end,
			AllDay:   allDay,
			DayOffID: record.ID,
		},
	}
}
