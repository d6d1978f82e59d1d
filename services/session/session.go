// File: services/session/session.go
package session

import (
	"context"
	"fmt"
	"time"

	"consulta/models"
	"consulta/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultSessionService) ListByRange(ctx context.Context, from, to time.Time) ([]models.Session, error) {
	return s.Repo.GetByRange(ctx, from, to)
}

func (s *DefaultSessionService) ListByPatient(ctx context.Context, patientID string) ([]models.Session, error) {
	return s.Repo.GetByPatientID(ctx, patientID)
}

func (s *DefaultSessionService) GetByID(ctx context.Context, id string) (*models.Session, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create persists a new session. The patient's display name is
// denormalized onto the session so the calendar can label it without a
// lookup.
func (s *DefaultSessionService) Create(ctx context.Context, sess models.Session) (*models.Session, error) {
	if !sess.ScheduledFrom.Before(sess.ScheduledTo) {
		return nil, fmt.Errorf("session start must be before end")
	}
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if sess.Status == "" {
		sess.Status = models.SessionStatusPending
	}
	if sess.SessionType == "" {
		sess.SessionType = models.SessionTypePresential
	}
	if sess.PatientName == "" && sess.PatientID != "" && s.PatientRepo != nil {
		if patient, err := s.PatientRepo.GetByID(ctx, sess.PatientID); err == nil {
			sess.PatientName = patient.DisplayName()
		}
	}

	if err := s.Repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.scheduleReminder(ctx, sess)
	created := sess
	return &created, nil
}

func (s *DefaultSessionService) Reschedule(ctx context.Context, id string, from, to time.Time) error {
	if !from.Before(to) {
		return fmt.Errorf("session start must be before end")
	}
	if err := s.Repo.UpdateSchedule(ctx, id, from, to); err != nil {
		return fmt.Errorf("failed to reschedule session: %w", err)
	}
	if sess, err := s.Repo.GetByID(ctx, id); err == nil {
		s.scheduleReminder(ctx, *sess)
	}
	return nil
}

func (s *DefaultSessionService) Cancel(ctx context.Context, id string) error {
	return s.Repo.UpdateStatus(ctx, id, models.SessionStatusCancelled)
}

func (s *DefaultSessionService) Complete(ctx context.Context, id string) error {
	return s.Repo.UpdateStatus(ctx, id, models.SessionStatusCompleted)
}

func (s *DefaultSessionService) AddNote(ctx context.Context, note models.SessionNote) error {
	if note.SessionID == "" {
		return fmt.Errorf("note needs a session id")
	}
	if note.Body == "" {
		return fmt.Errorf("note body is empty")
	}
	return s.Repo.CreateNote(ctx, note)
}

func (s *DefaultSessionService) ListNotes(ctx context.Context, sessionID string) ([]models.SessionNote, error) {
	return s.Repo.GetNotesBySessionID(ctx, sessionID)
}

func (s *DefaultSessionService) DeleteNote(ctx context.Context, noteID string) error {
	return s.Repo.DeleteNote(ctx, noteID)
}

// CreateSession accepts a validated slot selection from the mediator and
// creates a pending draft session for the therapist to fill in.
func (s *DefaultSessionService) CreateSession(ctx context.Context, start, end time.Time) error {
	_, err := s.Create(ctx, models.Session{
		ScheduledFrom: start,
		ScheduledTo:   end,
		Status:        models.SessionStatusPending,
	})
	return err
}

// RescheduleSession accepts a validated drag/drop move from the mediator.
func (s *DefaultSessionService) RescheduleSession(ctx context.Context, sessionID string, start, end time.Time) error {
	return s.Reschedule(ctx, sessionID, start, end)
}

func (s *DefaultSessionService) scheduleReminder(ctx context.Context, sess models.Session) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleSessionReminder(ctx, sess); err != nil {
		utils.GetLogger().Warn("session: failed to schedule reminder",
			zap.String("sessionId", sess.ID), zap.Error(err))
	}
}
