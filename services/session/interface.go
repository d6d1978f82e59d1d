// File: services/session/interface.go
package session

import (
	"context"
	"time"

	patientRepo "consulta/database/repository/patient"
	sessionRepo "consulta/database/repository/session"
	"consulta/models"
	"consulta/services/reminder"
)

// SessionService manages therapy sessions and their clinical notes. It is
// also the session collaborator the scheduling mediator forwards validated
// placements to, via CreateSession and RescheduleSession.
type SessionService interface {
	ListByRange(ctx context.Context, from, to time.Time) ([]models.Session, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Create(ctx context.Context, s models.Session) (*models.Session, error)
	Reschedule(ctx context.Context, id string, from, to time.Time) error
	Cancel(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error

	AddNote(ctx context.Context, note models.SessionNote) error
	ListNotes(ctx context.Context, sessionID string) ([]models.SessionNote, error)
	DeleteNote(ctx context.Context, noteID string) error

	// schedule.SessionWriter
	CreateSession(ctx context.Context, start, end time.Time) error
	RescheduleSession(ctx context.Context, sessionID string, start, end time.Time) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Repo        sessionRepo.SessionRepository
	PatientRepo patientRepo.PatientRepository
	Reminders   reminder.Scheduler // optional
}
