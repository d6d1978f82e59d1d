// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"
	"time"

	"consulta/database"
	"consulta/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository interface {
	Create(ctx context.Context, session models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	GetByRange(ctx context.Context, from, to time.Time) ([]models.Session, error)
	GetByPatientID(ctx context.Context, patientID string) ([]models.Session, error)
	UpdateSchedule(ctx context.Context, id string, from, to time.Time) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error

	CreateNote(ctx context.Context, note models.SessionNote) error
	GetNotesBySessionID(ctx context.Context, sessionID string) ([]models.SessionNote, error)
	DeleteNote(ctx context.Context, noteID string) error
}

type mongoSessionRepo struct {
	coll     *mongo.Collection
	noteColl *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoSessionRepo{
		coll:     db.Collection("sessions"),
		noteColl: db.Collection("session_notes"),
	}
}
