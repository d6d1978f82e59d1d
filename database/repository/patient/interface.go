// File: database/repository/patient/interface.go
package patientRepo

import (
	"context"

	"consulta/database"
	"consulta/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PatientRepository interface {
	Create(ctx context.Context, patient models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetAll(ctx context.Context, includeArchived bool) ([]models.Patient, error)
	Update(ctx context.Context, patient models.Patient) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoPatientRepo{
		coll: db.Collection("patients"),
	}
}
