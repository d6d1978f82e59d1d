// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"

	"consulta/database"
	"consulta/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.Payment, error)
	GetByPatientID(ctx context.Context, patientID string) ([]models.Payment, error)
	GetPending(ctx context.Context) ([]models.Payment, error)
	MarkPaid(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a new MongoDB PaymentRepository.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoPaymentRepo{
		coll: db.Collection("payments"),
	}
}
