// File: database/repository/setting/interface.go
package settingRepo

import (
	"context"

	"consulta/database"
	"consulta/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SettingRepository interface {
	Create(ctx context.Context, setting models.Setting) error
	GetAll(ctx context.Context) ([]models.Setting, error)
	GetByType(ctx context.Context, settingType string) ([]models.Setting, error)
	Update(ctx context.Context, setting models.Setting) error
	Delete(ctx context.Context, id string) error
}

type mongoSettingRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingRepo constructs a new MongoDB SettingRepository.
func NewMongoSettingRepo() SettingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoSettingRepo{
		coll: db.Collection("settings"),
	}
}
