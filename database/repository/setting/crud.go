// File: database/repository/setting/crud.go
package settingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"consulta/models"
)

func (r *mongoSettingRepo) Create(ctx context.Context, setting models.Setting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if setting.ID == "" {
		setting.ID = uuid.New().String()
	}
	now := time.Now()
	setting.CreatedAt = now
	setting.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, setting)
	return err
}

func (r *mongoSettingRepo) GetAll(ctx context.Context) ([]models.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settings []models.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *mongoSettingRepo) GetByType(ctx context.Context, settingType string) ([]models.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"type": settingType}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settings []models.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *mongoSettingRepo) Update(ctx context.Context, setting models.Setting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	setting.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": setting.ID}, setting)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSettingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
