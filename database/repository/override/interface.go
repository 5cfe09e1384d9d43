// File: database/repository/override/interface.go
package overrideRepo

import (
	"context"

	"medibook/config"
	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type OverrideRepository interface {
	Upsert(ctx context.Context, override *models.DateOverride) (*models.DateOverride, error)
	GetByDoctorAndDate(ctx context.Context, doctorID, date string) (*models.DateOverride, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.DateOverride, error)
	DeleteByDoctorAndDate(ctx context.Context, doctorID, date string) error
	EnsureIndexes() error
}

type mongoOverrideRepo struct {
	coll *mongo.Collection
}

// NewMongoOverrideRepo constructs a new MongoDB OverrideRepository.
func NewMongoOverrideRepo() OverrideRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoOverrideRepo{
		coll: db.Collection("overrides"),
	}
}
