// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"medibook/config"
	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	UpdateTemplate(ctx context.Context, doctorID string, template models.WeeklyTemplate, slotMinutes int) error
	AddBlockedDate(ctx context.Context, doctorID, date string) error
	RemoveBlockedDate(ctx context.Context, doctorID, date string) error
	EnsureIndexes() error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
}
