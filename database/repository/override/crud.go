// File: database/repository/override/crud.go
package overrideRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

// Upsert creates or fully replaces the override for (doctor, date). The unique
// doctor+date index guarantees at most one override per pair even under
// concurrent upserts.
func (r *mongoOverrideRepo) Upsert(ctx context.Context, override *models.DateOverride) (*models.DateOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"doctor_id": override.DoctorID, "date": override.Date}
	update := bson.M{
		"$set": bson.M{
			"available":  override.Available,
			"windows":    override.Windows,
			"reason":     override.Reason,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"id":         uuid.New().String(),
			"doctor_id":  override.DoctorID,
			"date":       override.Date,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.DateOverride
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("failed to upsert override: %w", err)
	}
	return &saved, nil
}

func (r *mongoOverrideRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) (*models.DateOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var override models.DateOverride
	err := r.coll.FindOne(ctx, bson.M{"doctor_id": doctorID, "date": date}).Decode(&override)
	if err != nil {
		return nil, err
	}
	return &override, nil
}

func (r *mongoOverrideRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.DateOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctor_id": doctorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var overrides []models.DateOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *mongoOverrideRepo) DeleteByDoctorAndDate(ctx context.Context, doctorID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"doctor_id": doctorID, "date": date})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
