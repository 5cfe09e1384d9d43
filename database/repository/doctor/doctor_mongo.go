package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"medibook/models"
)

func (r *mongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("failed to insert doctor: %w", err)
	}
	return nil
}

func (r *mongoDoctorRepo) GetByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": doctorID}).Decode(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) UpdateTemplate(ctx context.Context, doctorID string, template models.WeeklyTemplate, slotMinutes int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"template":   template,
		"updated_at": time.Now(),
	}
	if slotMinutes > 0 {
		set["slotMinutes"] = slotMinutes
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": doctorID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update doctor template: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDoctorRepo) AddBlockedDate(ctx context.Context, doctorID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"blockedDates": date},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": doctorID}, update)
	if err != nil {
		return fmt.Errorf("failed to add blocked date: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDoctorRepo) RemoveBlockedDate(ctx context.Context, doctorID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"blockedDates": date},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": doctorID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove blocked date: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
