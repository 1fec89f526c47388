package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"chairbook/database"
	"chairbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates an AppointmentRepository backed by the appointments collection.
func NewMongoAppointmentRepo(db *mongo.Database, logger *zap.Logger) AppointmentRepository {
	repo := &MongoAppointmentRepo{coll: db.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create appointment indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, database.NotFound(err, "appointment "+id)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *MongoAppointmentRepo) ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"client": clientID})
}

func (r *MongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (r *MongoAppointmentRepo) Replace(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": appt.ID}, appt)
	if err != nil {
		return fmt.Errorf("failed to update appointment %s: %w", appt.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment %s: %w", appt.ID, database.ErrNotFound)
	}
	return nil
}

func (r *MongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("appointment %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoAppointmentRepo) CountByService(ctx context.Context, serviceID string) (int64, error) {
	return r.count(ctx, bson.M{"services": serviceID})
}

func (r *MongoAppointmentRepo) CountUpcomingByService(ctx context.Context, serviceID, fromDate string) (int64, error) {
	return r.count(ctx, bson.M{"services": serviceID, "date": bson.M{"$gte": fromDate}})
}

func (r *MongoAppointmentRepo) CountByProduct(ctx context.Context, productID string) (int64, error) {
	return r.count(ctx, bson.M{"product": productID})
}

func (r *MongoAppointmentRepo) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return n, nil
}
