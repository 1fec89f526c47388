package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a ServiceRepository backed by the services collection.
func NewMongoServiceRepo(db *mongo.Database, logger *zap.Logger) ServiceRepository {
	repo := &MongoServiceRepo{coll: db.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create service indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_id"),
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) Create(ctx context.Context, service *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		return nil, database.NotFound(err, "service "+id)
	}
	return &service, nil
}

func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "serviceName", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) Update(ctx context.Context, id string, update models.ServiceUpdate) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	set := bson.M{}
	if update.ServiceName != nil {
		set["serviceName"] = *update.ServiceName
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Service
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, database.NotFound(err, "service "+id)
	}
	return &updated, nil
}

func (r *MongoServiceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoServiceRepo) ServiceDurations(ctx context.Context) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "duration": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load service durations: %w", err)
	}
	defer cursor.Close(ctx)

	durations := make(map[string]int)
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		durations[s.ID] = s.Duration
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}
	return durations, nil
}
