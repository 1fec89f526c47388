package productRepo

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

// ProductRepository defines methods for retail product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// MongoProductRepo implements ProductRepository using MongoDB.
type MongoProductRepo struct {
	coll *mongo.Collection
}

func NewMongoProductRepo(db *mongo.Database, logger *zap.Logger) ProductRepository {
	repo := &MongoProductRepo{coll: db.Collection("products")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_id"),
	})
	if err != nil {
		logger.Warn("failed to create product indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoProductRepo) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *MongoProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		return nil, database.NotFound(err, "product "+id)
	}
	return &product, nil
}

func (r *MongoProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "productName", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepo) Update(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	set := bson.M{}
	if update.ProductName != nil {
		set["productName"] = *update.ProductName
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, database.NotFound(err, "product "+id)
	}
	return &updated, nil
}

func (r *MongoProductRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product %s: %w", id, database.ErrNotFound)
	}
	return nil
}
