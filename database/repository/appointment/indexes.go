package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes backing the availability and ownership queries.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary availability query pattern.
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetName("date_time_idx"),
		},
		{
			Keys:    bson.D{{Key: "client", Value: 1}},
			Options: options.Index().SetName("client_idx"),
		},
		{
			Keys:    bson.D{{Key: "services", Value: 1}},
			Options: options.Index().SetName("services_idx"),
		},
		{
			Keys:    bson.D{{Key: "product", Value: 1}},
			Options: options.Index().SetName("product_idx").SetSparse(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
