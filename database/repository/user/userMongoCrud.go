// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"chairbook/database"
	"chairbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	if user.CreatedOn.IsZero() {
		user.CreatedOn = time.Now()
	}
	if user.Appointments == nil {
		user.Appointments = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// AddAppointment pushes an appointment ID onto the user's list.
func (r *MongoUserRepo) AddAppointment(ctx context.Context, userID, appointmentID string) error {
	return r.updateAppointments(ctx, userID, bson.M{"$addToSet": bson.M{"appointments": appointmentID}})
}

// RemoveAppointment pulls an appointment ID from the user's list.
func (r *MongoUserRepo) RemoveAppointment(ctx context.Context, userID, appointmentID string) error {
	return r.updateAppointments(ctx, userID, bson.M{"$pull": bson.M{"appointments": appointmentID}})
}

func (r *MongoUserRepo) updateAppointments(ctx context.Context, userID string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, database.QueryTimeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update appointments for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", userID, database.ErrNotFound)
	}
	return nil
}
