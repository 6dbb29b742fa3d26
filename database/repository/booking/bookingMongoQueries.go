package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"carwash/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a booking by its id.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, readTimeout)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, idFilter(id)).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetAll retrieves all bookings.
func (r *MongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

// GetByStatus retrieves bookings with exactly the given status.
func (r *MongoBookingRepo) GetByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"status": status})
}

// SearchByText matches query against carName or customerName, ignoring case.
// The query is treated literally.
func (r *MongoBookingRepo) SearchByText(ctx context.Context, query string) ([]models.Booking, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$or": []bson.M{
			{models.FieldCarName: pattern},
			{models.FieldCustomerName: pattern},
		},
	}
	return r.find(ctx, filter)
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, readTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
