package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"carwash/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if err := prepareNew(booking); err != nil {
		return err
	}

	ctx, cancel := newContext(ctx, writeTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Update merges patch onto the stored booking. The merged document is
// validated before anything is written.
func (r *MongoBookingRepo) Update(ctx context.Context, id string, patch models.BookingPatch) (*models.Booking, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return existing, nil
	}

	if err := patch.Apply(existing); err != nil {
		return nil, fmt.Errorf("failed to merge booking %s: %w", id, err)
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := newContext(ctx, writeTimeout)
	defer cancel()

	setDoc := bson.M{}
	for field, value := range patch {
		setDoc[field] = value
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err = r.coll.FindOneAndUpdate(ctx, idFilter(id), bson.M{"$set": setDoc}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a booking document by its id and returns it.
func (r *MongoBookingRepo) Delete(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, writeTimeout)
	defer cancel()

	var removed models.Booking
	if err := r.coll.FindOneAndDelete(ctx, idFilter(id)).Decode(&removed); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return &removed, nil
}
