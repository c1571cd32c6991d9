package professionalRepo

import (
	"fmt"
	"time"

	"alcahub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new professional document.
func (r *MongoProfessionalRepo) Create(prof *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	prof.CreatedAt = now
	prof.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, prof)
	if err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

// Update modifies an existing professional document.
func (r *MongoProfessionalRepo) Update(prof *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	prof.UpdatedAt = time.Now()
	filter := bson.M{"id": prof.ID}
	update := bson.M{"$set": prof}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update professional with id %s: %w", prof.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", prof.ID)
	}
	return nil
}

// Delete removes a professional document by its ID.
func (r *MongoProfessionalRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete professional with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}

// foldRating folds one new review rating into a stored aggregate.
func foldRating(current float64, count int, rating float64) (float64, int) {
	total := current*float64(count) + rating
	newCount := count + 1
	return total / float64(newCount), newCount
}

// UpdateRating folds a new review rating into the stored aggregate.
func (r *MongoProfessionalRepo) UpdateRating(id string, rating float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	prof, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if prof == nil {
		return fmt.Errorf("professional with id %s not found", id)
	}

	newRating, newCount := foldRating(prof.Rating, prof.ReviewCount, rating)
	update := bson.M{"$set": bson.M{
		"rating":      newRating,
		"reviewCount": newCount,
		"updatedAt":   time.Now(),
	}}

	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to update rating for professional %s: %w", id, err)
	}
	return nil
}
