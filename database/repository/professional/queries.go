package professionalRepo

import (
	"fmt"
	"time"

	"alcahub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a professional by its unique ID.
func (r *MongoProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prof models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch professional with id %s: %w", id, err)
	}
	return &prof, nil
}

// GetAll retrieves all professionals, highest rated first.
func (r *MongoProfessionalRepo) GetAll() ([]models.Professional, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var profs []models.Professional
	if err := cursor.All(ctx, &profs); err != nil {
		return nil, fmt.Errorf("failed to decode professionals: %w", err)
	}
	return profs, nil
}

// Search retrieves professionals matching the given criteria.
func (r *MongoProfessionalRepo) Search(criteria SearchCriteria) ([]models.Professional, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.Name != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: criteria.Name, Options: "i"}}
	}
	if criteria.Specialty != "" {
		filter["specialties"] = criteria.Specialty
	}
	if criteria.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": criteria.MinRating}
	}
	if criteria.Verified != nil {
		filter["verified"] = *criteria.Verified
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var profs []models.Professional
	if err := cursor.All(ctx, &profs); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return profs, nil
}
