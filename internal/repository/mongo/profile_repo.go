// internal/repository/mongo/profile_repo.go
package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/repository"
)

const (
	profileCollectionName = "profiles"
	currentProfileKey     = "current"
)

type profileDocument struct {
	Key     string             `bson:"_id"`
	Profile domain.UserProfile `bson:"profile"`
}

// mongoProfileRepository implements repository.ProfileRepository with a
// single well-known document.
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new profile repository.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

func (r *mongoProfileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	doc := profileDocument{Key: currentProfileKey, Profile: *profile}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": currentProfileKey}, doc, options.Replace().SetUpsert(true))
	return repository.Wrap("save profile", err)
}

func (r *mongoProfileRepository) GetCurrent(ctx context.Context) (*domain.UserProfile, error) {
	var doc profileDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": currentProfileKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, repository.Wrap("get profile", err)
	}
	return &doc.Profile, nil
}

func (r *mongoProfileRepository) Delete(ctx context.Context) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": currentProfileKey})
	return repository.Wrap("delete profile", err)
}
