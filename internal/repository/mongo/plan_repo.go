// internal/repository/mongo/plan_repo.go
package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/repository"
)

const planCollectionName = "plans"

// planDocument keys the stored plan by its owner, so a replace with upsert
// keeps exactly one plan per owner.
type planDocument struct {
	OwnerKey    uuid.UUID `bson:"_id"`
	domain.Plan `bson:",inline"`
}

// mongoPlanRepository implements repository.PlanRepository
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a new Plan repository.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// Save replaces the owner's plan, inserting it if none exists yet.
func (r *mongoPlanRepository) Save(ctx context.Context, plan *domain.Plan) error {
	if plan.OwnerUserID == uuid.Nil {
		return repository.Wrap("save plan", errors.New("plan requires an owner"))
	}
	doc := planDocument{OwnerKey: plan.OwnerUserID, Plan: *plan}
	filter := bson.M{"_id": plan.OwnerUserID}
	_, err := r.collection.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	return repository.Wrap("save plan", err)
}

// GetByOwner retrieves the current plan of an owner.
func (r *mongoPlanRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Plan, error) {
	var doc planDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": ownerID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, repository.Wrap("get plan", err)
	}
	return &doc.Plan, nil
}

// DeleteByOwner removes the owner's plan. Deleting an absent plan is not an error.
func (r *mongoPlanRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": ownerID})
	return repository.Wrap("delete plan", err)
}

// EnsurePlanIndexes creates necessary indexes. Call during startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Plan ids are unique across owners.
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for collection %s: %w", collection.Name(), err)
	}
	return nil
}
