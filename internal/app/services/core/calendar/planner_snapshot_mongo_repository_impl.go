package calendar

import (
	"academia-service/internal/app/contracts"
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PlannerSnapshotMongoRepository struct {
	Collection *mongo.Collection
}

func NewPlannerSnapshotMongoRepository(db *mongo.Client, dbName string) contracts.PlannerSnapshotRepository {
	return &PlannerSnapshotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPlannerSnapshots),
	}
}

// Upsert keeps a single snapshot per planner name.
func (r *PlannerSnapshotMongoRepository) Upsert(ctx context.Context, snapshot *models.PlannerSnapshot) error {
	filter := bson.M{"planner_name": snapshot.PlannerName}
	update := bson.M{"$set": snapshot}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}

// FindLatest returns nil without an error when no snapshot exists.
func (r *PlannerSnapshotMongoRepository) FindLatest(ctx context.Context, plannerName string) (*models.PlannerSnapshot, error) {
	var snapshot models.PlannerSnapshot
	opts := options.FindOne().SetSort(bson.D{{Key: "fetched_at", Value: -1}})
	err := r.Collection.FindOne(ctx, bson.M{"planner_name": plannerName}, opts).Decode(&snapshot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &snapshot, nil
}
