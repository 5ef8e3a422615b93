package repo

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMazeNotFound is returned when no maze record matches the query.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo handles the persistence of generated maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze record. Updating happens when a
// solution is computed after the initial insert.
func (r *MazeRepo) Save(ctx context.Context, record *dmn.MazeRecord) error {
	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":    record.OwnerID,
			"width":      record.Width,
			"height":     record.Height,
			"start":      record.Start,
			"end":        record.End,
			"rows":       record.Rows,
			"generator":  record.Generator,
			"pathfinder": record.Pathfinder,
			"seed":       record.Seed,
			"solution":   record.Solution,
			"createdAt":  record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a maze record by its ID.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	filter := bson.M{"_id": id}
	var record dmn.MazeRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}

// ByOwner retrieves all maze records created by the given user, newest
// first.
func (r *MazeRepo) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dmn.MazeRecord, error) {
	filter := bson.M{"ownerId": ownerID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []*dmn.MazeRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}
