package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/natnael-worku/mazerace/maze"
	"github.com/natnael-worku/mazerace/service/i"
)

// MazeSnapshotRepo persists maze snapshots in MongoDB, one document
// per race table.
type MazeSnapshotRepo struct {
	collection *mongo.Collection
}

// NewMazeSnapshotRepo creates a MazeSnapshotRepo with the given
// MongoDB client, database name, and collection name.
func NewMazeSnapshotRepo(client *mongo.Client, dbName, collectionName string) *MazeSnapshotRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeSnapshotRepo{
		collection: collection,
	}
}

// Save inserts or replaces the snapshot document for a table.
func (r *MazeSnapshotRepo) Save(ctx context.Context, tableID uuid.UUID, res *maze.MazeResult) error {
	data, err := maze.Serialize(res)
	if err != nil {
		return fmt.Errorf("serializing maze for table %s: %w", tableID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": tableID.String()}
	update := bson.M{
		"$set": bson.M{
			"snapshot":  string(data),
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("saving maze snapshot for table %s: %w", tableID, err)
	}
	return nil
}

// ByTable loads the snapshot for a table. The payload goes through
// maze.Deserialize, which re-validates the maze invariants, so a
// tampered or truncated document is rejected here rather than reaching
// a race.
func (r *MazeSnapshotRepo) ByTable(ctx context.Context, tableID uuid.UUID) (*maze.MazeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var doc struct {
		Snapshot string `bson:"snapshot"`
	}
	if err := r.collection.FindOne(ctx, bson.M{"_id": tableID.String()}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, i.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("loading maze snapshot for table %s: %w", tableID, err)
	}

	res, err := maze.Deserialize([]byte(doc.Snapshot))
	if err != nil {
		return nil, fmt.Errorf("decoding maze snapshot for table %s: %w", tableID, err)
	}
	return res, nil
}

// Delete removes the snapshot document for a table, if any.
func (r *MazeSnapshotRepo) Delete(ctx context.Context, tableID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": tableID.String()}); err != nil {
		return fmt.Errorf("deleting maze snapshot for table %s: %w", tableID, err)
	}
	return nil
}
