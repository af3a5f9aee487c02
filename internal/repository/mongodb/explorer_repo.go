package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gstrex/internal/domain"
	"gstrex/internal/port"
)

// defaultQueryLimit bounds ad-hoc queries when the caller asks for nothing.
const defaultQueryLimit = 5

// maxQueryLimit caps ad-hoc queries regardless of what the caller asks for.
const maxQueryLimit = 1000

type explorerRepo struct {
	db *mongo.Database
}

// NewExplorerRepo creates a MongoDB-backed ExplorerStore.
func NewExplorerRepo(db *mongo.Database) port.ExplorerStore {
	return &explorerRepo{db: db}
}

func (r *explorerRepo) ListCollections(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("explorerRepo.ListCollections: %w", err)
	}
	return names, nil
}

func (r *explorerRepo) CollectionFields(ctx context.Context, collection string) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: collection}})
	if err != nil {
		return nil, fmt.Errorf("explorerRepo.CollectionFields: %w", err)
	}
	if len(names) == 0 {
		return nil, domain.ErrCollectionNotFound
	}

	var sample bson.D
	err = r.db.Collection(collection).FindOne(ctx, bson.D{}).Decode(&sample)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCollectionEmpty
		}
		return nil, fmt.Errorf("explorerRepo.CollectionFields: %w", err)
	}

	fields := make([]string, 0, len(sample))
	for _, elem := range sample {
		fields = append(fields, elem.Key)
	}
	return fields, nil
}

func (r *explorerRepo) Query(ctx context.Context, collection string, fields []string, limit int64) ([]map[string]any, error) {
	if limit <= 0 {
		limit = defaultQueryLimit
	}
	if limit > maxQueryLimit {
		limit = maxQueryLimit
	}

	opts := options.Find().SetLimit(limit)
	if len(fields) > 0 {
		projection := bson.D{}
		for _, f := range fields {
			projection = append(projection, bson.E{Key: f, Value: 1})
		}
		opts.SetProjection(projection)
	}

	cursor, err := r.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("explorerRepo.Query: %w", err)
	}

	var results []map[string]any
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("explorerRepo.Query decode: %w", err)
	}
	for _, rec := range results {
		flattenObjectID(rec)
	}
	return results, nil
}

func (r *explorerRepo) GetDocument(ctx context.Context, collection, documentID string) (map[string]any, error) {
	oid, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return nil, domain.ErrInvalidDocumentID
	}

	var doc map[string]any
	err = r.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("explorerRepo.GetDocument: %w", err)
	}
	flattenObjectID(doc)
	return doc, nil
}

func (r *explorerRepo) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

// flattenObjectID replaces a primitive.ObjectID identifier with its hex
// string so results serialize and export cleanly.
func flattenObjectID(rec map[string]any) {
	if oid, ok := rec["_id"].(primitive.ObjectID); ok {
		rec["_id"] = oid.Hex()
	}
}
