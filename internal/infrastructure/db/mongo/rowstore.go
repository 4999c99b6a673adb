package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/ports"
)

// RowStore implements ports.RowStore over a single Mongo collection. Rows
// travel as untyped documents; the domain normalizers shape them afterwards.
type RowStore struct {
	coll *mongo.Collection
}

func NewRowStore(db *mongo.Database, collection string) *RowStore {
	return &RowStore{coll: db.Collection(collection)}
}

// buildQuery translates a ports.Filter into a Mongo query document. Filters
// address rows by the mirrored "id" column; documents store it only under
// _id, so the key is aliased on the way in just as toRow mirrors it on the
// way out.
func buildQuery(f ports.Filter) bson.M {
	q := bson.M{}
	for k, v := range f.Eq {
		q[queryKey(k)] = v
	}
	for k, set := range f.In {
		q[queryKey(k)] = bson.M{"$in": set}
	}
	for k, v := range f.Not {
		q[queryKey(k)] = bson.M{"$ne": v}
	}
	return q
}

func queryKey(k string) string {
	if k == "id" {
		return "_id"
	}
	return k
}

func buildFindOptions(f ports.Filter) *options.FindOptions {
	opts := options.Find()
	if f.OrderBy != "" {
		dir := 1
		if f.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: f.OrderBy, Value: dir}})
	}
	return opts
}

func (s *RowStore) SelectAll(ctx context.Context, f ports.Filter) ([]domain.Row, error) {
	cursor, err := s.coll.Find(ctx, buildQuery(f), buildFindOptions(f))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var rows []domain.Row
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", s.coll.Name(), err)
		}
		rows = append(rows, toRow(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor %s: %w", s.coll.Name(), err)
	}
	return rows, nil
}

func (s *RowStore) SelectOne(ctx context.Context, id any) (domain.Row, error) {
	var doc bson.M
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find one %s: %w", s.coll.Name(), err)
	}
	return toRow(doc), nil
}

func (s *RowStore) Insert(ctx context.Context, fields domain.Row) (domain.Row, error) {
	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = uuid.NewString()
	}
	if _, ok := doc["created_at"]; !ok {
		doc["created_at"] = time.Now().UTC()
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert %s: %w", s.coll.Name(), err)
	}
	return toRow(doc), nil
}

func (s *RowStore) Update(ctx context.Context, id any, fields domain.Row) (domain.Row, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bson.M
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", s.coll.Name(), err)
	}
	return toRow(doc), nil
}

func (s *RowStore) Delete(ctx context.Context, id any) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *RowStore) Count(ctx context.Context, f ports.Filter) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, buildQuery(f))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.coll.Name(), err)
	}
	return n, nil
}

// toRow converts a decoded document into a domain row: _id is mirrored under
// "id" and driver-specific scalar types are replaced with plain Go ones so
// the normalizers never see bson internals.
func toRow(doc bson.M) domain.Row {
	row := make(domain.Row, len(doc)+1)
	for k, v := range doc {
		row[k] = plainValue(v)
	}
	if id, ok := row["_id"]; ok {
		row["id"] = id
	}
	return row
}

func plainValue(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plainValue(item)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = plainValue(item)
		}
		return out
	default:
		return v
	}
}
