package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the console queries depend on. Safe to
// run on every startup; Mongo treats existing identical indexes as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"subcategories": {
			{Keys: bson.D{{Key: "category_id", Value: 1}}},
		},
		"services": {
			{Keys: bson.D{{Key: "provider_id", Value: 1}}},
			{Keys: bson.D{{Key: "archived", Value: 1}}},
		},
		"bookings": {
			{Keys: bson.D{{Key: "service_id", Value: 1}}},
			{Keys: bson.D{{Key: "provider_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		"handymen": {
			{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		},
		"documents": {
			{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		},
		"withdrawals": {
			{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		},
		"coupons": {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
