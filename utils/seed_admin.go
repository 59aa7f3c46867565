package utils

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SeedAdminAccount makes sure the back-office account from the environment
// exists. Existing accounts are left untouched, including ones still on the
// legacy hash scheme; those migrate on their next login.
func SeedAdminAccount(ctx context.Context, adminsCol *mongo.Collection) (bool, error) {
	username := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_USERNAME")))
	pass := os.Getenv("ADMIN_PASSWORD")

	if username == "" || pass == "" {
		return false, fmt.Errorf("missing ADMIN_USERNAME or ADMIN_PASSWORD env vars")
	}

	hash, err := HashPassword(pass)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()

	// Only insert if it doesn't exist
	filter := bson.M{"username": username}
	update := bson.M{
		"$setOnInsert": bson.M{
			"username":     username,
			"passwordHash": hash,
			"createdAt":    now,
			"updatedAt":    now,
		},
	}

	opts := options.UpdateOne().SetUpsert(true)

	res, err := adminsCol.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, fmt.Errorf("seed admin upsert failed: %w", err)
	}

	return res.UpsertedCount == 1, nil
}
