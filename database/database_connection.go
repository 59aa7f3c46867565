package database

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var (
	connectOnce sync.Once
	dbClient    *mongo.Client
	dbName      string
	connectErr  error
)

// Connect establishes the pooled client once for the whole process and pings
// the deployment so misconfiguration fails at startup.
func Connect(uri, databaseName string) error {
	connectOnce.Do(func() {
		serverAPI := options.ServerAPI(options.ServerAPIVersion1)
		opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
		client, err := mongo.Connect(opts)
		if err != nil {
			connectErr = err
			return
		}
		if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
			connectErr = err
			return
		}
		dbClient = client
		dbName = databaseName
		logrus.WithField("database", databaseName).Info("connected to MongoDB")
	})
	return connectErr
}

func OpenCollection(collectionName string) *mongo.Collection {
	return dbClient.Database(dbName).Collection(collectionName)
}

// EnsureIndexes creates the unique indexes the duplicate-key error mapping
// relies on (409 responses for duplicate category names and admin usernames).
func EnsureIndexes(ctx context.Context) error {
	_, err := OpenCollection("categories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = OpenCollection("admin_accounts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = OpenCollection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "itemNo", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
