package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

// Collection names used by the record stores.
const (
	UsersCollection       = "users"
	FoodLogsCollection    = "food_logs"
	WaterLogsCollection   = "water_logs"
	WeightLogsCollection  = "weight_logs"
	WorkoutLogsCollection = "workout_logs"
)

func Connect(mongoURI, dbName string) error {
	// Use longer timeout for Atlas connections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	// Ping the database with a separate context
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return err
	}

	Client = client
	DB = client.Database(dbName)

	log.Println("✅ Connected to MongoDB")
	return nil
}

// Index key documents must be bson.D: the driver rejects multi-key maps
// because key order is significant in compound indexes.

func uniqueEmailIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

func ownerTimestampIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
	}
}

// EnsureIndexes creates the unique email index on users and the per-user
// timestamp indexes the log listings and analytics queries rely on.
func EnsureIndexes(ctx context.Context) error {
	_, err := DB.Collection(UsersCollection).Indexes().CreateOne(ctx, uniqueEmailIndex())
	if err != nil {
		return err
	}

	for _, coll := range []string{FoodLogsCollection, WaterLogsCollection, WeightLogsCollection, WorkoutLogsCollection} {
		_, err := DB.Collection(coll).Indexes().CreateOne(ctx, ownerTimestampIndex())
		if err != nil {
			return err
		}
	}
	return nil
}

func Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return Client.Disconnect(ctx)
}
