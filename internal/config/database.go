package config

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type MongoDBConfig struct {
	URI      string
	Database string
}

func NewMongoDBConfig(logger *zap.Logger) *MongoDBConfig {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		logger.Fatal("MONGO_URI not set")
	}
	database := os.Getenv("MONGO_DB")
	if database == "" {
		database = "zamcare"
	}
	return &MongoDBConfig{URI: uri, Database: database}
}

type MongoDBClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBClient(lc fx.Lifecycle, config *MongoDBConfig, logger *zap.Logger) (*MongoDBClient, *mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(config.URI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}

	logger.Info("Connected to MongoDB", zap.String("database", config.Database))

	lc.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			logger.Info("Closing MongoDB connection ...")
			return client.Disconnect(stopCtx)
		},
	})

	db := client.Database(config.Database)
	UniqueTransactionIndex(db.Collection("donations"), logger)
	UniqueEmailIndex(db.Collection("users"), logger)
	return &MongoDBClient{Client: client, Database: db}, db, nil
}

// UniqueEmailIndex backs the duplicate-registration check at the database
// level; the service-level lookup alone races under concurrent signups.
func UniqueEmailIndex(collection *mongo.Collection, logger *zap.Logger) {
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Fatal("Failed to create unique index on user email", zap.Error(err))
	}
}

// UniqueTransactionIndex enforces global uniqueness of donation transaction IDs.
// Sparse so pre-existing documents without the field do not collide.
func UniqueTransactionIndex(collection *mongo.Collection, logger *zap.Logger) {
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"transactionId": 1},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Fatal("Failed to create unique index on transaction ID", zap.Error(err))
	}
}

func (c *MongoDBClient) GetCollection(collectionName string) *mongo.Collection {
	return c.Database.Collection(collectionName)
}
