package database

import (
	"context"
	"fmt"
	"time"

	"mahatta/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance. It stays nil while the catalog is static.
var MongoClient *mongo.Client

// InitDB connects to MongoDB using AppConfig.DatabaseURL and verifies the connection.
func InitDB(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	MongoClient = client
	return client, nil
}

// CatalogCollection returns the collection holding wallpaper documents.
func CatalogCollection(client *mongo.Client) *mongo.Collection {
	return client.Database(config.AppConfig.DatabaseName).Collection(config.AppConfig.CatalogCollection)
}
