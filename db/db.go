package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductCollection      *mongo.Collection
	CartCollection         *mongo.Collection
	VariantImageCollection *mongo.Collection
	UserCollection         *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	ClientOptions := options.Client().ApplyURI(uri)
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ProductCollection = Client.Database("storedb").Collection("products")
	CartCollection = Client.Database("storedb").Collection("carts")
	VariantImageCollection = Client.Database("storedb").Collection("variantimages")
	UserCollection = Client.Database("storedb").Collection("users")
}
