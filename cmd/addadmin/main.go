package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"adhkari/config"
	"adhkari/db"
	"adhkari/engagement"
	"adhkari/models"
	"adhkari/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Parse command line flags
	email := flag.String("email", "", "Admin email (required)")
	password := flag.String("password", "", "Admin password (required)")
	country := flag.String("country", "Saudi Arabia", "Admin country")
	configPath := flag.String("config", "config/config.prod.yml", "Path to config file")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Error: email and password are required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection(db.UsersCollection)
	var existing models.User
	err = collection.FindOne(ctx, bson.M{"email": *email}).Decode(&existing)
	if err == nil {
		log.Fatalf("User %s already exists", *email)
	}
	if err != mongo.ErrNoDocuments {
		log.Fatalf("Database error: %v", err)
	}

	hashedPassword, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Email:                *email,
		Password:             hashedPassword,
		Role:                 models.RoleAdmin,
		SubscriptionTier:     models.TierGold,
		SubscriptionStatus:   models.SubscriptionActive,
		Country:              *country,
		Language:             models.LangArabic,
		IsEmailVerified:      true,
		UnlockedGifts:        []string{},
		Streak:               1,
		NotificationsEnabled: true,
		LastActiveDate:       time.Now().Format(engagement.DateLayout),
		CreatedAt:            time.Now(),
	}

	if _, err := collection.InsertOne(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin %s created\n", *email)
}
