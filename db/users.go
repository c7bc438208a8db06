package db

import (
	"context"
	"fmt"
	"time"

	"adhkari/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindUserByEmail retrieves a user record by its unique email key
func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := GetCollection(UsersCollection).FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no user found for email: %s", email)
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID retrieves a user record by id
func FindUserByID(id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := GetCollection(UsersCollection).FindOne(context.Background(), bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no user found for id: %s", id.Hex())
		}
		return nil, err
	}
	return &user, nil
}

// InsertUser creates a new user record and returns its id
func InsertUser(user models.User) (primitive.ObjectID, error) {
	result, err := GetCollection(UsersCollection).InsertOne(context.Background(), user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// ReplaceUser persists a full replacement of the user record. Engagement
// updates flow through here: the caller computes the new value and writes it
// back whole (last write wins for a single session per user).
func ReplaceUser(user models.User) error {
	_, err := GetCollection(UsersCollection).ReplaceOne(context.Background(), bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("failed to replace user %s: %w", user.ID.Hex(), err)
	}
	return nil
}

// ListUsers returns all user records
func ListUsers() ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := GetCollection(UsersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
