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

// ListDhikr returns all live content items in storage order
func ListDhikr() ([]models.Dhikr, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := GetCollection(DhikrCollection).Find(ctx, bson.M{"isDeleted": bson.M{"$ne": true}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Dhikr
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindDhikrByID retrieves a content item by id. Tombstoned items still
// resolve; callers decide whether to surface them.
func FindDhikrByID(id primitive.ObjectID) (*models.Dhikr, error) {
	var item models.Dhikr
	err := GetCollection(DhikrCollection).FindOne(context.Background(), bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no dhikr found for id: %s", id.Hex())
		}
		return nil, err
	}
	return &item, nil
}

// InsertDhikr creates a new content item and returns its id
func InsertDhikr(item models.Dhikr) (primitive.ObjectID, error) {
	result, err := GetCollection(DhikrCollection).InsertOne(context.Background(), item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// SoftDeleteDhikr tombstones a content item. The record stays resolvable so
// nothing referencing it dangles.
func SoftDeleteDhikr(id primitive.ObjectID) error {
	result, err := GetCollection(DhikrCollection).UpdateOne(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isDeleted": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no dhikr found for id: %s", id.Hex())
	}
	return nil
}

// ListGifts returns all live gift records
func ListGifts() ([]models.Gift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := GetCollection(GiftsCollection).Find(ctx, bson.M{"isDeleted": bson.M{"$ne": true}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var gifts []models.Gift
	if err := cursor.All(ctx, &gifts); err != nil {
		return nil, err
	}
	return gifts, nil
}

// FindGiftByID retrieves a gift by id, tombstoned or not, so ids held in
// users' unlocked sets always resolve
func FindGiftByID(id primitive.ObjectID) (*models.Gift, error) {
	var gift models.Gift
	err := GetCollection(GiftsCollection).FindOne(context.Background(), bson.M{"_id": id}).Decode(&gift)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no gift found for id: %s", id.Hex())
		}
		return nil, err
	}
	return &gift, nil
}

// InsertGift creates a new gift and returns its id
func InsertGift(gift models.Gift) (primitive.ObjectID, error) {
	result, err := GetCollection(GiftsCollection).InsertOne(context.Background(), gift)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// SoftDeleteGift tombstones a gift
func SoftDeleteGift(id primitive.ObjectID) error {
	result, err := GetCollection(GiftsCollection).UpdateOne(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isDeleted": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no gift found for id: %s", id.Hex())
	}
	return nil
}
