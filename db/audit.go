package db

import (
	"context"
	"log"
	"time"

	"adhkari/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxAuditLogEntries = 100

// AppendAuditLog records an administrative action and trims the collection to
// the newest entries. Logging is best effort: a failed write never blocks the
// admin action itself.
func AppendAuditLog(adminEmail, action string) {
	coll := GetCollection(AuditLogsCollection)
	entry := models.AuditLog{
		ID:         primitive.NewObjectID(),
		Timestamp:  time.Now(),
		AdminEmail: adminEmail,
		Action:     action,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := coll.InsertOne(ctx, entry); err != nil {
		log.Printf("Error writing audit log: %v", err)
		return
	}

	// Trim everything past the newest maxAuditLogEntries entries
	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetSkip(int64(maxAuditLogEntries)).
		SetProjection(bson.M{"_id": 1})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Error trimming audit log: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var stale []models.AuditLog
	if err := cursor.All(ctx, &stale); err != nil {
		log.Printf("Error trimming audit log: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(stale))
	for _, entry := range stale {
		ids = append(ids, entry.ID)
	}
	if _, err := coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		log.Printf("Error trimming audit log: %v", err)
	}
}

// ListAuditLogs returns the retained audit trail, newest first
func ListAuditLogs() ([]models.AuditLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(maxAuditLogEntries)
	cursor, err := GetCollection(AuditLogsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
