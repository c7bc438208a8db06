package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog records one administrative action. The collection is capped to the
// most recent 100 entries; individual entries are never deleted by hand.
type AuditLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	AdminEmail string             `bson:"adminEmail" json:"adminEmail"`
	Action     string             `bson:"action" json:"action"`
}
