package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout represents one logged workout session owned by a single user.
// Records are immutable after creation: there is no update or delete path.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   string             `bson:"ownerId" json:"ownerId"` // Resolved from the session, never from the request body
	Date      time.Time          `bson:"date" json:"date"`       // Defaults to submission time when the client omits it
	Exercises []Exercise         `bson:"exercises" json:"exercises"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
