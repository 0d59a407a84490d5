package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account allowed to capture and query content.
// Collection: users
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
}
