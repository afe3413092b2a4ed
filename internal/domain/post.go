package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post owner is a free-text identifier, not a foreign key into the
// accounts collection.
type Post struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title   string        `bson:"title" json:"title"`
	Content string        `bson:"content" json:"content"`
	Owner   string        `bson:"owner" json:"owner"`
}
