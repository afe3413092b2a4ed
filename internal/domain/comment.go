package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment references its post by id. There is no referential integrity
// beyond the cascade delete that runs when the post is removed.
type Comment struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Owner   string        `bson:"owner" json:"owner"`
	Content string        `bson:"content" json:"content"`
	PostID  bson.ObjectID `bson:"postId" json:"postId"`
}
