package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account is the identity record. RefreshTokens is the ordered list of
// currently-valid refresh tokens; membership in this list is the sole
// server-side revocation mechanism for refresh tokens.
type Account struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email         string        `bson:"email" json:"email"`
	Username      string        `bson:"username" json:"username"`
	Password      string        `bson:"password" json:"-"` // bcrypt digest, never serialized
	FirstName     string        `bson:"firstName" json:"firstName"`
	LastName      string        `bson:"lastName" json:"lastName"`
	RefreshTokens []string      `bson:"refreshTokens" json:"-"`
}
