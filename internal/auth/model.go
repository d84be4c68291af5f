package auth

import "time"

// Admin is the only kind of account: whoever publishes the menu.
type Admin struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
}
