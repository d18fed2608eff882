package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"` // never serialized outward
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	ProfileImage string             `bson:"profileImage" json:"profileImage"`

	Notifications *Notifications `bson:"notifications,omitempty" json:"notifications,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	// Either verified=true with both fields nil, or verified=false with a
	// pending code+expiry (code may be nil again after expiry, pending resend).
	// The two code fields are always written together.
	Verified                bool       `bson:"verified" json:"verified"`
	VerificationCode        *string    `bson:"verificationCode" json:"-"`
	VerificationCodeExpires *time.Time `bson:"verificationCodeExpires" json:"-"`
}

// PublicUser is the user view returned by the auth endpoints.
type PublicUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID.Hex(),
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ProfileImage: u.ProfileImage,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
