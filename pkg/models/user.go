package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	HashedPassword     string             `bson:"password" json:"-"`
	Contact            string             `bson:"contact" json:"contact"`
	Address            string             `bson:"address" json:"address"`
	City               string             `bson:"city" json:"city"`
	Country            string             `bson:"country" json:"country"`
	ProfilePicture     string             `bson:"profilePicture" json:"profilePicture"`
	Admin              bool               `bson:"admin" json:"admin"`
	IsVerified         bool               `bson:"isVerified" json:"isVerified"`
	VerificationCode   string             `bson:"verificationCode,omitempty" json:"-"`
	VerificationExpiry time.Time          `bson:"verificationExpiry,omitempty" json:"-"`
	ResetToken         string             `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpiry   time.Time          `bson:"resetTokenExpiry,omitempty" json:"-"`
	LastLogin          time.Time          `bson:"lastLogin,omitempty" json:"lastLogin"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
