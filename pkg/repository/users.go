package repository

import (
	"context"
	"errors"
	"time"

	"github.com/example/foodcourt/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (m *MongoRepository) InsertUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := m.users().InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *MongoRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.findUser(ctx, bson.M{"_id": id})
}

func (m *MongoRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

// FindUserByVerificationCode matches only unexpired codes.
func (m *MongoRepository) FindUserByVerificationCode(ctx context.Context, code string) (*models.User, error) {
	return m.findUser(ctx, bson.M{
		"verificationCode":   code,
		"verificationExpiry": bson.M{"$gt": time.Now()},
	})
}

// FindUserByResetToken matches only unexpired tokens.
func (m *MongoRepository) FindUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	return m.findUser(ctx, bson.M{
		"resetToken":       token,
		"resetTokenExpiry": bson.M{"$gt": time.Now()},
	})
}

func (m *MongoRepository) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := m.users().FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *MongoRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now()
	res, err := m.users().UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkUserVerified flips the verification flag and consumes the code.
func (m *MongoRepository) MarkUserVerified(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.users().UpdateByID(ctx, id, bson.M{
		"$set":   bson.M{"isVerified": true, "updatedAt": time.Now()},
		"$unset": bson.M{"verificationCode": "", "verificationExpiry": ""},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetUserPassword replaces the password hash and consumes the reset token.
func (m *MongoRepository) ResetUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	res, err := m.users().UpdateByID(ctx, id, bson.M{
		"$set":   bson.M{"password": hashedPassword, "updatedAt": time.Now()},
		"$unset": bson.M{"resetToken": "", "resetTokenExpiry": ""},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepository) UpdateUserLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := m.users().UpdateByID(ctx, id, bson.M{"$set": bson.M{"lastLogin": at}})
	return err
}
