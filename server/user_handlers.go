package server

import (
	"fmt"
	"net/http"

	"github.com/example/foodcourt/pkg/auth"
	"github.com/example/foodcourt/pkg/user"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const cookieMaxAge = 7 * 24 * 60 * 60 // seconds

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Contact  string `json:"contact" validate:"required,min=7"`
}

func (s *Server) signup(c *gin.Context) {
	var req signupRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	u, err := s.users.Signup(c.Request.Context(), user.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Contact:  req.Contact,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	if !s.issueSession(c, u.ID.Hex()) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "account created successfully",
		"user":    u,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	u, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if !s.issueSession(c, u.ID.Hex()) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("welcome back %s", u.Name),
		"user":    u,
	})
}

func (s *Server) logout(c *gin.Context) {
	// Clearing the transient cart is part of session teardown. Best effort:
	// logout must succeed even with a missing or expired token.
	userID := auth.UserID(c)
	if userID == "" {
		if token, err := c.Cookie("token"); err == nil {
			userID, _ = s.tokens.Verify(token)
		}
	}
	if userID != "" {
		if err := s.carts.Clear(c.Request.Context(), userID); err != nil {
			s.logger.Warn("failed to clear cart on logout", zap.String("user_id", userID), zap.Error(err))
		}
	}
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out successfully"})
}

type verifyEmailRequest struct {
	VerificationCode string `json:"verificationCode" validate:"required,len=6"`
}

func (s *Server) verifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	u, err := s.users.VerifyEmail(c.Request.Context(), req.VerificationCode)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "email verified successfully",
		"user":    u,
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *Server) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	if err := s.users.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "password reset link sent to your email",
	})
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

func (s *Server) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	if err := s.users.ResetPassword(c.Request.Context(), c.Param("token"), req.NewPassword); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "password reset successfully",
	})
}

func (s *Server) checkAuth(c *gin.Context) {
	userID, ok := s.currentUserID(c)
	if !ok {
		return
	}

	u, err := s.users.Get(c.Request.Context(), userID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

type updateProfileRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Country        string `json:"country"`
	ProfilePicture []byte `json:"profilePicture"`
}

func (s *Server) updateProfile(c *gin.Context) {
	userID, ok := s.currentUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	u, err := s.users.UpdateProfile(c.Request.Context(), userID, user.ProfileUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "profile updated successfully",
		"user":    u,
	})
}

// bindAndValidate decodes the JSON body and runs schema validation, writing a
// per-field 400 response on failure.
func (s *Server) bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrors(err)})
		return false
	}
	return true
}

func (s *Server) currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "user not authenticated"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func (s *Server) issueSession(c *gin.Context, userID string) bool {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		s.writeError(c, err)
		return false
	}
	c.SetCookie("token", token, cookieMaxAge, "/", "", false, true)
	return true
}
