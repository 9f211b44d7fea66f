package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Toxic209/noteForge/internal/server/auth"
)

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=32"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"fname" validate:"required"`
	LastName  string `json:"lname" validate:"required"`
}

type loginRequest struct {
	// Identifier is a username or, when it contains "@", an email.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type updateUsernameRequest struct {
	NewUsername string `json:"newUsername" validate:"required,min=3,max=32"`
}

type updateEmailRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8"`
	Password    string `json:"password" validate:"required"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	reg, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		s.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "user registered", reg)
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	userID, err := s.users.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidityDur)
	if err != nil {
		s.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "login successful", gin.H{
		"userId":      userID,
		"accessToken": token,
	})
}

func (s *Server) profile(c *gin.Context) {
	profile, err := s.users.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "user profile", profile)
}

func (s *Server) deleteUser(c *gin.Context) {
	err := s.users.Delete(c.Request.Context(), requesterID(c), c.Param("userId"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "user deleted", nil)
}

func (s *Server) updateUsername(c *gin.Context) {
	var req updateUsernameRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	if err := s.users.UpdateUsername(c.Request.Context(), requesterID(c), req.NewUsername); err != nil {
		s.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "username updated", nil)
}

func (s *Server) updateEmail(c *gin.Context) {
	var req updateEmailRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	if err := s.users.UpdateEmail(c.Request.Context(), requesterID(c), req.NewEmail, req.Password); err != nil {
		s.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "email updated", nil)
}

func (s *Server) updatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	if err := s.users.UpdatePassword(c.Request.Context(), requesterID(c), req.NewPassword, req.Password); err != nil {
		s.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "password updated", nil)
}
