package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/repo"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/utils"
)

// LoginInput is the request body for login. Vertical is only meaningful
// for vertical heads.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Vertical string `json:"vertical"`
}

// Login authenticates a user and returns a session token plus the
// dashboard route the client should navigate to.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request data"})
		return
	}

	if err := utils.ValidateEmail(input.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if err := utils.ValidatePassword(input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	email := utils.Sanitize(input.Email, 254)
	vertical := utils.Sanitize(input.Vertical, 50)

	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error during login"})
		return
	}
	if err := utils.CheckPassword(user.Password, input.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
		return
	}

	var dashboard string
	switch user.Role {
	case models.RoleAdmin:
		dashboard = "/admin-dashboard"
	case models.RoleVerticalHead:
		if vertical == "" || !strings.EqualFold(user.Vertical, vertical) {
			c.JSON(http.StatusForbidden, gin.H{"msg": "Invalid vertical. You belong to " + user.Vertical})
			return
		}
		var ok bool
		dashboard, ok = h.Verticals[strings.ToLower(user.Vertical)]
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"msg": "No dashboard configured for your vertical"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"msg": "You are not authorized to login"})
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role, user.Vertical)
	if err != nil {
		log.Printf("login: token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"role":         user.Role,
		"vertical":     user.Vertical,
		"dashboard":    dashboard,
	})
}

// CheckUser reports the role and vertical for an email, so the frontend
// can pick the right login form.
func (h *Handler) CheckUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Email not provided"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}
	if err != nil {
		log.Printf("check-user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": user.Role, "vertical": user.Vertical})
}

// ForgotPassword stores a one-time reset token and mails the reset link.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request data"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, input.Email)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}
	if err != nil {
		log.Printf("forgot-password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	token := uuid.New().String()
	if err := h.Users.SetResetToken(ctx, user.Email, token); err != nil {
		log.Printf("forgot-password: store token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Could not store reset token"})
		return
	}

	link := strings.TrimRight(h.ResetURLBase, "/") + "/" + token
	if err := h.Mail.Send(user.Email, "Password Reset Request",
		"Click this link to reset your password: "+link); err != nil {
		// reset still works if the user got the link some other way
		log.Printf("forgot-password: send mail to %s: %v", user.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Password reset link sent to your email"})
}

// ResetPassword consumes a reset token and sets the new password. The
// token is cleared in the same write, so it is single-use.
func (h *Handler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request data"})
		return
	}
	if err := utils.ValidatePassword(input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Users.GetByResetToken(ctx, token); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid or expired token"})
			return
		}
		log.Printf("reset-password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Could not hash password"})
		return
	}

	if err := h.Users.ResetPassword(ctx, token, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid or expired token"})
			return
		}
		log.Printf("reset-password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Could not reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Password updated successfully"})
}
