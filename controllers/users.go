package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/repo"
	"github.com/VishnuKumar2311019/NSS-Website-Backend/utils"
)

// AddUserInput is the admin request to create an account.
type AddUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Vertical string `json:"vertical"`
}

// UpdateUserInput addresses a user by their current email; empty fields
// are left unchanged.
type UpdateUserInput struct {
	ExistingEmail string `json:"existingEmail"`
	NewEmail      string `json:"newEmail"`
	NewPassword   string `json:"newPassword"`
	NewRole       string `json:"newRole"`
	NewVertical   string `json:"newVertical"`
}

// AddUser creates a user account. Admin only.
func (h *Handler) AddUser(c *gin.Context) {
	var input AddUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	if input.Email == "" || input.Password == "" || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields."})
		return
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := utils.ValidatePassword(input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := utils.ValidateRole(input.Role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if input.Role == models.RoleVerticalHead {
		if input.Vertical == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vertical name is required for vertical head."})
			return
		}
		if err := utils.ValidateVertical(input.Vertical); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Email:    utils.Sanitize(input.Email, 254),
		Password: hash,
		Role:     input.Role,
	}
	if input.Role == models.RoleVerticalHead {
		user.Vertical = utils.Sanitize(input.Vertical, 50)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Users.Create(ctx, user)
	switch {
	case errors.Is(err, repo.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	case errors.Is(err, repo.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vertical name is required for vertical head."})
		return
	case err != nil:
		log.Printf("add-user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User " + user.Email + " added"})
}

// UpdateUser changes email, password, role or vertical. Admin only.
func (h *Handler) UpdateUser(c *gin.Context) {
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	patch := repo.UserPatch{}
	if input.NewEmail != "" {
		if err := utils.ValidateEmail(input.NewEmail); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		email := utils.Sanitize(input.NewEmail, 254)
		patch.Email = &email
	}
	if input.NewPassword != "" {
		if err := utils.ValidatePassword(input.NewPassword); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		hash, err := utils.HashPassword(input.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		patch.PasswordHash = &hash
	}
	if input.NewRole != "" {
		if err := utils.ValidateRole(input.NewRole); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.Role = &input.NewRole
	}
	if input.NewVertical != "" {
		vertical := utils.Sanitize(input.NewVertical, 50)
		patch.Vertical = &vertical
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Users.UpdateByEmail(ctx, input.ExistingEmail, patch)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	case errors.Is(err, repo.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vertical name is required for vertical head."})
		return
	case err != nil:
		log.Printf("update-user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// DeleteUser removes an account by email. Admin only.
func (h *Handler) DeleteUser(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Users.DeleteByEmail(ctx, input.Email)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("delete-user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// GetUsers lists every account, password hashes excluded. Admin only.
func (h *Handler) GetUsers(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		log.Printf("get-users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}
