package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/utils"
)

// Contact validates a contact-form submission and forwards it to the
// club's inbox.
func (h *Handler) Contact(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if err := utils.ValidateContact(map[string]any{
		"name":    input.Name,
		"email":   input.Email,
		"message": input.Message,
	}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := utils.Sanitize(input.Name, 100)
	email := utils.Sanitize(input.Email, 254)
	message := utils.Sanitize(input.Message, 2000)

	if h.ContactEmail == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
		return
	}

	body := "From: " + name + " <" + email + ">\n\nMessage:\n" + message
	if err := h.Mail.Send(h.ContactEmail, "New Contact Form Submission", body); err != nil {
		log.Printf("contact: send mail: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Message sent successfully!"})
}
