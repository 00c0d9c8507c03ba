package http

import (
	"errors"
	"net/http"

	"github.com/dkeye/Meet/internal/app"
	"github.com/dkeye/Meet/internal/domain"
	"github.com/gin-gonic/gin"
)

type ContactResponse struct {
	Message string `json:"message"`
}

func handleContact(contact *app.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.ContactMessage
		// Validation happens in the service so the messages stay in one place.
		if err := c.ShouldBindJSON(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, ContactResponse{Message: "Request body too large"})
				return
			}
			c.JSON(http.StatusBadRequest, ContactResponse{Message: "All fields are required"})
			return
		}

		err := contact.Submit(c.Request.Context(), req)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, ContactResponse{Message: "Email sent successfully"})
		case errors.Is(err, domain.ErrContactIncomplete):
			c.JSON(http.StatusBadRequest, ContactResponse{Message: "All fields are required"})
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, ContactResponse{Message: "Invalid email address"})
		default:
			c.JSON(http.StatusInternalServerError, ContactResponse{Message: "Failed to send email"})
		}
	}
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
