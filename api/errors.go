package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/skillbridge-bff/admin"
	"github.com/hanksha/skillbridge-bff/apiclient"
	bk "github.com/hanksha/skillbridge-bff/booking"
	"github.com/hanksha/skillbridge-bff/profile"
	"github.com/hanksha/skillbridge-bff/slot"
)

var invalidInput = []error{
	bk.ErrInvalidReview,
	slot.ErrInvalidSlot,
	admin.ErrInvalidStatus,
	admin.ErrInvalidCategory,
	profile.ErrInvalidProfile,
}

var notFound = []error{
	bk.ErrBookingNotFound,
	slot.ErrSlotNotFound,
	apiclient.ErrNotFound,
}

// abortWithError records err on the context and writes the status it maps
// to. Local validation errors carry their own message; remote failures fall
// back to the message of the remote API, then to fallback.
func abortWithError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	switch {
	case matchesAny(err, invalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case bk.IsConflict(err) || errors.Is(err, slot.ErrSlotBooked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case matchesAny(err, notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": apiclient.Message(err, "not found")})
	case errors.Is(err, apiclient.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": apiclient.Message(err, "not allowed")})
	case errors.Is(err, apiclient.ErrUnauthorized) || errors.Is(err, apiclient.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": apiclient.Message(err, fallback)})
	}
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
