package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/skillbridge-bff/booking"
	"github.com/hanksha/skillbridge-bff/model"
)

//go:generate mockgen -source=tutor_handler.go -destination=mocks/tutor_handler.go

type TutorService interface {
	TutorBookings(ctx context.Context, creds model.Credentials, refresh bool) ([]*bk.View, error)
	Complete(ctx context.Context, creds model.Credentials, id string) (*bk.View, error)
	Reschedule(ctx context.Context, creds model.Credentials, id string) (*bk.View, error)
}

type SlotService interface {
	List(ctx context.Context, creds model.Credentials) ([]model.Slot, error)
	Available(ctx context.Context, creds model.Credentials, tutorProfileID string) ([]model.Slot, error)
	Add(ctx context.Context, creds model.Credentials, input model.SlotInput) ([]model.Slot, error)
	Delete(ctx context.Context, creds model.Credentials, slotID string) error
}

type ReviewSource interface {
	GetTutorReviews(ctx context.Context, creds model.Credentials, userID string) ([]model.Review, error)
}

type ProfileService interface {
	Get(ctx context.Context, creds model.Credentials) (*model.TutorProfile, error)
	Save(ctx context.Context, creds model.Credentials, input model.TutorProfileInput) (*model.TutorProfile, bool, error)
}

type TutorHandler struct {
	bookings TutorService
	slots    SlotService
	reviews  ReviewSource
	profiles ProfileService
}

func NewTutorHandler(bookings TutorService, slots SlotService, reviews ReviewSource, profiles ProfileService) *TutorHandler {
	return &TutorHandler{bookings: bookings, slots: slots, reviews: reviews, profiles: profiles}
}

func (h *TutorHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.POST("/bookings/:id/complete", h.Complete)
	rg.POST("/bookings/:id/reschedule", h.Reschedule)

	rg.GET("/slots", h.ListSlots)
	rg.POST("/slots", h.AddSlot)
	rg.DELETE("/slots/:id", h.DeleteSlot)

	rg.GET("/reviews", h.ListReviews)

	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", h.SaveProfile)
}

func (h *TutorHandler) ListBookings(c *gin.Context) {
	refresh := c.Query("refresh") == "true"

	views, err := h.bookings.TutorBookings(c.Request.Context(), credentials(c), refresh)

	if err != nil {
		abortWithError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, views)
}

func (h *TutorHandler) Complete(c *gin.Context) {
	view, err := h.bookings.Complete(c.Request.Context(), credentials(c), c.Param("id"))

	if err != nil {
		abortWithError(c, err, "failed to complete booking")
		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

func (h *TutorHandler) Reschedule(c *gin.Context) {
	view, err := h.bookings.Reschedule(c.Request.Context(), credentials(c), c.Param("id"))

	if err != nil {
		abortWithError(c, err, "failed to reschedule booking")
		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

func (h *TutorHandler) ListSlots(c *gin.Context) {
	slots, err := h.slots.List(c.Request.Context(), credentials(c))

	if err != nil {
		abortWithError(c, err, "failed to retrieve slots")
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

func (h *TutorHandler) AddSlot(c *gin.Context) {
	var input model.SlotInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	created, err := h.slots.Add(c.Request.Context(), credentials(c), input)

	if err != nil {
		abortWithError(c, err, "failed to add slot")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *TutorHandler) DeleteSlot(c *gin.Context) {
	if err := h.slots.Delete(c.Request.Context(), credentials(c), c.Param("id")); err != nil {
		abortWithError(c, err, "failed to delete slot")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TutorHandler) ListReviews(c *gin.Context) {
	creds := credentials(c)

	reviews, err := h.reviews.GetTutorReviews(c.Request.Context(), creds, creds.UserID)

	if err != nil {
		abortWithError(c, err, "failed to retrieve reviews")
		return
	}

	c.IndentedJSON(http.StatusOK, reviews)
}

func (h *TutorHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), credentials(c))

	if err != nil {
		abortWithError(c, err, "failed to retrieve profile")
		return
	}

	c.IndentedJSON(http.StatusOK, profile)
}

// SaveProfile answers 201 when the profile was created and 200 when an
// existing one was updated.
func (h *TutorHandler) SaveProfile(c *gin.Context) {
	var input model.TutorProfileInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	profile, created, err := h.profiles.Save(c.Request.Context(), credentials(c), input)

	if err != nil {
		abortWithError(c, err, "failed to save profile")
		return
	}

	status := http.StatusOK

	if created {
		status = http.StatusCreated
	}

	c.JSON(status, profile)
}
