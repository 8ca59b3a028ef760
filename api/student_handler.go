package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/skillbridge-bff/booking"
	"github.com/hanksha/skillbridge-bff/model"
)

//go:generate mockgen -source=student_handler.go -destination=mocks/student_handler.go

type StudentService interface {
	StudentBookings(ctx context.Context, creds model.Credentials, refresh bool) ([]*bk.View, error)
	UpdateStatus(ctx context.Context, creds model.Credentials, id string, target model.BookingStatus) (*bk.View, error)
	SubmitReview(ctx context.Context, creds model.Credentials, id string, rating int, comment string) (*bk.View, error)
	BookSlot(ctx context.Context, creds model.Credentials, tutorProfileID, slotID string) (*bk.View, error)
}

type StudentHandler struct {
	service StudentService
}

func NewStudentHandler(service StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

func (h *StudentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.POST("/bookings", h.Book)
	rg.PATCH("/bookings/:id", h.UpdateStatus)
	rg.POST("/bookings/:id/review", h.Review)
}

func (h *StudentHandler) ListBookings(c *gin.Context) {
	refresh := c.Query("refresh") == "true"

	views, err := h.service.StudentBookings(c.Request.Context(), credentials(c), refresh)

	if err != nil {
		abortWithError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, views)
}

type bookRequest struct {
	TutorProfileID string `json:"tutorProfileId" binding:"required"`
	SlotID         string `json:"slotId" binding:"required"`
}

func (h *StudentHandler) Book(c *gin.Context) {
	var body bookRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "tutorProfileId and slotId are required"})
		return
	}

	view, err := h.service.BookSlot(c.Request.Context(), credentials(c), body.TutorProfileID, body.SlotID)

	if err != nil {
		abortWithError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, view)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *StudentHandler) UpdateStatus(c *gin.Context) {
	var body statusRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	view, err := h.service.UpdateStatus(c.Request.Context(), credentials(c), c.Param("id"), model.BookingStatus(body.Status))

	if err != nil {
		abortWithError(c, err, "failed to update booking")
		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *StudentHandler) Review(c *gin.Context) {
	var body reviewRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	view, err := h.service.SubmitReview(c.Request.Context(), credentials(c), c.Param("id"), body.Rating, body.Comment)

	if err != nil {
		abortWithError(c, err, "failed to submit review")
		return
	}

	c.JSON(http.StatusCreated, view)
}
