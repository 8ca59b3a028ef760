package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/skillbridge-bff/admin"
	bk "github.com/hanksha/skillbridge-bff/booking"
	"github.com/hanksha/skillbridge-bff/model"
)

//go:generate mockgen -source=admin_handler.go -destination=mocks/admin_handler.go

type AdminService interface {
	Statistics(ctx context.Context, creds model.Credentials) admin.Statistics
	Users(ctx context.Context, creds model.Credentials) ([]model.User, error)
	SetUserStatus(ctx context.Context, creds model.Credentials, userID string, status model.UserStatus) error
	Students(ctx context.Context, creds model.Credentials) ([]model.StudentProfile, error)
	Bookings(ctx context.Context, creds model.Credentials) ([]model.Booking, error)
	SetBookingStatus(ctx context.Context, creds model.Credentials, id string, status model.BookingStatus) (model.Booking, error)
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, creds model.Credentials, name string) (model.Category, error)
	Activity(ctx context.Context, limit int) ([]bk.Activity, error)
}

type AdminHandler struct {
	service AdminService
}

func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Stats)

	rg.GET("/users", h.ListUsers)
	rg.PATCH("/users/:id", h.SetUserStatus)
	rg.GET("/students", h.ListStudents)

	rg.GET("/bookings", h.ListBookings)
	rg.PATCH("/bookings/:id", h.SetBookingStatus)

	rg.GET("/categories", h.ListCategories)
	rg.POST("/categories", h.CreateCategory)

	rg.GET("/activity", h.ListActivity)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.Statistics(c.Request.Context(), credentials(c)))
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context(), credentials(c))

	if err != nil {
		abortWithError(c, err, "failed to retrieve users")
		return
	}

	c.IndentedJSON(http.StatusOK, users)
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	var body statusRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	id := c.Param("id")

	if err := h.service.SetUserStatus(c.Request.Context(), credentials(c), id, model.UserStatus(body.Status)); err != nil {
		abortWithError(c, err, "failed to update user status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": body.Status})
}

func (h *AdminHandler) ListStudents(c *gin.Context) {
	students, err := h.service.Students(c.Request.Context(), credentials(c))

	if err != nil {
		abortWithError(c, err, "failed to retrieve students")
		return
	}

	c.IndentedJSON(http.StatusOK, students)
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.service.Bookings(c.Request.Context(), credentials(c))

	if err != nil {
		abortWithError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *AdminHandler) SetBookingStatus(c *gin.Context) {
	var body statusRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	updated, err := h.service.SetBookingStatus(c.Request.Context(), credentials(c), c.Param("id"), model.BookingStatus(body.Status))

	if err != nil {
		abortWithError(c, err, "failed to update booking")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())

	if err != nil {
		abortWithError(c, err, "failed to retrieve categories")
		return
	}

	c.IndentedJSON(http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var body model.Category

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), credentials(c), body.Name)

	if err != nil {
		abortWithError(c, err, "failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) ListActivity(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
		return
	}

	activity, err := h.service.Activity(c.Request.Context(), limit)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve activity"})
		return
	}

	c.IndentedJSON(http.StatusOK, activity)
}
