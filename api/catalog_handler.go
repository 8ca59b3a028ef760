package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/skillbridge-bff/model"
)

//go:generate mockgen -source=catalog_handler.go -destination=mocks/catalog_handler.go

type CatalogSource interface {
	GetTutorProfiles(ctx context.Context, query model.TutorQuery) ([]model.TutorProfile, error)
	GetTutorProfile(ctx context.Context, id string) (*model.TutorProfile, error)
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetTutorReviews(ctx context.Context, creds model.Credentials, userID string) ([]model.Review, error)
}

// CatalogHandler serves the public tutor directory. A session cookie is
// forwarded when present but never required.
type CatalogHandler struct {
	source CatalogSource
	slots  SlotService
}

func NewCatalogHandler(source CatalogSource, slots SlotService) *CatalogHandler {
	return &CatalogHandler{source: source, slots: slots}
}

func (h *CatalogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/tutors", h.SearchTutors)
	rg.GET("/tutors/:id", h.GetTutor)
	rg.GET("/tutors/:id/slots", h.GetTutorSlots)
	rg.GET("/tutors/:id/reviews", h.GetTutorReviews)
	rg.GET("/categories", h.ListCategories)
}

func (h *CatalogHandler) SearchTutors(c *gin.Context) {
	query := model.TutorQuery{
		Search:     strings.TrimSpace(c.Query("search")),
		CategoryID: c.Query("categoryId"),
	}

	var err error

	if query.Rating, err = parseFilter(c.Query("rating")); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be a number"})
		return
	}

	if query.Price, err = parseFilter(c.Query("price")); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
		return
	}

	tutors, err := h.source.GetTutorProfiles(c.Request.Context(), query)

	if err != nil {
		abortWithError(c, err, "failed to retrieve tutors")
		return
	}

	c.IndentedJSON(http.StatusOK, tutors)
}

func (h *CatalogHandler) GetTutor(c *gin.Context) {
	tutor, err := h.source.GetTutorProfile(c.Request.Context(), c.Param("id"))

	if err != nil {
		abortWithError(c, err, "failed to retrieve tutor")
		return
	}

	c.IndentedJSON(http.StatusOK, tutor)
}

func (h *CatalogHandler) GetTutorSlots(c *gin.Context) {
	slots, err := h.slots.Available(c.Request.Context(), visitor(c), c.Param("id"))

	if err != nil {
		abortWithError(c, err, "failed to retrieve slots")
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

// GetTutorReviews takes a tutor profile id; reviews are stored against the
// tutor's user id.
func (h *CatalogHandler) GetTutorReviews(c *gin.Context) {
	tutor, err := h.source.GetTutorProfile(c.Request.Context(), c.Param("id"))

	if err != nil {
		abortWithError(c, err, "failed to retrieve tutor")
		return
	}

	reviews, err := h.source.GetTutorReviews(c.Request.Context(), visitor(c), tutor.UserID)

	if err != nil {
		abortWithError(c, err, "failed to retrieve reviews")
		return
	}

	c.IndentedJSON(http.StatusOK, reviews)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.source.GetCategories(c.Request.Context())

	if err != nil {
		abortWithError(c, err, "failed to retrieve categories")
		return
	}

	c.IndentedJSON(http.StatusOK, categories)
}

func visitor(c *gin.Context) model.Credentials {
	return model.Credentials{Cookie: c.GetHeader("Cookie")}
}

func parseFilter(value string) (float64, error) {
	if len(value) == 0 {
		return 0, nil
	}

	return strconv.ParseFloat(value, 64)
}
