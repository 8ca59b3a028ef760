package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hanksha/skillbridge-bff/model"
	"github.com/patrickmn/go-cache"
)

const (
	categoriesCacheKey = "categories"
	categoriesTTL      = time.Minute
	profileCachePrefix = "profile:"
)

func (c *Client) GetTutorProfiles(ctx context.Context, query model.TutorQuery) ([]model.TutorProfile, error) {
	profilesURL, err := c.apiURL("api", "tutor", "profile")

	if err != nil {
		return nil, err
	}

	q := url.Values{}

	if search := strings.TrimSpace(query.Search); len(search) != 0 {
		q.Add("search", search)
	}
	if len(query.CategoryID) != 0 {
		q.Add("categoryId", query.CategoryID)
	}
	if query.Rating > 0 {
		q.Add("rating", strconv.FormatFloat(query.Rating, 'f', -1, 64))
	}
	if query.Price > 0 {
		q.Add("price", strconv.FormatFloat(query.Price, 'f', -1, 64))
	}

	if len(q) != 0 {
		profilesURL += "?" + q.Encode()
	}

	body, err := c.do(ctx, http.MethodGet, profilesURL, model.Credentials{}, nil)

	if err != nil {
		return nil, err
	}

	return decodeList[model.TutorProfile](body, "tutors")
}

func (c *Client) GetAllTutorProfiles(ctx context.Context) ([]model.TutorProfile, error) {
	return c.GetTutorProfiles(ctx, model.TutorQuery{})
}

func (c *Client) GetTutorProfile(ctx context.Context, id string) (*model.TutorProfile, error) {
	profileURL, err := c.apiURL("api", "tutor", "profile", id)

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, profileURL, model.Credentials{}, nil)

	if err != nil {
		return nil, err
	}

	profile, err := decodeOne[model.TutorProfile](body)

	if err != nil {
		return nil, err
	}

	if profile == nil || len(profile.ID) == 0 {
		return nil, ErrNotFound
	}

	return profile, nil
}

// GetMyProfile returns the tutor profile of the session's user. Profiles are
// cached per cookie; Invalidate clears them.
func (c *Client) GetMyProfile(ctx context.Context, creds model.Credentials) (*model.TutorProfile, error) {
	if err := requireSession(creds); err != nil {
		return nil, err
	}

	if cached, found := c.cache.Get(c.cacheKey(profileCachePrefix, creds.Cookie)); found {
		return cached.(*model.TutorProfile), nil
	}

	profileURL, err := c.apiURL("api", "my", "profile")

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, profileURL, creds, nil)

	if err != nil {
		return nil, err
	}

	profile, err := decodeOne[model.TutorProfile](body, "profile")

	if err != nil {
		return nil, err
	}

	if profile == nil || len(profile.ID) == 0 {
		return nil, ErrNotFound
	}

	c.cache.Set(c.cacheKey(profileCachePrefix, creds.Cookie), profile, cache.DefaultExpiration)

	return profile, nil
}

func (c *Client) GetCategories(ctx context.Context) ([]model.Category, error) {
	if cached, found := c.cache.Get(categoriesCacheKey); found {
		return cached.([]model.Category), nil
	}

	categoriesURL, err := c.apiURL("api", "categories")

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, categoriesURL, model.Credentials{}, nil)

	if err != nil {
		return nil, err
	}

	categories, err := decodeList[model.Category](body, "categories")

	if err != nil {
		return nil, err
	}

	c.cache.Set(categoriesCacheKey, categories, categoriesTTL)

	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, creds model.Credentials, name string) (model.Category, error) {
	if err := requireSession(creds); err != nil {
		return model.Category{}, err
	}

	categoriesURL, err := c.apiURL("api", "categories")

	if err != nil {
		return model.Category{}, err
	}

	body, err := c.do(ctx, http.MethodPost, categoriesURL, creds, model.Category{Name: name})

	if err != nil {
		return model.Category{}, err
	}

	c.cache.Delete(categoriesCacheKey)

	category, err := decodeOne[model.Category](body, "category")

	if err != nil {
		return model.Category{}, err
	}

	if category == nil {
		return model.Category{}, errors.New("empty category in response")
	}

	return *category, nil
}

// UpsertTutorProfile creates the caller's tutor profile, or updates it when
// exists is set. The cached profile of the session is dropped either way.
func (c *Client) UpsertTutorProfile(ctx context.Context, creds model.Credentials, input model.TutorProfileInput, exists bool) (*model.TutorProfile, error) {
	if err := requireSession(creds); err != nil {
		return nil, err
	}

	profileURL, err := c.apiURL("api", "tutor", "profile")

	if err != nil {
		return nil, err
	}

	method := http.MethodPost

	if exists {
		method = http.MethodPut
	}

	body, err := c.do(ctx, method, profileURL, creds, input)

	if err != nil {
		return nil, err
	}

	c.cache.Delete(c.cacheKey(profileCachePrefix, creds.Cookie))

	profile, err := decodeOne[model.TutorProfile](body, "profile")

	if err != nil || profile == nil || len(profile.ID) == 0 {
		return nil, nil
	}

	return profile, nil
}
