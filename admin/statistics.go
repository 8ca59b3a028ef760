package admin

import (
	"time"

	"github.com/hanksha/skillbridge-bff/model"
)

// categoryChartSize is how many categories the tutors-per-category chart shows.
const categoryChartSize = 6

type Statistics struct {
	TotalUsers        int             `json:"totalUsers"`
	TotalTutors       int             `json:"totalTutors"`
	TotalBookings     int             `json:"totalBookings"`
	TotalCategories   int             `json:"totalCategories"`
	BookingsPerMonth  []MonthCount    `json:"bookingsPerMonth"`
	TutorsPerCategory []CategoryCount `json:"tutorsPerCategory"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

func summarize(users []model.User, bookings []model.Booking, categories []model.Category, tutors []model.TutorProfile) Statistics {
	return Statistics{
		TotalUsers:        len(users),
		TotalTutors:       len(tutors),
		TotalBookings:     len(bookings),
		TotalCategories:   len(categories),
		BookingsPerMonth:  bookingsPerMonth(bookings),
		TutorsPerCategory: tutorsPerCategory(categories, tutors),
	}
}

// bookingsPerMonth buckets bookings by calendar month of creation regardless
// of year. Bookings without a creation time are skipped.
func bookingsPerMonth(bookings []model.Booking) []MonthCount {
	counts := make([]MonthCount, 12)

	for i := range counts {
		counts[i].Month = time.Month(i + 1).String()[:3]
	}

	for _, b := range bookings {
		if b.CreatedAt == nil || b.CreatedAt.IsZero() {
			continue
		}
		counts[b.CreatedAt.Month()-1].Count++
	}

	return counts
}

func tutorsPerCategory(categories []model.Category, tutors []model.TutorProfile) []CategoryCount {
	if len(categories) > categoryChartSize {
		categories = categories[:categoryChartSize]
	}

	counts := make([]CategoryCount, 0, len(categories))

	for _, category := range categories {
		count := 0

		for _, tutor := range tutors {
			if len(category.ID) != 0 && tutor.CategoryID == category.ID {
				count++
			}
		}

		counts = append(counts, CategoryCount{Category: category.Name, Count: count})
	}

	return counts
}
