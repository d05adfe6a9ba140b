package models

import (
	"math"
	"strconv"
	"time"
)

// Course is a tutor-authored course sold in sections
type Course struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	TutorID          string    `json:"tutorId"`
	TutorName        string    `json:"tutorName"`
	Subject          string    `json:"subject"`
	TotalPrice       float64   `json:"totalPrice"`
	NumberOfSections int       `json:"numberOfSections"`
	PricePerSection  float64   `json:"pricePerSection"`
	AverageRating    float64   `json:"averageRating"`
	TotalReviews     int       `json:"totalReviews"`
	PreviewImage     string    `json:"previewImage,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Chunk is one purchasable section of a course
type Chunk struct {
	ID       string  `json:"id"`
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Order    int     `json:"order"`
	Price    float64 `json:"price"`
	PDFURL   string  `json:"pdfUrl,omitempty"`
}

// SectionPrice splits a course price evenly, rounded to whole currency units
func SectionPrice(totalPrice float64, sections int) float64 {
	if sections <= 0 {
		return 0
	}
	return math.Round(totalPrice / float64(sections))
}

// ChunkID builds the conventional chunk id for the section at order (1-based)
func ChunkID(courseID string, order int) string {
	return courseID + "-" + strconv.Itoa(order)
}

// AddRating folds one new review rating into the course aggregates
func (c *Course) AddRating(rating int) {
	total := c.AverageRating*float64(c.TotalReviews) + float64(rating)
	c.TotalReviews++
	c.AverageRating = total / float64(c.TotalReviews)
}
