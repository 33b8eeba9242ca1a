package model

import (
	"time"
)

// Bat is a single inventory listing. The owning user and the image path are
// immutable after creation; price, description and brand ambassador are not.
type Bat struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	BrandName       string    `db:"brand_name"`
	Price           float64   `db:"price"`
	Description     string    `db:"description"`
	BrandAmbassador string    `db:"brand_ambassador"`
	ImagePath       string    `db:"image_path"`
	CreatedAt       time.Time `db:"created_at"`
}
