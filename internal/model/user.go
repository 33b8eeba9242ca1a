package model

import (
	"time"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Gender       string    `db:"gender"`
	NationalID   string    `db:"national_id"`
	Age          int       `db:"age"`
	Location     string    `db:"location"`
	CreatedAt    time.Time `db:"created_at"`
}
