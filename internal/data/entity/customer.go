package entity

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID          uuid.UUID  `db:"customer_id"`
	FullName    string     `db:"full_name"`
	Email       string     `db:"email"`
	PhoneNumber *string    `db:"phone_number"`
	CCCD        *string    `db:"cccd"`
	DOB         *time.Time `db:"dob"`
	CreatedAt   time.Time  `db:"created_at"`
}
