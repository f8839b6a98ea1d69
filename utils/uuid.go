package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random UUID string used as primary key for every table.
func GenerateID() string {
	return uuid.New().String()
}

