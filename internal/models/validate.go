package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validator caches struct metadata, so one instance is shared.
var validate = validator.New(validator.WithRequiredStructEnabled())

func newID() string {
	return uuid.New().String()
}
