package auth

import (
	"time"

	"gatekeeper/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns the wall clock in UTC.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
