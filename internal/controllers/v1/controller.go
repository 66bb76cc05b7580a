package v1

import (
	"time"

	"github.com/goalpost-app/backend/internal/config"
	"github.com/goalpost-app/backend/internal/live"
	"github.com/goalpost-app/backend/internal/payment"
	"github.com/goalpost-app/backend/internal/secret"
)

// DefaultHeartbeat is the interval for keep-alive comments on live streams.
const DefaultHeartbeat = 25 * time.Second

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	Config    config.Config
	Hub       *live.Hub
	Payments  payment.Provider
	Tokens    *secret.Issuer
	Heartbeat time.Duration
}

func (co Controller) heartbeat() time.Duration {
	if co.Heartbeat <= 0 {
		return DefaultHeartbeat
	}

	return co.Heartbeat
}
