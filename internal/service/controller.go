// Package service implements the session controller: the use cases of the
// social media app, each run as one unit of work.
package service

import (
	"log/slog"

	"smapp/internal/cache"
	"smapp/internal/observability"
	"smapp/internal/repository"
)

// Controller exposes the use cases. It holds only collaborators and is safe
// to share between sessions.
type Controller struct {
	gw     repository.Gateway
	cache  *cache.Cache
	logger *slog.Logger
}

// NewController returns a Controller. c may be nil to disable caching.
func NewController(gw repository.Gateway, c *cache.Cache) *Controller {
	return &Controller{
		gw:     gw,
		cache:  c,
		logger: observability.Logger,
	}
}
