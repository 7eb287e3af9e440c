package controller

import (
	"log/slog"

	"github.com/marpemad/wealthHub/internal/store"

	"github.com/pkg/errors"
)

var ErrInvalidControllerConfig = errors.New("invalid controller config")

// Syncer triggers an immediate remote push.
type Syncer interface {
	ForceSync() error
}

type Controller struct {
	logger *slog.Logger
	store  *store.Store
	syncer Syncer
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

func WithStore(s *store.Store) Option {
	return func(c *Controller) {
		c.store = s
	}
}

func WithSyncer(s Syncer) Option {
	return func(c *Controller) {
		c.syncer = s
	}
}

func (c *Controller) IsValid() error {
	switch {
	case c.logger == nil:
		return errors.Wrap(ErrInvalidControllerConfig, "logger cannot be nil")
	case c.store == nil:
		return errors.Wrap(ErrInvalidControllerConfig, "store cannot be nil")
	default:
		return nil
	}
}

func New(opts ...Option) (*Controller, error) {
	c := &Controller{}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.IsValid(); err != nil {
		return nil, err
	}

	return c, nil
}
