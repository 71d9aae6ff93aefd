package repository

import (
	"context"
	"fmt"
	"log/slog"

	"smapp/internal/database"
	"smapp/internal/observability"

	"gorm.io/gorm"
)

// Repositories bundles the repositories of one unit of work. Every member
// runs against the same transaction.
type Repositories struct {
	Users    UserRepository
	Posts    PostRepository
	Comments CommentRepository
	Likes    LikeRepository
}

// NewRepositories binds all repositories to db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
		Likes:    NewLikeRepository(db),
	}
}

// SessionFunc is the body of a unit of work.
type SessionFunc func(ctx context.Context, repos *Repositories) error

// Gateway runs units of work against the database.
type Gateway interface {
	// WithSession runs fn in a transaction. It commits when fn returns nil
	// and rolls back when fn returns an error or panics; the panic is
	// re-raised after rollback. op names the unit of work in logs, metrics
	// and traces.
	WithSession(ctx context.Context, op string, fn SessionFunc) error
}

type gormGateway struct {
	db     *gorm.DB
	logger *slog.Logger
}

// GatewayOption configures NewGateway.
type GatewayOption func(*gormGateway)

// WithLogger overrides the logger used for unit-of-work events.
func WithLogger(l *slog.Logger) GatewayOption {
	return func(g *gormGateway) {
		g.logger = l
	}
}

// NewGateway returns a Gateway backed by db.
func NewGateway(db *gorm.DB, opts ...GatewayOption) Gateway {
	g := &gormGateway{db: db, logger: observability.Logger}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *gormGateway) WithSession(ctx context.Context, op string, fn SessionFunc) (err error) {
	track := observability.TrackUnitOfWork(op)
	ctx, span := observability.StartUnitOfWork(ctx, op, g.db.Dialector.Name())

	defer func() {
		if r := recover(); r != nil {
			panicErr := fmt.Errorf("panic in unit of work %s: %v", op, r)
			g.logger.ErrorContext(ctx, "unit of work panicked", slog.String("operation", op), slog.Any("panic", r))
			track(observability.OutcomeRollback)
			observability.EndSpan(span, panicErr)
			panic(r)
		}

		if err != nil {
			g.logger.WarnContext(ctx, "unit of work rolled back",
				slog.String("operation", op),
				slog.String("error", err.Error()),
			)
			track(observability.OutcomeRollback)
		} else {
			g.logger.DebugContext(ctx, "unit of work committed", slog.String("operation", op))
			track(observability.OutcomeCommit)
		}
		observability.EndSpan(span, err)
	}()

	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	})
	return database.TranslateError(err)
}
