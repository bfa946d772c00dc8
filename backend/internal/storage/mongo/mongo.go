package mongo

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruralcrm/taskboard/shared/config"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
	"github.com/ruralcrm/taskboard/shared/logger"
)

// Storage is the tenant-scoped gateway to the three collections. Every query
// it issues filters on tenantId; callers cannot reach another tenant's data
// through it.
type Storage struct {
	client  *mongo.Client
	boards  *mongo.Collection
	columns *mongo.Collection
	cards   *mongo.Collection

	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("Connecting to mongo")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Private.Mongo.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	logger.Log.Info("Successfully connected to mongo")

	timeout := cfg.Public.StoreTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	db := client.Database(cfg.Private.Mongo.Dbname)
	s := &Storage{
		client:  client,
		boards:  db.Collection("boards"),
		columns: db.Collection("columns"),
		cards:   db.Collection("cards"),
		breaker: newBreaker(),
		timeout: timeout,
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func newBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "mongo",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		// Not-found and other status-coded errors are answers, not outages.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			_, ok := err.(*internal_errors.ErrorWithStatusCode)
			return ok
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnf("circuit breaker %q changed from %s to %s", name, from.String(), to.String())
		},
	})
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.boards.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, err = s.columns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "boardId", Value: 1}, {Key: "position", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, err = s.cards.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "columnId", Value: 1}, {Key: "position", Value: 1}}},
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "boardId", Value: 1}}},
	})
	return err
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Storage) Cleanup(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// execute routes a store call through the circuit breaker, bounding each
// round-trip with the configured store timeout. An open breaker or too many
// half-open probes surface as a retryable 503.
func (s *Storage) execute(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return fn(ctx)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, internal_errors.Unavailable("Store temporarily unavailable, retry later")
	}
	return res, err
}
