package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

type container struct {
	repository string
	tag        string
	port       string
}

var (
	redisContainer = container{repository: "redis", tag: "alpine", port: "6379/tcp"}
	mongoContainer = container{repository: "mongo", tag: "7", port: "27017/tcp"}
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Redis *redis.Client
	Mongo *mongo.Database
}

// New starts a throwaway redis container and returns a flushed client.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, st := newSuite(t)

	var redisClient *redis.Client
	run(t, redisContainer, func(hostPort string) error {
		redisClient = redis.NewClient(&redis.Options{
			Addr: hostPort,
		})
		return redisClient.Ping(ctx).Err()
	})

	if err := redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	t.Cleanup(func() {
		_ = redisClient.Close()
	})

	st.Redis = redisClient

	return ctx, st
}

// NewMongo starts a throwaway mongo container and returns a database named after the test.
func NewMongo(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, st := newSuite(t)

	var mongoClient *mongo.Client
	run(t, mongoContainer, func(hostPort string) error {
		var err error
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI("mongodb://"+hostPort))
		if err != nil {
			return err
		}
		return mongoClient.Ping(ctx, nil)
	})

	t.Cleanup(func() {
		_ = mongoClient.Disconnect(context.Background())
	})

	st.Mongo = mongoClient.Database("tictactoe_test")

	return ctx, st
}

func newSuite(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// run pulls the image, starts a container and retries connect until it succeeds.
// Tests are skipped when no docker daemon is reachable.
func run(t *testing.T, c container, connect func(hostPort string) error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not construct docker pool: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: c.repository,
		Tag:        c.tag,
		Env:        []string{},
	}, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}

	// never returns error
	_ = resource.Expire(expireDuration) // Tell docker to hard kill the container in 120 seconds

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	pool.MaxWait = maxWaitDuration

	hostPort := resource.GetHostPort(c.port)
	if err = pool.Retry(func() error { return connect(hostPort) }); err != nil {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Fatalf("could not purge resource: %v", purgeErr)
		}

		t.Fatalf("could not connect to %s: %v", c.repository, err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge resource: %v", err)
		}
	})
}
