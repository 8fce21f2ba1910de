package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battlemap-api/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestEndpointRequired() {
	_, err := redis.NewClient("", nil)
	s.Assert().Error(err)
}

func (s *ClientTestSuite) TestPing() {
	mr := miniredis.RunT(s.T())

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Assert().NoError(redis.Ping(context.Background(), client, time.Second))

	mr.Close()
	s.Assert().Error(redis.Ping(context.Background(), client, 100*time.Millisecond))
}
