package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
}

func (s *ClientTestSuite) TestConnect() {
	testCases := []struct {
		name      string
		endpoints []string
		wantErr   bool
	}{
		{name: "no endpoints", wantErr: true},
		{name: "single node", endpoints: []string{"localhost:6379"}},
		{name: "cluster", endpoints: []string{"10.0.0.1:6379", "10.0.0.2:6379"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := redis.Connect(tc.endpoints, &redis.Options{PoolSize: 2, UseTLS: true})
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			s.NoError(client.Close())
		})
	}
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	_, err := redis.NewClient("", nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestPing() {
	mr := miniredis.RunT(s.T())
	client, err := redis.NewClient(mr.Addr(), nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client))

	mr.Close()
	err = redis.Ping(context.Background(), client)
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestNilAlias() {
	s.Equal(goredis.Nil, redis.Nil)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
