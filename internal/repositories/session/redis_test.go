package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestGetMissingSession() {
	out, err := s.repo.GetSession(context.Background(), &GetSessionInput{OwnerID: "discord-1"})
	s.Require().NoError(err)
	s.Nil(out.Session)
}

func (s *RedisRepositoryTestSuite) TestSaveGetDelete() {
	sess := &models.Session{
		OwnerID:     "discord-1",
		AccessToken: "token",
		IsSignedIn:  true,
		Provider:    models.ProviderGoogle,
		UserProfile: &models.UserProfile{UserID: "u1", Name: "alice"},
	}
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess}))

	out, err := s.repo.GetSession(context.Background(), &GetSessionInput{OwnerID: "discord-1"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Session)
	s.Equal("token", out.Session.AccessToken)
	s.Equal("u1", out.Session.UserID())

	s.Require().NoError(s.repo.DeleteSession(context.Background(), &DeleteSessionInput{OwnerID: "discord-1"}))

	out, err = s.repo.GetSession(context.Background(), &GetSessionInput{OwnerID: "discord-1"})
	s.Require().NoError(err)
	s.Nil(out.Session)
}

func (s *RedisRepositoryTestSuite) TestSessionExpires() {
	sess := &models.Session{OwnerID: "discord-1", AccessToken: "token"}
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
		TTL:     time.Hour,
	}))

	s.mr.FastForward(2 * time.Hour)

	out, err := s.repo.GetSession(context.Background(), &GetSessionInput{OwnerID: "discord-1"})
	s.Require().NoError(err)
	s.Nil(out.Session)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	s.Error(s.repo.SaveSession(context.Background(), nil))
	s.Error(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: &models.Session{}}))

	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{})
	s.Error(err)
}
