package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
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

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) entry(id string, score int, offset time.Duration) *models.LeaderboardEntry {
	return &models.LeaderboardEntry{
		PlayerID:  id,
		Username:  "user-" + id,
		Score:     score,
		Timestamp: s.testNow.Add(offset),
	}
}

func (s *RedisRepositoryTestSuite) save(entries ...*models.LeaderboardEntry) {
	for _, e := range entries {
		s.Require().NoError(s.repo.SaveEntry(s.ctx, &SaveEntryInput{Entry: e}))
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetEntry() {
	wallet := "0x66606C24b4A24b5Fd06BbCA9B85DFcEdaF6A65C2"
	e := s.entry("player-1", 42, 0)
	e.WalletAddress = &wallet
	e.GameDuration = 12.5
	s.save(e)

	got, err := s.repo.GetEntry(s.ctx, &GetEntryInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal(42, got.Score)
	s.Equal("user-player-1", got.Username)
	s.Equal(12.5, got.GameDuration)
	s.Equal(wallet, got.Wallet())
	s.True(s.testNow.Equal(got.Timestamp))
}

func (s *RedisRepositoryTestSuite) TestGetMissingEntry() {
	_, err := s.repo.GetEntry(s.ctx, &GetEntryInput{PlayerID: "nobody"})
	s.Require().Error(err)
	s.ErrorIs(err, ErrEntryNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveEntryValidatesInput() {
	s.Error(s.repo.SaveEntry(s.ctx, nil))
	s.Error(s.repo.SaveEntry(s.ctx, &SaveEntryInput{Entry: &models.LeaderboardEntry{}}))
}

func (s *RedisRepositoryTestSuite) TestSaveEntryReplacesScoreIndex() {
	s.save(s.entry("player-1", 10, 0))
	s.save(s.entry("player-1", 30, 0))

	out, err := s.repo.GetTopEntries(s.ctx, &GetTopEntriesInput{Limit: 28})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Equal(30, out.Entries[0].Score)
}

func (s *RedisRepositoryTestSuite) TestGetTopEntriesOrdersByScore() {
	s.save(
		s.entry("a", 10, 0),
		s.entry("b", 50, 0),
		s.entry("c", 30, 0),
	)

	out, err := s.repo.GetTopEntries(s.ctx, &GetTopEntriesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("b", out.Entries[0].PlayerID)
	s.Equal("c", out.Entries[1].PlayerID)
}

func (s *RedisRepositoryTestSuite) TestGetTopEntriesBreaksTiesByEarliestTimestamp() {
	// ZREVRANGE alone would pick z-late, the lexically larger member
	s.save(
		s.entry("a-early", 20, 0),
		s.entry("z-late", 20, time.Minute),
		s.entry("m-top", 90, 0),
	)

	out, err := s.repo.GetTopEntries(s.ctx, &GetTopEntriesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("m-top", out.Entries[0].PlayerID)
	s.Equal("a-early", out.Entries[1].PlayerID)
}

func (s *RedisRepositoryTestSuite) TestGetTopEntriesEmpty() {
	out, err := s.repo.GetTopEntries(s.ctx, &GetTopEntriesInput{Limit: 28})
	s.Require().NoError(err)
	s.Empty(out.Entries)

	_, err = s.repo.GetTopEntries(s.ctx, &GetTopEntriesInput{Limit: 0})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetTopEntriesSkipsMissingDocuments() {
	s.save(s.entry("a", 10, 0), s.entry("b", 20, 0))
	s.mr.Del(entryKey("b"))

	out, err := s.repo.GetTopEntries(s.ctx, &GetTopEntriesInput{Limit: 28})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Equal("a", out.Entries[0].PlayerID)
}

func (s *RedisRepositoryTestSuite) TestGetAllEntries() {
	for i := 0; i < 30; i++ {
		s.save(s.entry(fmt.Sprintf("p%02d", i), i, 0))
	}

	out, err := s.repo.GetAllEntries(s.ctx, &GetAllEntriesInput{})
	s.Require().NoError(err)
	s.Len(out.Entries, 30)
	s.Equal(29, out.Entries[0].Score)
	s.Equal(0, out.Entries[29].Score)
}

func (s *RedisRepositoryTestSuite) TestUpdateEntryInsertsWhenAbsent() {
	out, err := s.repo.UpdateEntry(s.ctx, &UpdateEntryInput{
		PlayerID: "new",
		Mutate: func(existing *models.LeaderboardEntry) (*models.LeaderboardEntry, error) {
			s.Nil(existing)
			return s.entry("new", 5, 0), nil
		},
	})
	s.Require().NoError(err)
	s.True(out.Changed)
	s.Equal(5, out.Entry.Score)

	got, err := s.repo.GetEntry(s.ctx, &GetEntryInput{PlayerID: "new"})
	s.Require().NoError(err)
	s.Equal(5, got.Score)
}

func (s *RedisRepositoryTestSuite) TestUpdateEntryNilMutationLeavesStoreUntouched() {
	s.save(s.entry("p", 50, 0))

	out, err := s.repo.UpdateEntry(s.ctx, &UpdateEntryInput{
		PlayerID: "p",
		Mutate: func(existing *models.LeaderboardEntry) (*models.LeaderboardEntry, error) {
			return nil, nil
		},
	})
	s.Require().NoError(err)
	s.False(out.Changed)
	s.Equal(50, out.Entry.Score)
}

func (s *RedisRepositoryTestSuite) TestUpdateEntryPropagatesMutationError() {
	boom := errors.New("boom")
	_, err := s.repo.UpdateEntry(s.ctx, &UpdateEntryInput{
		PlayerID: "p",
		Mutate: func(existing *models.LeaderboardEntry) (*models.LeaderboardEntry, error) {
			return nil, boom
		},
	})
	s.ErrorIs(err, boom)
}

func (s *RedisRepositoryTestSuite) TestUpdateEntryRejectsKeyChange() {
	_, err := s.repo.UpdateEntry(s.ctx, &UpdateEntryInput{
		PlayerID: "p",
		Mutate: func(existing *models.LeaderboardEntry) (*models.LeaderboardEntry, error) {
			return s.entry("other", 1, 0), nil
		},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestDeleteEntry() {
	s.save(s.entry("p", 10, 0))
	s.Require().NoError(s.repo.DeleteEntry(s.ctx, &DeleteEntryInput{PlayerID: "p"}))

	_, err := s.repo.GetEntry(s.ctx, &GetEntryInput{PlayerID: "p"})
	s.ErrorIs(err, ErrEntryNotFound)

	out, err := s.repo.GetTopEntries(s.ctx, &GetTopEntriesInput{Limit: 28})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func TestNewRedisWithUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	repo, err := NewRedis(&Config{RedisClient: client})
	require.NoError(t, err)
	require.NotNil(t, repo)

	ctx := context.Background()
	_, err = repo.GetEntry(ctx, &GetEntryInput{PlayerID: "player_1"})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrEntryNotFound))

	_, err = repo.GetTopEntries(ctx, &GetTopEntriesInput{Limit: 5})
	assert.Error(t, err)
}
