package competition

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/bonedash/internal/common/clock/mocks"
	"github.com/KirkDiggler/bonedash/internal/repositories/localstore"
	storeMocks "github.com/KirkDiggler/bonedash/internal/repositories/localstore/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CompetitionServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	store     localstore.Store
	svc       *service
	ctx       context.Context
	now       time.Time
}

func (s *CompetitionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	s.store = localstore.NewMemory()
	svc, err := New(&Config{
		Store: s.store,
		Clock: s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *CompetitionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCompetitionServiceSuite(t *testing.T) {
	suite.Run(t, new(CompetitionServiceTestSuite))
}

func (s *CompetitionServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilStore)

	_, err = New(&Config{Store: s.store})
	s.ErrorIs(err, ErrNilClock)
}

func (s *CompetitionServiceTestSuite) TestNoWindow() {
	ended, err := s.svc.IsEnded(s.ctx)
	s.Require().NoError(err)
	s.False(ended)

	remaining, err := s.svc.TimeRemaining(s.ctx)
	s.Require().NoError(err)
	s.Nil(remaining)

	window, err := s.svc.Window(s.ctx)
	s.Require().NoError(err)
	s.Nil(window)
}

func (s *CompetitionServiceTestSuite) TestStartSevenDays() {
	end, err := s.svc.Start(s.ctx, 7)
	s.Require().NoError(err)
	s.True(end.Equal(s.now.Add(7 * 24 * time.Hour)))

	stored, ok, err := s.store.Get(localstore.KeyCompetitionEndsAt)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("1745668800000", stored)

	remaining, err := s.svc.TimeRemaining(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(remaining)
	s.Equal(7, remaining.Days)
	s.Equal(0, remaining.Hours)
	s.Equal(0, remaining.Minutes)
	s.Equal(7*24*time.Hour, remaining.Total)

	ended, err := s.svc.IsEnded(s.ctx)
	s.Require().NoError(err)
	s.False(ended)
}

func (s *CompetitionServiceTestSuite) TestFractionalDays() {
	_, err := s.svc.Start(s.ctx, 1.5)
	s.Require().NoError(err)

	s.now = s.now.Add(90 * time.Minute)

	remaining, err := s.svc.TimeRemaining(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(remaining)
	s.Equal(1, remaining.Days)
	s.Equal(10, remaining.Hours)
	s.Equal(30, remaining.Minutes)
}

func (s *CompetitionServiceTestSuite) TestStartRejectsNonPositive() {
	for _, days := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := s.svc.Start(s.ctx, days)
		s.ErrorIs(err, ErrInvalidDuration, "days=%v", days)
	}

	window, err := s.svc.Window(s.ctx)
	s.Require().NoError(err)
	s.Nil(window)
}

func (s *CompetitionServiceTestSuite) TestEndedAfterWindow() {
	_, err := s.svc.Start(s.ctx, 1)
	s.Require().NoError(err)

	// Exactly at the end is not yet over
	s.now = s.now.Add(24 * time.Hour)
	ended, err := s.svc.IsEnded(s.ctx)
	s.Require().NoError(err)
	s.False(ended)

	s.now = s.now.Add(time.Millisecond)
	ended, err = s.svc.IsEnded(s.ctx)
	s.Require().NoError(err)
	s.True(ended)

	remaining, err := s.svc.TimeRemaining(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(remaining)
	s.Zero(remaining.Total)
	s.Zero(remaining.Days)
}

func (s *CompetitionServiceTestSuite) TestOneDayCountdownAsTimeMoves() {
	_, err := s.svc.Start(s.ctx, 1)
	s.Require().NoError(err)

	s.now = s.now.Add(5 * time.Millisecond)

	ended, err := s.svc.IsEnded(s.ctx)
	s.Require().NoError(err)
	s.False(ended)

	remaining, err := s.svc.TimeRemaining(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(remaining)
	s.Equal(0, remaining.Days)
	s.Equal(23, remaining.Hours)
	s.Equal(59, remaining.Minutes)

	s.now = s.now.Add(24*time.Hour + time.Second)

	ended, err = s.svc.IsEnded(s.ctx)
	s.Require().NoError(err)
	s.True(ended)
}

func (s *CompetitionServiceTestSuite) TestEndNow() {
	_, err := s.svc.Start(s.ctx, 7)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.EndNow(s.ctx))

	window, err := s.svc.Window(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(window)
	s.True(window.EndTimestamp.Equal(s.now))

	s.now = s.now.Add(time.Second)
	ended, err := s.svc.IsEnded(s.ctx)
	s.Require().NoError(err)
	s.True(ended)
}

func (s *CompetitionServiceTestSuite) TestCorruptWindow() {
	s.Require().NoError(s.store.Set(localstore.KeyCompetitionEndsAt, "soon"))

	_, err := s.svc.IsEnded(s.ctx)
	s.ErrorIs(err, ErrCorruptWindow)
}

func (s *CompetitionServiceTestSuite) TestStoreFailure() {
	store := storeMocks.NewMockStore(s.mockCtrl)
	store.EXPECT().Set(localstore.KeyCompetitionEndsAt, gomock.Any()).Return(errors.New("full"))

	svc, err := New(&Config{Store: store, Clock: s.mockClock})
	s.Require().NoError(err)

	_, err = svc.Start(s.ctx, 1)
	s.Error(err)
}
