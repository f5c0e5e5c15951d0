package engine

import (
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/bonedash/internal/common/clock/mocks"
	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/rng"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	session   *Session
	now       time.Time
}

func (s *SessionTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	session, err := NewSession(&SessionConfig{
		Random: rng.New(&rng.Config{Seed: 11}),
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.session = session
}

func (s *SessionTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

// runUntilEnded advances one frame unit at a time, 1/60 s per frame
func (s *SessionTestSuite) runUntilEnded(limit int) FrameResult {
	var res FrameResult
	frameMillis := FrameMillis
	for i := 0; i < limit; i++ {
		s.now = s.now.Add(time.Duration(frameMillis * float64(time.Millisecond)))
		res = s.session.Advance(1)
		if res.Status == StatusEnded {
			return res
		}
	}
	s.FailNow("session never ended")
	return res
}

func (s *SessionTestSuite) TestNewSessionValidatesConfig() {
	_, err := NewSession(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewSession(&SessionConfig{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilRandom)

	_, err = NewSession(&SessionConfig{Random: rng.New(nil)})
	s.ErrorIs(err, ErrNilClock)
}

func (s *SessionTestSuite) TestIdleIgnoresInput() {
	s.Equal(StatusIdle, s.session.Status())
	s.False(s.session.Jump())

	res := s.session.Advance(1)
	s.Equal(StatusIdle, res.Status)
	s.Zero(res.Score)
	s.Nil(s.session.State())
}

func (s *SessionTestSuite) TestStartRejectsBadUsernames() {
	s.ErrorIs(s.session.Start(""), models.ErrInvalidUsername)
	s.ErrorIs(s.session.Start("   "), models.ErrInvalidUsername)
	s.ErrorIs(s.session.Start("abcdefghijklmnopqrstu"), models.ErrInvalidUsername)
	s.Equal(StatusIdle, s.session.Status())

	s.NoError(s.session.Start("abcdefghijklmnopqrst"))
	s.Equal(StatusRunning, s.session.Status())
}

func (s *SessionTestSuite) TestStartWhileRunning() {
	s.Require().NoError(s.session.Start("bones"))
	s.ErrorIs(s.session.Start("bones"), ErrSessionRunning)
}

func (s *SessionTestSuite) TestStartInitialState() {
	s.Require().NoError(s.session.Start(" bones "))
	s.Equal("bones", s.session.Username())

	state := s.session.State()
	s.Require().NotNil(state)
	s.Equal(s.session.Tuning().GroundTop(), state.PlayerY)
	s.Equal(InitialSpeed, state.Speed)
	s.Empty(state.Obstacles)
	s.Zero(state.Elapsed)
	s.True(s.session.StartedAt().Equal(s.now))
}

func (s *SessionTestSuite) TestStateIsACopy() {
	s.Require().NoError(s.session.Start("bones"))
	s.session.Advance(1)

	state := s.session.State()
	s.Require().NotEmpty(state.Obstacles)
	state.Obstacles[0].X = -1000
	state.PlayerY = 0

	fresh := s.session.State()
	s.NotEqual(-1000.0, fresh.Obstacles[0].X)
	s.NotEqual(0.0, fresh.PlayerY)
}

func (s *SessionTestSuite) TestCollisionEndsSession() {
	s.Require().NoError(s.session.Start("bones"))

	res := s.runUntilEnded(1000)
	s.True(res.Collided)
	s.Require().NotNil(res.Obstacle)
	s.Equal(StatusEnded, s.session.Status())
	s.Equal(res.Score, s.session.Score())
	s.Positive(res.Score)
	s.True(s.session.EndedAt().Equal(s.now))

	// Ended is terminal for this run
	score := s.session.Score()
	before := s.session.State()
	after := s.session.Advance(2)
	s.Equal(StatusEnded, after.Status)
	s.False(after.Collided)
	s.Equal(score, after.Score)
	s.Equal(before, s.session.State())
	s.False(s.session.Jump())
}

func (s *SessionTestSuite) TestDurationIsWallClock() {
	s.Require().NoError(s.session.Start("bones"))

	s.now = s.now.Add(1500 * time.Millisecond)
	s.Equal(1500*time.Millisecond, s.session.Duration())

	s.runUntilEnded(1000)
	duration := s.session.Duration()

	// Frozen once ended
	s.now = s.now.Add(time.Hour)
	s.Equal(duration, s.session.Duration())
}

func (s *SessionTestSuite) TestRestartAfterEnd() {
	s.Require().NoError(s.session.Start("bones"))
	s.runUntilEnded(1000)

	s.Require().NoError(s.session.Start("bones"))
	s.Equal(StatusRunning, s.session.Status())
	s.Zero(s.session.Score())
	s.True(s.session.EndedAt().IsZero())
}

func (s *SessionTestSuite) TestJumpBudgetThroughSession() {
	s.Require().NoError(s.session.Start("bones"))
	s.True(s.session.Jump())
	s.Equal(1, s.session.State().JumpsUsed)

	s.session.Advance(1)
	s.True(s.session.Jump())
	s.False(s.session.Jump())
}
