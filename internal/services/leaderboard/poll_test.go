package leaderboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPollFetchesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	svc.EXPECT().FetchTopN(gomock.Any(), 0).DoAndReturn(func(context.Context, int) (*models.Leaderboard, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("redis down")
		}
		if calls == 3 {
			cancel()
		}
		return &models.Leaderboard{}, nil
	}).MinTimes(3)

	done := make(chan error, 1)
	go func() {
		done <- leaderboard.Poll(ctx, svc, time.Millisecond, nil)
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("poll did not stop")
	}
}
