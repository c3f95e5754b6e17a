package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/internal/mock"
	"github.com/foyerhq/foyer-client/models"
)

func TestIdentityRefreshJob_RefreshesOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAuthAPI(ctrl)

	user := models.User{ID: "user-id", Email: "resident@example.com"}
	m := &sessionManager{api: api, logger: logger.Nop()}
	m.install(models.TokenPair{
		AccessToken:  "access-token-value",
		RefreshToken: "refresh-token-value",
	}, &user, models.OriginServer)

	api.EXPECT().CurrentUser(gomock.Any(), "access-token-value").
		Return(user, nil).MinTimes(1)

	job := NewIdentityRefreshJob(m)
	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	job.Stop()
}

func TestIdentityRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewIdentityRefreshJob(&sessionManager{logger: logger.Nop()})

	assert.NotPanics(t, job.Stop)
	assert.NotPanics(t, job.Stop)
}

func TestIdentityRefreshJob_RestartReplacesPreviousRun(t *testing.T) {
	job := NewIdentityRefreshJob(&sessionManager{logger: logger.Nop()})

	// A logged-out session never reaches the API, so ticks are harmless
	// here; the point is that restarting does not leak or deadlock.
	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), time.Hour)
	job.Stop()

	assert.NotPanics(t, job.Stop)
}

func TestIdentityRefreshJob_StopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	job := NewIdentityRefreshJob(&sessionManager{logger: logger.Nop()})
	job.Start(ctx, time.Hour)
	cancel()

	// Stop must return promptly once the context has been cancelled.
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop after context cancellation")
	}
}
