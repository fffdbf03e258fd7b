package janitor_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/worker/janitor"
)

type MockDialogCloser struct {
	mock.Mock
}

func (m *MockDialogCloser) CloseIdle(idle time.Duration) int {
	args := m.Called(idle)
	return args.Int(0)
}

type MockCachePurger struct {
	mock.Mock
}

func (m *MockCachePurger) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	args := m.Called(ctx, age)
	return args.Get(0).(int64), args.Error(1)
}

func TestJanitorWorker_RunOnce(t *testing.T) {
	ctx := context.Background()
	dialogs := &MockDialogCloser{}
	cache := &MockCachePurger{}

	dialogs.On("CloseIdle", 30*time.Minute).Return(2).Once()
	cache.On("DeleteOlderThan", ctx, 24*time.Hour).Return(int64(5), nil).Once()

	w := janitor.NewJanitorWorker(dialogs, cache, time.Minute, 30*time.Minute, 24*time.Hour, zap.NewNop())
	w.RunOnce(ctx)

	dialogs.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestJanitorWorker_PurgeErrorIsLogged(t *testing.T) {
	ctx := context.Background()
	cache := &MockCachePurger{}
	cache.On("DeleteOlderThan", ctx, time.Hour).Return(int64(0), fmt.Errorf("db down")).Once()

	w := janitor.NewJanitorWorker(nil, cache, time.Minute, 0, time.Hour, zap.NewNop())

	assert.NotPanics(t, func() { w.RunOnce(ctx) })
	cache.AssertExpectations(t)
}

func TestJanitorWorker_Stop(t *testing.T) {
	dialogs := &MockDialogCloser{}
	dialogs.On("CloseIdle", mock.Anything).Return(0)

	w := janitor.NewJanitorWorker(dialogs, nil, 10*time.Millisecond, time.Minute, 0, zap.NewNop())
	assert.Equal(t, "janitor", w.Name())

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop")
	}
	dialogs.AssertCalled(t, "CloseIdle", time.Minute)
}

func TestJanitorWorker_ContextCancellation(t *testing.T) {
	w := janitor.NewJanitorWorker(nil, nil, time.Hour, 0, 0, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop on context cancellation")
	}
}
