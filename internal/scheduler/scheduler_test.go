package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresOverdue(t *testing.T) {
	orders := mocks.NewMockOrderExpirer(t)
	merch := mocks.NewMockMerchExpirer(t)
	log := newTestLogger(t)

	s := New(orders, merch, 50*time.Millisecond, log)

	expired := []*domain.Order{
		{ID: "o1", EventID: "e1", UserID: "u1"},
	}
	orders.EXPECT().ExpireOverdue(mock.Anything).Return(expired, nil)
	merch.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(orders.Calls), 1)
	assert.GreaterOrEqual(t, len(merch.Calls), 1)
}

func TestScheduler_Tick_OrderErrorDoesNotStopMerch(t *testing.T) {
	orders := mocks.NewMockOrderExpirer(t)
	merch := mocks.NewMockMerchExpirer(t)
	log := newTestLogger(t)

	s := New(orders, merch, 50*time.Millisecond, log)

	orders.EXPECT().ExpireOverdue(mock.Anything).Return(nil, errors.New("db error"))
	merch.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(merch.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	orders := mocks.NewMockOrderExpirer(t)
	merch := mocks.NewMockMerchExpirer(t)
	log := newTestLogger(t)

	s := New(orders, merch, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	orders := mocks.NewMockOrderExpirer(t)
	merch := mocks.NewMockMerchExpirer(t)
	log := newTestLogger(t)

	s := New(orders, merch, 30*time.Millisecond, log)

	orders.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil).Times(3)
	merch.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(orders.Calls), 3)
}
