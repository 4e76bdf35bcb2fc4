package watch_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yichuanzhang/booktracker/pkg/watch"
)

func recv(t *testing.T, ch <-chan int) int {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
		return 0
	}
}

func TestSource_ReplaysLastValue(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := watch.NewSource[int]()
	require.False(t, s.Primed())

	s.Publish(42)
	require.True(t, s.Primed())

	ch := s.Subscribe(ctx)
	require.Equal(t, 42, recv(t, ch))
}

func TestSource_Broadcast(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := watch.NewSource[int]()
	a := s.Subscribe(ctx)
	b := s.Subscribe(ctx)

	s.Publish(7)
	require.Equal(t, 7, recv(t, a))
	require.Equal(t, 7, recv(t, b))
}

func TestSource_CoalescesWhenSlow(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := watch.NewSource[int]()
	ch := s.Subscribe(ctx)

	for i := 1; i <= 10; i++ {
		s.Publish(i)
	}
	// intermediate values may be dropped, the newest must survive
	require.Equal(t, 10, recv(t, ch))
}

func TestSource_UnsubscribeOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	s := watch.NewSource[int]()
	ch := s.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
