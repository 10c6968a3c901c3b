package sticky

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSchedulerCoalesces(t *testing.T) {
	s := NewScheduler(0, 0)
	var tickets []Ticket
	for i := 0; i < 10; i++ {
		tickets = append(tickets, s.Schedule(ReasonScroll))
	}
	due := 0
	for _, ticket := range tickets {
		if s.Due(ticket) {
			due++
		}
	}
	require.Equal(t, 1, due)
	require.True(t, s.Due(tickets[len(tickets)-1]))
	require.Equal(t, DebounceDelay, tickets[0].Delay)
}

func TestSchedulerReloadDelay(t *testing.T) {
	s := NewScheduler(5*time.Millisecond, 50*time.Millisecond)
	require.Equal(t, 5*time.Millisecond, s.Schedule(ReasonExpand).Delay)
	reload := s.Schedule(ReasonReload)
	require.Equal(t, 50*time.Millisecond, reload.Delay)
	require.Equal(t, ReasonReload, reload.Reason)

	s.Cancel()
	require.False(t, s.Due(reload))
}

func TestReadinessResolvesOnce(t *testing.T) {
	r := NewReadiness()
	select {
	case <-r.Done():
		t.Fatal("readiness resolved before the tree was published")
	default:
	}

	first := layout(rowH, 0, 0, note("one"))
	second := layout(rowH, 0, 0, note("two"))
	require.True(t, r.Resolve(first))
	require.False(t, r.Resolve(second))

	tv, err := r.Wait(context.Background())
	require.NoError(t, err)
	require.Same(t, first, tv)
}

func TestReadinessWaitHonoursContext(t *testing.T) {
	r := NewReadiness()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tv, err := r.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, tv)
}
