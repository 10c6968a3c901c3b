package sticky

import "time"

const (
	// DebounceDelay is the quiet period after scroll/expand/collapse
	// notifications before a recompute runs.
	DebounceDelay = 20 * time.Millisecond
	// ReloadDelay gives the tree time to re-render after its data is
	// reloaded.
	ReloadDelay = 200 * time.Millisecond
)

// Reason names the notification that asked for a recompute.
type Reason string

const (
	ReasonScroll   Reason = "scroll"
	ReasonExpand   Reason = "expand"
	ReasonCollapse Reason = "collapse"
	ReasonReload   Reason = "reload"
	ReasonResize   Reason = "resize"
	ReasonToggle   Reason = "toggle"
)

// Ticket identifies one scheduled recompute.
type Ticket struct {
	Gen    uint64
	Reason Reason
	Delay  time.Duration
}

// Scheduler coalesces recompute requests. Every Schedule call supersedes the
// previous ticket; only the newest ticket is due when its delay elapses.
type Scheduler struct {
	debounce time.Duration
	reload   time.Duration
	gen      uint64
}

// NewScheduler returns a scheduler using the given delays. Non-positive
// values select DebounceDelay and ReloadDelay.
func NewScheduler(debounce, reload time.Duration) *Scheduler {
	if debounce <= 0 {
		debounce = DebounceDelay
	}
	if reload <= 0 {
		reload = ReloadDelay
	}
	return &Scheduler{debounce: debounce, reload: reload}
}

// Schedule issues a new ticket for reason.
func (s *Scheduler) Schedule(reason Reason) Ticket {
	s.gen++
	delay := s.debounce
	if reason == ReasonReload {
		delay = s.reload
	}
	return Ticket{Gen: s.gen, Reason: reason, Delay: delay}
}

// Due reports whether t is still the newest ticket.
func (s *Scheduler) Due(t Ticket) bool {
	return t.Gen == s.gen
}

// Cancel invalidates every outstanding ticket.
func (s *Scheduler) Cancel() {
	s.gen++
}
