package calendar

// Mode controls how the selector interprets clicks.
type Mode string

const (
	ModeRange  Mode = "range"  // two clicks pick an inclusive date range
	ModeSingle Mode = "single" // one click picks a single day
)

// State is the selector's position in the two-click flow.
type State string

const (
	StateIdle         State = "idle"          // no start selected
	StateSelectingEnd State = "selecting_end" // start chosen, awaiting end
)

// AvailabilityChecker reports whether every day in [start, end] is free.
// The selector only ever asks about ordered ranges.
type AvailabilityChecker func(start, end Day) bool

// Selection is the committed result of a completed click flow.
type Selection struct {
	Start Day
	End   Day
	Days  int
}

// Selector implements the calendar's click-to-select flow. A completed range
// that touches any blocked day is discarded outright and the selector drops
// back to idle; the caller surfaces that as UI feedback.
type Selector struct {
	mode      Mode
	available AvailabilityChecker
	state     State
	start     Day
	end       Day
}

func NewSelector(mode Mode, available AvailabilityChecker) *Selector {
	return &Selector{
		mode:      mode,
		available: available,
		state:     StateIdle,
	}
}

func (s *Selector) State() State { return s.state }

// Current returns the in-progress or committed endpoints; zero Days mean unset.
func (s *Selector) Current() (start, end Day) { return s.start, s.end }

// Click feeds one day into the flow. The returned Selection is non-nil only
// when a range was committed by this click. Unclickable days are ignored.
func (s *Selector) Click(info DayInfo) *Selection {
	if !info.Clickable() {
		return nil
	}

	if s.mode == ModeSingle {
		s.start, s.end = info.Date, info.Date
		s.state = StateIdle
		return &Selection{Start: info.Date, End: info.Date, Days: 1}
	}

	if s.state == StateIdle {
		s.start = info.Date
		s.end = Day{}
		s.state = StateSelectingEnd
		return nil
	}

	// Completing the range: if the second click precedes the start, swap.
	start, end := s.start, info.Date
	if end.Before(start) {
		start, end = end, start
	}

	s.state = StateIdle

	if !s.available(start, end) {
		// A range containing any blocked day is never accepted.
		s.Reset()
		return nil
	}

	s.start, s.end = start, end
	return &Selection{Start: start, End: end, Days: DaysBetween(start, end) + 1}
}

// Reset clears both endpoints and returns to idle.
func (s *Selector) Reset() {
	s.start, s.end = Day{}, Day{}
	s.state = StateIdle
}
