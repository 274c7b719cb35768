package playback

import (
	"errors"
	"time"
)

// Interval is the fixed playback cadence.
const Interval = 150 * time.Millisecond

var ErrFrameOutOfRange = errors.New("frame index out of range")

type State int

const (
	Stopped State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Listener receives scheduler output. Calls happen inside the serialized
// context given to NewScheduler.
type Listener interface {
	FrameChanged(index int)
	StateChanged(state State)
}

// Scheduler steps a frame index through a range of fixed length. It owns the
// frame index; everything else reads it through Frame.
//
// At most one task is live at a time. Every task carries a generation number
// and ticks from an older generation are dropped, so a tick that was already
// queued when its task was cancelled cannot advance the new range.
type Scheduler struct {
	clock    Clock
	interval time.Duration
	listener Listener
	post     func(func())

	state     State
	announced State
	frame     int
	length    int
	task      Task
	gen       uint64
}

// NewScheduler builds a stopped scheduler. post runs tick work in the
// owner's serialized context; nil runs it inline.
func NewScheduler(clock Clock, listener Listener, post func(func())) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Scheduler{
		clock:    clock,
		interval: Interval,
		listener: listener,
		post:     post,
	}
}

func (s *Scheduler) State() State { return s.state }
func (s *Scheduler) Frame() int   { return s.frame }

// Play starts ticking from the current frame. A running task is cancelled
// first. With nothing left to advance to, the scheduler stays stopped and
// no task is created.
func (s *Scheduler) Play() bool {
	s.cancel()
	if s.frame+1 >= s.length {
		s.setState(Stopped)
		return false
	}
	s.start()
	s.setState(Playing)
	return true
}

// Pause cancels the task; the frame stays where it is.
func (s *Scheduler) Pause() {
	s.cancel()
	s.setState(Stopped)
}

func (s *Scheduler) Toggle() State {
	if s.state == Playing {
		s.Pause()
	} else {
		s.Play()
	}
	return s.state
}

// Seek moves to frame i. Playback, if running, continues from there.
func (s *Scheduler) Seek(i int) error {
	if i < 0 || i >= s.length {
		return ErrFrameOutOfRange
	}
	s.frame = i
	return nil
}

// Suspend cancels the task without telling the listener and reports whether
// playback was running. It is always followed by Reset.
func (s *Scheduler) Suspend() bool {
	wasPlaying := s.state == Playing
	s.cancel()
	s.state = Stopped
	return wasPlaying
}

// Reset adopts a new range length and rewinds to frame 0. With resume set,
// playback restarts on the new range when there is a frame to advance to.
func (s *Scheduler) Reset(length int, resume bool) {
	s.cancel()
	if length < 0 {
		length = 0
	}
	s.length = length
	s.frame = 0
	if resume && s.frame+1 < s.length {
		s.start()
		s.setState(Playing)
		return
	}
	s.setState(Stopped)
}

func (s *Scheduler) start() {
	s.gen++
	gen := s.gen
	s.task = s.clock.Every(s.interval, func() {
		s.post(func() { s.tick(gen) })
	})
	s.state = Playing
}

func (s *Scheduler) cancel() {
	if s.task != nil {
		s.task.Stop()
		s.task = nil
	}
	s.gen++
}

func (s *Scheduler) tick(gen uint64) {
	if gen != s.gen || s.state != Playing {
		return
	}
	if s.frame+1 < s.length {
		s.frame++
		if s.listener != nil {
			s.listener.FrameChanged(s.frame)
		}
		return
	}
	s.cancel()
	s.setState(Stopped)
}

func (s *Scheduler) setState(st State) {
	s.state = st
	if st == s.announced {
		return
	}
	s.announced = st
	if s.listener != nil {
		s.listener.StateChanged(st)
	}
}
