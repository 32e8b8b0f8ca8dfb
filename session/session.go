// This file is part of Gopher83.
//
// Gopher83 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher83 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher83.  If not, see <https://www.gnu.org/licenses/>.

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jetsetilly/gopher83/assert"
	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/debugger/govern"
	"github.com/jetsetilly/gopher83/hardware"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/logger"
	"github.com/jetsetilly/gopher83/notifications"
)

// Sentinal errors.
const (
	NotLoaded = "session: calculator not loaded"
	Closed    = "session: closed"
)

// The emulation is advanced FPS * FrameSubdivisions times every emulated
// second when running at normal speed.
const (
	FPS               = 50
	FrameSubdivisions = 1024
)

// DefaultSpeed is the speed of the real hardware.
const DefaultSpeed = 100

// how long to wait for an action when there is nothing to do.
const idlePeriod = 10 * time.Millisecond

// the number of actions that can be waiting before the sender blocks.
const queueLength = 64

// Timeslice returns the number of T-states to run in one iteration of the
// session loop for the speed and clock frequency. The result is never less
// than one.
func Timeslice(speed int, freq int) int64 {
	return max(1, int64(speed)*int64(freq)/FPS/100/FrameSubdivisions)
}

// Session owns a calculator and runs it on a dedicated goroutine.
type Session struct {
	calc   *hardware.Calc
	notify notifications.Notify

	actions chan func()
	done    chan struct{}

	owner assert.Goroutine

	// the fields below are only accessed by the session goroutine

	// outstanding step requests. only one of these is active at a time
	remainingSteps int
	runToAddr      *memory.WideAddress
	runToReturn    bool

	speed    int
	maxSpeed bool

	// the run state at the time of the most recent notification
	lastState govern.State

	// the wall clock time and emulated time at which pacing was last reset
	paceStart   time.Time
	paceElapsed float64

	keys   keyQueue
	keypad hardware.KeypadMonitor
}

// New is the preferred method of initialisation for the Session type. The
// calculator must have been loaded. The notify argument can be nil.
func New(c *hardware.Calc, notify notifications.Notify) (*Session, error) {
	if !c.Loaded() {
		return nil, curated.Errorf(NotLoaded)
	}

	keyTime := int64(c.Clock.Freq)
	if c.Model.IsColor() {
		keyTime *= 2
	}

	return &Session{
		calc:      c,
		notify:    notify,
		actions:   make(chan func(), queueLength),
		done:      make(chan struct{}),
		speed:     DefaultSpeed,
		lastState: c.State(),
		keys:      keyQueue{keyTime: keyTime},
	}, nil
}

// Run the session loop until the context is cancelled. Run should be called
// once, usually in its own goroutine.
func (s *Session) Run(ctx context.Context) error {
	s.owner.Claim()
	defer close(s.done)

	logger.Logf(logger.Allow, "session", "started for %s", s.calc.Model)

	for {
		if err := ctx.Err(); err != nil {
			logger.Log(logger.Allow, "session", "terminating")
			return err
		}

		idle, err := s.advance()
		if err != nil {
			return err
		}

		// the run state can change as a result of the emulation or of an
		// action processed in the previous iteration
		if st := s.calc.State(); st != s.lastState {
			s.lastState = st
			s.stateChanged(st)
		}

		s.keys.service(s.calc)

		if idle {
			select {
			case <-ctx.Done():
			case a := <-s.actions:
				a()
			case <-time.After(idlePeriod):
			}
			continue
		}

		select {
		case a := <-s.actions:
			a()
		default:
		}

		s.pace(ctx)
	}
}

// advance the emulation according to the current run state and step
// requests. returns true if there was nothing to do.
func (s *Session) advance() (bool, error) {
	c := s.calc
	slice := Timeslice(s.speed, c.Clock.Freq)

	switch {
	case c.State().IsRunning() && c.LCD.Active():
		if st, changed := s.keypad.Poll(c); changed {
			s.send(notifications.NotifyKeypadState, st.String())
		}
		return false, c.RunTStates(slice)

	case s.remainingSteps > 0:
		n := s.remainingSteps
		s.remainingSteps = 0
		return false, c.RunSteps(n)

	case s.runToAddr != nil:
		err := c.RunFor(hardware.RunRequest{
			TStates: slice,
			StopAt:  s.runToAddr,
		})
		if c.Mem.Translate(c.CPU.PC()) == *s.runToAddr || c.State() == govern.HaltedAtBreakpoint {
			s.runToAddr = nil
		}
		return false, err

	case s.runToReturn:
		err := c.RunFor(hardware.RunRequest{
			TStates:      slice,
			StopOnReturn: true,
		})
		if c.LastStep.Returned || c.State() == govern.HaltedAtBreakpoint {
			s.runToReturn = false
		}
		return false, err
	}

	return true, nil
}

func (s *Session) stateChanged(st govern.State) {
	switch st {
	case govern.Running:
		s.send(notifications.NotifyRunning)
	case govern.HaltedAtBreakpoint:
		s.send(notifications.NotifyBreakpoint, s.calc.Mem.Translate(s.calc.CPU.PC()).String())
	default:
		s.send(notifications.NotifyStopped)
	}
}

func (s *Session) send(notice notifications.Notice, data ...string) {
	if s.notify == nil {
		return
	}
	if err := s.notify.Notify(notice, data...); err != nil {
		logger.Logf(logger.Allow, "session", "notification %s: %v", notice, err)
	}
}

// resetPace restarts the comparison of wall clock time against emulated time.
func (s *Session) resetPace() {
	s.paceStart = time.Time{}
	s.paceElapsed = 0
}

// pace sleeps until wall clock time has caught up with emulated time.
func (s *Session) pace(ctx context.Context) {
	if s.paceStart.IsZero() {
		s.paceStart = time.Now()
		s.paceElapsed = s.calc.Clock.Elapsed()
		return
	}

	if s.maxSpeed {
		return
	}

	emulated := s.calc.Clock.Elapsed() - s.paceElapsed
	want := time.Duration(emulated * float64(time.Second) * 100 / float64(s.speed))
	actual := time.Since(s.paceStart)

	if want > actual {
		select {
		case <-ctx.Done():
		case <-time.After(want - actual):
		}
	}
}

// enqueue an action for the session goroutine.
func (s *Session) enqueue(a func()) error {
	select {
	case <-s.done:
		return curated.Errorf(Closed)
	default:
	}

	select {
	case s.actions <- a:
		return nil
	case <-s.done:
		return curated.Errorf(Closed)
	}
}

// Do runs the function on the session goroutine and waits for it to
// complete. The function must not call any other Session method.
func (s *Session) Do(ctx context.Context, f func(c *hardware.Calc)) error {
	complete := make(chan struct{})

	err := s.enqueue(func() {
		s.owner.Check()
		f(s.calc)
		close(complete)
	})
	if err != nil {
		return err
	}

	select {
	case <-complete:
		return nil
	case <-s.done:
		return curated.Errorf(Closed)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) String() string {
	return fmt.Sprintf("%s session", s.calc.Model)
}
