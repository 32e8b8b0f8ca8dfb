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

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/debugger/govern"
	"github.com/jetsetilly/gopher83/hardware"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/logger"
	"github.com/jetsetilly/gopher83/notifications"
	"github.com/jetsetilly/gopher83/vat"
)

// Sentinal errors.
const (
	InvalidSpeed = "session: invalid speed: %d"
	IsRunning    = "session: calculator is running"
)

// the range of values accepted by SetSpeed()
const (
	MinSpeed = 1
	MaxSpeed = 10000
)

// clearSteps forgets any outstanding step requests.
func (s *Session) clearSteps() {
	s.remainingSteps = 0
	s.runToAddr = nil
	s.runToReturn = false
}

// Resume emulation. Outstanding step requests are forgotten.
func (s *Session) Resume() error {
	return s.enqueue(func() {
		s.clearSteps()
		s.calc.SetState(govern.Running)
		s.resetPace()
	})
}

// Stop emulation. Outstanding step requests are forgotten.
func (s *Session) Stop() error {
	return s.enqueue(func() {
		s.clearSteps()
		s.calc.SetState(govern.Stopped)
	})
}

// step requests are ignored while the calculator is running.
func (s *Session) stepRequest(f func()) error {
	return s.enqueue(func() {
		if s.calc.State().IsRunning() {
			logger.Log(logger.Allow, "session", curated.Errorf(IsRunning))
			return
		}
		s.clearSteps()
		f()
	})
}

// Step executes a single instruction.
func (s *Session) Step() error {
	return s.StepN(1)
}

// StepN executes n instructions.
func (s *Session) StepN(n int) error {
	return s.stepRequest(func() {
		s.remainingSteps = n
	})
}

// StepUntil executes instructions until the program counter reaches the
// address.
func (s *Session) StepUntil(w memory.WideAddress) error {
	return s.stepRequest(func() {
		s.runToAddr = &w
	})
}

// StepOut executes instructions until the current subroutine returns.
func (s *Session) StepOut() error {
	return s.stepRequest(func() {
		s.runToReturn = true
	})
}

// TurnOn runs the power-on sequence if the calculator is not already on.
func (s *Session) TurnOn() error {
	return s.enqueue(func() {
		s.turnOn()
	})
}

func (s *Session) turnOn() {
	active := s.calc.LCD.Active()
	if err := s.calc.TurnOn(); err != nil {
		logger.Log(logger.Allow, "session", err)
		return
	}
	if !active && s.calc.LCD.Active() {
		s.send(notifications.NotifyTurnedOn)
	}
	s.resetPace()
}

// Reset the calculator. A running calculator is turned on again. The run
// state is preserved.
func (s *Session) Reset() error {
	return s.enqueue(func() {
		st := s.calc.State()
		s.clearSteps()
		if err := s.calc.Reset(); err != nil {
			logger.Log(logger.Allow, "session", err)
			return
		}
		if st.IsRunning() {
			s.turnOn()
			s.calc.SetState(st)
		}
		s.resetPace()
	})
}

// SetSpeed sets the emulation speed as a percentage of the speed of the real
// hardware.
func (s *Session) SetSpeed(speed int) error {
	if speed < MinSpeed || speed > MaxSpeed {
		return curated.Errorf(InvalidSpeed, speed)
	}
	return s.enqueue(func() {
		s.speed = speed
		s.resetPace()
	})
}

// SetMaxSpeed disables pacing. The speed setting still decides the size of
// each time slice.
func (s *Session) SetMaxSpeed(on bool) error {
	return s.enqueue(func() {
		s.maxSpeed = on
		s.resetPace()
	})
}

// QueueKeys adds keys to the key queue. Each key is pressed and released in
// turn.
func (s *Session) QueueKeys(keys ...Key) error {
	return s.enqueue(func() {
		s.keys.push(keys...)
	})
}

// PressKey presses the key immediately. It remains pressed until
// ReleaseKey() is called.
func (s *Session) PressKey(k Key) error {
	return s.enqueue(func() {
		s.calc.Keypad.Press(k.Group, k.Bit)
	})
}

// ReleaseKey releases a key pressed with PressKey().
func (s *Session) ReleaseKey(k Key) error {
	return s.enqueue(func() {
		s.calc.Keypad.Release(k.Group, k.Bit)
	})
}

// PendingKeys returns the number of queued keys that have not yet been
// released.
func (s *Session) PendingKeys(ctx context.Context) (int, error) {
	var n int
	err := s.Do(ctx, func(_ *hardware.Calc) {
		n = s.keys.pending()
	})
	return n, err
}

// LastAnswer decodes the value of the Ans variable.
func (s *Session) LastAnswer(ctx context.Context) (string, error) {
	var ans string
	var ansErr error

	err := s.Do(ctx, func(c *hardware.Calc) {
		ans, ansErr = vat.Ans(c.Mem, c.Model)
		if ansErr == nil {
			s.send(notifications.NotifyLastAnswer, ans)
		}
	})
	if err != nil {
		return "", err
	}
	if ansErr != nil {
		return "", ansErr
	}

	return ans, nil
}
