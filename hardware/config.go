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

package hardware

// DefaultFrameRate is the number of video frame events per emulated second.
const DefaultFrameRate = 30

// Config is the configuration of a Calc. It is passed to NewCalc() and does
// not change for the lifetime of the Calc.
type Config struct {
	// turn the calculator on after a model has been loaded
	AutoTurnOn bool

	// number of video frame events per emulated second. a value of zero or
	// less is replaced with DefaultFrameRate
	FrameRate int

	// called on the emulation goroutine when a breakpoint is hit
	OnBreakpoint func(*Calc)
}

// DefaultConfig returns the configuration used when no preferences are
// available.
func DefaultConfig() Config {
	return Config{
		AutoTurnOn: true,
		FrameRate:  DefaultFrameRate,
	}
}

// framePeriod returns the length of a video frame in emulated seconds.
func (cfg Config) framePeriod() float64 {
	if cfg.FrameRate <= 0 {
		return 1.0 / DefaultFrameRate
	}
	return 1.0 / float64(cfg.FrameRate)
}
