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

// Package preferences holds the user preferences for the emulated hardware
// and the emulation pace. Values are persisted with the prefs package.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher83/hardware"
	"github.com/jetsetilly/gopher83/prefs"
	"github.com/jetsetilly/gopher83/resources"
)

// Default values.
const (
	DefaultSpeed    = 100
	DefaultMaxSpeed = false
)

// speed is a percentage of the model's real clock frequency.
const (
	minSpeed = 1
	maxSpeed = 10000
)

// Preferences defines and collates the preference values used by the
// hardware and the emulation session.
type Preferences struct {
	dsk *prefs.Disk

	// turn the calculator on after a model has been loaded
	AutoTurnOn prefs.Bool

	// number of video frame events per emulated second
	FrameRate prefs.Int

	// emulation speed as a percentage of real hardware
	Speed prefs.Int

	// run as fast as possible, ignoring Speed
	MaxSpeed prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences file is in the resources directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but with an explicit path to
// the preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.FrameRate.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("frame rate must be positive")
		}
		return nil
	})
	p.Speed.SetHookPre(func(v prefs.Value) error {
		s := v.(int)
		if s < minSpeed || s > maxSpeed {
			return fmt.Errorf("speed must be between %d and %d", minSpeed, maxSpeed)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.autoturnon", &p.AutoTurnOn)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.framerate", &p.FrameRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.speed", &p.Speed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.maxspeed", &p.MaxSpeed)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	cfg := hardware.DefaultConfig()
	p.AutoTurnOn.Set(cfg.AutoTurnOn)
	p.FrameRate.Set(hardware.DefaultFrameRate)
	p.Speed.Set(DefaultSpeed)
	p.MaxSpeed.Set(DefaultMaxSpeed)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a hardware configuration built from the current preference
// values.
func (p *Preferences) Config() hardware.Config {
	cfg := hardware.DefaultConfig()
	cfg.AutoTurnOn = p.AutoTurnOn.Get().(bool)
	cfg.FrameRate = p.FrameRate.Get().(int)
	return cfg
}
