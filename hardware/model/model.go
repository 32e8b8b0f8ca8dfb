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

// Package model enumerates the calculator models understood by the emulator.
// The order of the enumeration is significant. Later models are later
// generations and comparisons such as m >= TI83P are used throughout the
// emulator to select behaviour.
package model

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher83/curated"
)

// Model of calculator.
type Model int

// List of supported models.
const (
	TI81 Model = iota
	TI82
	TI83
	TI85
	TI86
	TI73
	TI83P
	TI83PSE
	TI84P
	TI84PSE
	TI84PCSE
)

// Sentinal error returned by Parse().
const UnknownModel = "model: unknown model (%s)"

var names = map[Model]string{
	TI81:     "TI-81",
	TI82:     "TI-82",
	TI83:     "TI-83",
	TI85:     "TI-85",
	TI86:     "TI-86",
	TI73:     "TI-73",
	TI83P:    "TI-83 Plus",
	TI83PSE:  "TI-83 Plus SE",
	TI84P:    "TI-84 Plus",
	TI84PSE:  "TI-84 Plus SE",
	TI84PCSE: "TI-84 Plus CSE",
}

func (m Model) String() string {
	if s, ok := names[m]; ok {
		return s
	}
	return fmt.Sprintf("unknown model (%d)", int(m))
}

// Valid returns true if the model is one of the listed models.
func (m Model) Valid() bool {
	_, ok := names[m]
	return ok
}

// HasVAT returns true if the model's operating system maintains a variable
// allocation table that the vat package can scan.
func (m Model) HasVAT() bool {
	return m >= TI83P
}

// Is86Family returns true for the TI-85 and TI-86. these models use raw names
// for all variables.
func (m Model) Is86Family() bool {
	return m == TI85 || m == TI86
}

// IsColor returns true for the newest chipset family.
func (m Model) IsColor() bool {
	return m >= TI84PCSE
}

// Parse returns the model named by s. The match is case insensitive and
// ignores spaces, hyphens and the "TI" prefix. For example, "84pse",
// "TI-84PSE" and "ti 84 plus se" all name the TI-84 Plus SE.
func Parse(s string) (Model, error) {
	n := normalise(s)
	for m, name := range names {
		if n == normalise(name) || n == abbreviate(name) {
			return m, nil
		}
	}
	return TI81, curated.Errorf(UnknownModel, s)
}

func normalise(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
	return strings.TrimPrefix(s, "ti")
}

func abbreviate(name string) string {
	return strings.ReplaceAll(normalise(name), "plus", "p")
}
