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

package vat

import (
	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/hardware/model"
)

// Variable is a displayable name and value pair.
type Variable struct {
	Name  string
	Type  uint8
	Value string
}

// Variables scans the VAT and decodes every symbol. Programs and other
// types that cannot be rendered have the value Unsupported.
func Variables(mem Memory, m model.Model) ([]Variable, error) {
	t, err := Scan(mem, m)
	if err != nil {
		return nil, err
	}

	vars := make([]Variable, 0, len(t.Symbols))
	for _, s := range t.Symbols {
		v, err := Decode(mem, s.Ref())
		if err != nil {
			return nil, err
		}
		vars = append(vars, Variable{
			Name:  s.DisplayName,
			Type:  s.TypeID,
			Value: v,
		})
	}

	return vars, nil
}

// Ans returns the decoded value of the answer variable.
func Ans(mem Memory, m model.Model) (string, error) {
	t, err := Scan(mem, m)
	if err != nil {
		return "", err
	}

	s, ok := t.Find([]uint8{AnsName})
	if !ok {
		return "", curated.Errorf(NoAnswer)
	}

	return Decode(mem, s.Ref())
}
