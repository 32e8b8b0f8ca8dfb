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

package symbols

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/logger"
)

// Sentinal errors.
const (
	FileError = "symbols: file: %v"
)

// ReadFile adds the labels in an assembler label file to the table. Each line
// of the file is of the form:
//
//	NAME = $ADDR
//
// The address is a hexadecimal CPU address. Labels are placed in the supplied
// page. Lines that cannot be parsed are ignored.
//
// Labels from the file are preferred over existing labels at the same
// address.
func (l *Labels) ReadFile(filename string, page int, isRAM bool) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer f.Close()

	return l.Read(f, page, isRAM)
}

// Read is like ReadFile() but reads from an io.Reader.
func (l *Labels) Read(r io.Reader, page int, isRAM bool) error {
	var n int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name, addr, ok := parseLine(scanner.Text())
		if !ok {
			continue // for loop
		}
		err := l.Add(name, memory.NewWideAddress(page, int(addr), isRAM), true)
		if err != nil {
			return err
		}
		n++
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(FileError, err)
	}

	logger.Logf(logger.Allow, "symbols", "read %d labels", n)

	return nil
}

func parseLine(ln string) (string, uint16, bool) {
	name, val, ok := strings.Cut(ln, "=")
	if !ok {
		return "", 0, false
	}

	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", 0, false
	}

	val = strings.TrimSpace(val)
	switch {
	case strings.HasPrefix(val, "$"):
		val = val[1:]
	case strings.HasPrefix(val, "0x"):
		val = val[2:]
	case strings.HasSuffix(val, "h") || strings.HasSuffix(val, "H"):
		val = val[:len(val)-1]
	}

	addr, err := strconv.ParseUint(val, 16, 16)
	if err != nil {
		return "", 0, false
	}

	return name, uint16(addr), true
}
