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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gopher83/logger"
)

const url = "/debug/statsview"

// sample period in milliseconds and the number of samples kept. two minutes
// of history
const (
	sampleInterval = 500
	maxPoints      = 240
)

var launched sync.Once

// Launch a new goroutine running the statsview. Only the first call starts
// a server. Later calls print the address again.
func Launch(output io.Writer) {
	launched.Do(func() {
		viewer.SetConfiguration(
			viewer.WithAddr(Address),
			viewer.WithInterval(sampleInterval),
			viewer.WithMaxPoints(maxPoints),
		)
		go func() {
			mgr := statsview.New()
			mgr.Start()
		}()
		logger.Logf(logger.Allow, "statsview", "serving on %s", Address)
	})

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
