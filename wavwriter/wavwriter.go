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

// Package wavwriter allows writing of link port audio to disk as a WAV file.
// Note that audio data is buffered in memory in its entirety and written to
// disk when the WavWriter is closed. It is therefore probably only suitable
// for testing purposes.
//
// Samples are collected from the link device at every video frame event. The
// link device must implement the peripherals.AudioSampler interface.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/hardware"
	"github.com/jetsetilly/gopher83/hardware/events"
	"github.com/jetsetilly/gopher83/hardware/peripherals"
	"github.com/jetsetilly/gopher83/logger"
)

// Sentinal errors.
const (
	WavWriterError = "wavwriter: %v"
)

const (
	bitDepth    = 16
	numChannels = 1

	// PCM format in the WAV header
	formatPCM = 1
)

// WavWriter collects audio samples from a calculator.
type WavWriter struct {
	filename string
	sampler  peripherals.AudioSampler
	buffer   []int

	calc   *hardware.Calc
	handle events.Handle
}

// New is the preferred method of initialisation for the WavWriter type. The
// calculator must have a link device that implements the AudioSampler
// interface.
func New(filename string, c *hardware.Calc) (*WavWriter, error) {
	sampler, ok := c.Link.(peripherals.AudioSampler)
	if !ok {
		return nil, curated.Errorf(WavWriterError, "link device does not produce audio")
	}
	if sampler.SampleRate() <= 0 {
		return nil, curated.Errorf(WavWriterError, "invalid sample rate")
	}

	aw := &WavWriter{
		filename: filename,
		sampler:  sampler,
		buffer:   make([]int, 0, sampler.SampleRate()),
		calc:     c,
	}

	var err error
	aw.handle, err = c.Events.Register(events.VideoFrame, aw.frame, nil)
	if err != nil {
		return nil, curated.Errorf(WavWriterError, err)
	}

	return aw, nil
}

func (aw *WavWriter) frame(_ events.Kind, _ *hardware.Calc, _ any) {
	aw.buffer = aw.sampler.DrainSamples(aw.buffer)
}

// NumSamples returns the number of samples collected so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// Close stops the collection of samples and writes the WAV file.
func (aw *WavWriter) Close() (rerr error) {
	if err := aw.calc.Events.Unregister(aw.handle); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	// collect anything produced since the last frame
	aw.buffer = aw.sampler.DrainSamples(aw.buffer)

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	rate := aw.sampler.SampleRate()
	enc := wav.NewEncoder(f, rate, bitDepth, numChannels, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  rate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}
