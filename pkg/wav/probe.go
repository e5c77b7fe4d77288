package wav

import (
	"errors"
	"io"
	"os"
	"time"

	// Packages
	wav "github.com/go-audio/wav"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	ErrNotWave = errors.New("not a WAV file")
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Duration returns the playing time of a WAV file on disk. Files which are
// not WAV return ErrNotWave.
func Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Probe(f)
}

// Probe returns the playing time of WAV data, from the size of the PCM chunk
func Probe(r io.ReadSeeker) (time.Duration, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return 0, ErrNotWave
	} else if err := decoder.FwdToPCM(); err != nil {
		return 0, err
	}

	// Bytes per second of audio
	rate := int64(decoder.SampleRate) * int64(decoder.NumChans) * int64((decoder.BitDepth-1)/8+1)
	if rate <= 0 {
		return 0, ErrNotWave
	}

	// Return success
	return time.Duration(decoder.PCMLen() * int64(time.Second) / rate), nil
}
