package wav

import (
	"io"

	// Packages
	audio "github.com/go-audio/audio"
	wav "github.com/go-audio/wav"
	writerseeker "github.com/orcaman/writerseeker"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Buffer is an encoded WAV file held in memory
type Buffer struct {
	io.Reader
	SampleRate int
	Samples    int
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewInt16 encodes mono 16-bit samples as a WAV file
func NewInt16(data []int16, sampleRate int) (*Buffer, error) {
	buf := new(writerseeker.WriterSeeker)
	encoder := wav.NewEncoder(buf, sampleRate, 16, 1, 1)
	pcm := audio.PCMBuffer{
		I16:      data,
		DataType: audio.DataTypeI16,
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
	}
	if err := encoder.Write(pcm.AsIntBuffer()); err != nil {
		return nil, err
	} else if err := encoder.Close(); err != nil {
		return nil, err
	}

	// Return success
	return &Buffer{
		Reader:     buf.Reader(),
		SampleRate: sampleRate,
		Samples:    len(data),
	}, nil
}

// Silence encodes a mono WAV file of the given number of milliseconds
func Silence(ms int, sampleRate int) (*Buffer, error) {
	return NewInt16(make([]int16, ms*sampleRate/1000), sampleRate)
}
