package wav_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/wav"
	"github.com/stretchr/testify/assert"
)

func Test_Wav_001(t *testing.T) {
	assert := assert.New(t)
	buf, err := wav.Silence(1500, 16000)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(24000, buf.Samples)

	data, err := io.ReadAll(buf)
	if !assert.NoError(err) {
		t.FailNow()
	}
	d, err := wav.Probe(bytes.NewReader(data))
	if assert.NoError(err) {
		assert.Equal(1500*time.Millisecond, d)
	}
}

func Test_Wav_002(t *testing.T) {
	assert := assert.New(t)
	buf, err := wav.Silence(250, 8000)
	if !assert.NoError(err) {
		t.FailNow()
	}
	path := filepath.Join(t.TempDir(), "audio.wav")
	data, err := io.ReadAll(buf)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NoError(os.WriteFile(path, data, 0o600))

	d, err := wav.Duration(path)
	if assert.NoError(err) {
		assert.Equal(250*time.Millisecond, d)
	}
}

func Test_Wav_003(t *testing.T) {
	assert := assert.New(t)
	_, err := wav.Probe(strings.NewReader("ID3 this is an mp3"))
	assert.ErrorIs(err, wav.ErrNotWave)

	_, err = wav.Duration(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(err)
}

func Test_Wav_004(t *testing.T) {
	assert := assert.New(t)

	// Durations come from the number of samples, never rounded up
	for _, rate := range []int{8000, 16000, 22050, 44100} {
		for _, ms := range []int{1, 333, 1001, 2500} {
			buf, err := wav.Silence(ms, rate)
			if !assert.NoError(err) {
				continue
			}
			data, err := io.ReadAll(buf)
			if !assert.NoError(err) {
				continue
			}
			d, err := wav.Probe(bytes.NewReader(data))
			if assert.NoError(err) {
				expected := time.Duration(buf.Samples) * time.Second / time.Duration(rate)
				assert.Equal(expected, d, "%dms at %dHz", ms, rate)
				assert.LessOrEqual(d, time.Duration(ms)*time.Millisecond)
			}
		}
	}
}
