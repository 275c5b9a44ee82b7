// Package audio decodes audio files into the mono sample buffer every
// analysis runs on. WAV files already at the analysis rate are decoded
// natively; everything else goes through an ffmpeg pipe.
package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-audio/wav"
)

// AnalysisSampleRate is the fixed mono sample rate all analysis runs at.
const AnalysisSampleRate = 22050

var (
	ErrInputNotFound = errors.New("input audio not found")
	ErrDecodeFailure = errors.New("audio decode failure")
)

// SampleBuffer is an immutable view of mono PCM samples at a fixed rate.
type SampleBuffer struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the buffer length in seconds.
func (b SampleBuffer) Duration() float64 {
	if b.SampleRate == 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// PCM16 renders the buffer as little-endian 16-bit PCM bytes.
func (b SampleBuffer) PCM16() []byte {
	out := make([]byte, 2*len(b.Samples))
	for i, s := range b.Samples {
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(s*math.MaxInt16)))
	}
	return out
}

// DecodeFile decodes an audio file into a SampleBuffer at AnalysisSampleRate.
func DecodeFile(ctx context.Context, path string) (SampleBuffer, error) {
	if _, err := os.Stat(path); err != nil {
		return SampleBuffer{}, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		buffer, ok, err := decodeWav(path)
		if err != nil {
			return SampleBuffer{}, err
		}
		if ok {
			return buffer, nil
		}
		// Foreign sample rate, let ffmpeg resample.
	}

	return decodeFFmpeg(ctx, path)
}

// decodeWav decodes a WAV file natively. It reports ok=false when the file's
// sample rate differs from the analysis rate.
func decodeWav(path string) (SampleBuffer, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return SampleBuffer{}, false, fmt.Errorf("%w: %v", ErrInputNotFound, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return SampleBuffer{}, false, fmt.Errorf("%w: %s: not a valid wav file", ErrDecodeFailure, path)
	}

	if int(decoder.SampleRate) != AnalysisSampleRate {
		return SampleBuffer{}, false, nil
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return SampleBuffer{}, false, fmt.Errorf("%w: %s: %v", ErrDecodeFailure, path, err)
	}

	channels := pcm.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	scale := float64(int(1) << (decoder.BitDepth - 1))

	samples := make([]float64, 0, len(pcm.Data)/channels)
	for i := 0; i+channels <= len(pcm.Data); i += channels {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			sum += float64(pcm.Data[i+ch]) / scale
		}
		samples = append(samples, sum/float64(channels))
	}

	return SampleBuffer{Samples: samples, SampleRate: AnalysisSampleRate}, true, nil
}

// decodeFFmpeg pipes the file through ffmpeg, downmixing to mono s16le at the
// analysis rate.
func decodeFFmpeg(ctx context.Context, path string) (SampleBuffer, error) {
	args := []string{
		"-i", path,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(AnalysisSampleRate),
		"-ac", "1",
		"-f", "s16le",
		"-loglevel", "error",
		"-",
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return SampleBuffer{}, fmt.Errorf("%w: stdout pipe: %v", ErrDecodeFailure, err)
	}

	if err := cmd.Start(); err != nil {
		return SampleBuffer{}, fmt.Errorf("%w: start ffmpeg: %v", ErrDecodeFailure, err)
	}

	raw, readErr := io.ReadAll(stdout)
	waitErr := cmd.Wait()
	if readErr != nil {
		return SampleBuffer{}, fmt.Errorf("%w: read ffmpeg output: %v", ErrDecodeFailure, readErr)
	}
	if waitErr != nil {
		return SampleBuffer{}, fmt.Errorf("%w: %s: %v: %s", ErrDecodeFailure, path, waitErr, stderr.String())
	}

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		samples[i] = float64(int16(binary.LittleEndian.Uint16(raw[2*i:]))) / (math.MaxInt16 + 1)
	}

	return SampleBuffer{Samples: samples, SampleRate: AnalysisSampleRate}, nil
}
