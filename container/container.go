// Package container loads and saves a hyperspectral cube from a WAV
// file acting as a generic host container: the file's PCM stream
// carries the cube's three extents followed by its flattened pixel
// values, one sample per PCM frame. This mirrors the wav2flac PCM
// bridge in spirit while serving as an arbitrary boundary format rather
// than an audio codec's native input.
package container

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/internal/bufseekio"
	"github.com/mewkiz/hypercube/xerr"
	"github.com/mewkiz/pkg/dbg"
	"github.com/mewkiz/pkg/errutil"
	"github.com/pkg/errors"
)

func init() {
	dbg.Debug = false
}

const (
	sampleRate = 44100
	bitDepth   = 32
	numChans   = 1
	wavPCM     = 1
)

// LoadCube decodes a cube previously written by SaveCube from r. The
// first three PCM samples give B, R, C; the remaining B*R*C samples are
// the flattened cube in band,row,col order.
func LoadCube(r io.ReadSeeker) (*cube.Cube, error) {
	dec := wav.NewDecoder(bufseekio.NewReadSeeker(r))
	if !dec.IsValidFile() {
		return nil, errors.New("container.LoadCube: not a valid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, errors.WithStack(err)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
		Data:           make([]int, 3),
		SourceBitDepth: bitDepth,
	}
	n, err := dec.PCMBuffer(buf)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if n != 3 {
		return nil, errutil.Err(xerr.Shape("container.LoadCube: expected 3 header samples, got %d", n))
	}
	b, r3, c := buf.Data[0], buf.Data[1], buf.Data[2]

	flat := make([]cube.Sample, 0, b*r3*c)
	body := &audio.IntBuffer{
		Format:         buf.Format,
		Data:           make([]int, 4096),
		SourceBitDepth: bitDepth,
	}
	for !dec.EOF() {
		n, err := dec.PCMBuffer(body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if n == 0 {
			break
		}
		for _, v := range body.Data[:n] {
			flat = append(flat, cube.Sample(v))
		}
	}

	cb, err := cube.FromFlat(b, r3, c, flat)
	if err != nil {
		return nil, errutil.Err(err)
	}
	dbg.Println("container.LoadCube: loaded cube shape", b, r3, c)
	return cb, nil
}

// SaveCube encodes c into w as a WAV PCM stream: three header samples
// (B, R, C) followed by the flattened cube.
func SaveCube(w io.WriteSeeker, c *cube.Cube) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, numChans, wavPCM)

	b, r, col := c.Shape()
	header := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
		Data:           []int{b, r, col},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(header); err != nil {
		return errors.WithStack(err)
	}

	flat := c.Flatten()
	data := make([]int, len(flat))
	for i, v := range flat {
		data[i] = int(v)
	}
	body := &audio.IntBuffer{
		Format:         header.Format,
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(body); err != nil {
		return errors.WithStack(err)
	}
	dbg.Println("container.SaveCube: wrote cube shape", b, r, col)
	return enc.Close()
}
