// SPDX-License-Identifier: EPL-2.0

package tonegen

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/tonegen/formats/wav"
	"github.com/ik5/tonegen/signal"
)

// GenerateWAV synthesizes the sine signal described by spec and encodes
// it as 16-bit PCM WAV into w. The spec is validated before any sample
// is computed; validation errors match signal.ErrInvalidSpec.
func GenerateWAV(w io.Writer, spec signal.Spec) error {
	buf, err := signal.Generate(spec)
	if err != nil {
		return err
	}

	return wav.WriteBuffer(w, spec.SampleRate, buf)
}

// WriteFile is GenerateWAV to a file path. It creates or overwrites
// path; on any failure after creation the partial file is removed, so a
// failed call never leaves a truncated WAV behind.
func WriteFile(path string, spec signal.Spec) error {
	// Validate and synthesize before touching the filesystem
	buf, err := signal.Generate(spec)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := wav.WriteBuffer(f, spec.SampleRate, buf); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
