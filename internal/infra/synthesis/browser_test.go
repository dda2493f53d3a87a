//go:build unit

package synthesis_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"postify/internal/infra/synthesis"
	"postify/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowserSynth(command string) *synthesis.BrowserSynthesizer {
	return synthesis.NewBrowserSynthesizer(config.BrowserConfig{
		Command: command,
		Timeout: 5 * time.Second,
	})
}

// writeStdoutFixture writes content to a temp file and returns a command that
// emits it on stdout, standing in for the automation script.
func writeStdoutFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return "cat " + path
}

func TestBrowserSynthesize(t *testing.T) {
	t.Run("decodes base64 PNG output", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 8, 6))))
		encoded := base64.StdEncoding.EncodeToString(buf.Bytes()) + "\n"

		synth := newBrowserSynth(writeStdoutFixture(t, encoded))

		img, err := synth.Synthesize(context.Background(), "a diya at dusk")
		require.NoError(t, err)
		assert.Equal(t, 8, img.Bounds().Dx())
		assert.Equal(t, 6, img.Bounds().Dy())
	})

	t.Run("command failure carries stderr", func(t *testing.T) {
		synth := newBrowserSynth("cat /definitely/not/a/file")

		_, err := synth.Synthesize(context.Background(), "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "browser synthesizer failed")
	})

	t.Run("empty output is an error", func(t *testing.T) {
		synth := newBrowserSynth("true")

		_, err := synth.Synthesize(context.Background(), "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "produced no output")
	})

	t.Run("non-base64 output is an error", func(t *testing.T) {
		synth := newBrowserSynth(writeStdoutFixture(t, "!!not-base64!!"))

		_, err := synth.Synthesize(context.Background(), "prompt")
		assert.Error(t, err)
	})

	t.Run("base64 of a non-image is an error", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("plain text"))
		synth := newBrowserSynth(writeStdoutFixture(t, encoded))

		_, err := synth.Synthesize(context.Background(), "prompt")
		assert.Error(t, err)
	})

	t.Run("unconfigured command is an error", func(t *testing.T) {
		synth := newBrowserSynth("")

		_, err := synth.Synthesize(context.Background(), "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})
}
