//go:build unit

package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"postify/internal/domain/recipient"
	"postify/internal/imaging"
	"postify/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeAsset(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// assets returns a config with a transparent overlay and no logo or font on
// disk, so the compositor runs on its fallbacks.
func testAssets(t *testing.T) config.AssetsConfig {
	t.Helper()
	dir := t.TempDir()
	overlay := makePNG(t, imaging.CanvasSize, imaging.CanvasSize, color.NRGBA{0, 0, 0, 0})
	return config.AssetsConfig{
		OverlayPath: writeAsset(t, dir, "overlay.png", overlay),
		FontPath:    filepath.Join(dir, "missing.ttf"),
	}
}

func TestNewCompositor(t *testing.T) {
	t.Run("missing overlay asset is fatal", func(t *testing.T) {
		dir := t.TempDir()
		_, err := imaging.NewCompositor(config.AssetsConfig{
			OverlayPath: filepath.Join(dir, "nope.png"),
		}, testLogger())
		assert.Error(t, err)
	})

	t.Run("corrupt overlay asset is fatal", func(t *testing.T) {
		dir := t.TempDir()
		_, err := imaging.NewCompositor(config.AssetsConfig{
			OverlayPath: writeAsset(t, dir, "overlay.png", []byte("not a png")),
		}, testLogger())
		assert.Error(t, err)
	})

	t.Run("missing logo and font fall back without error", func(t *testing.T) {
		comp, err := imaging.NewCompositor(testAssets(t), testLogger())
		require.NoError(t, err)
		assert.NotNil(t, comp)
	})
}

func TestCompose(t *testing.T) {
	comp, err := imaging.NewCompositor(testAssets(t), testLogger())
	require.NoError(t, err)

	red := color.NRGBA{255, 0, 0, 255}
	base := image.NewNRGBA(image.Rect(0, 0, imaging.CanvasSize, imaging.CanvasSize))
	for y := 0; y < imaging.CanvasSize; y++ {
		for x := 0; x < imaging.CanvasSize; x++ {
			base.SetNRGBA(x, y, red)
		}
	}

	t.Run("logo and footer branding", func(t *testing.T) {
		logo := makePNG(t, 300, 300, color.NRGBA{0, 255, 0, 255})

		out, err := comp.Compose(base, recipient.LogoAndFooter{
			Logo:    logo,
			Phone:   "8299396255",
			Mail:    "a@b.in",
			Website: "b.in",
		})
		require.NoError(t, err)

		b := out.Bounds()
		assert.Equal(t, imaging.CanvasSize, b.Dx())
		assert.Equal(t, imaging.CanvasSize, b.Dy())

		// Logo occupies the top-left square with padding.
		px := out.NRGBAAt(70, 70)
		assert.Greater(t, px.G, px.R, "logo region should be green")

		// Well away from logo and footer the base shows through.
		assert.Equal(t, red, out.NRGBAAt(512, 512))
	})

	t.Run("missing recipient logo without default is skipped", func(t *testing.T) {
		out, err := comp.Compose(base, recipient.LogoAndFooter{
			Phone:   "111",
			Mail:    "a@b.in",
			Website: "b.in",
		})
		require.NoError(t, err)
		assert.Equal(t, red, out.NRGBAAt(70, 70))
	})

	t.Run("corrupt recipient logo is a recipient-scoped error", func(t *testing.T) {
		_, err := comp.Compose(base, recipient.LogoAndFooter{
			Logo:  []byte("junk"),
			Phone: "111",
		})
		assert.Error(t, err)
	})

	t.Run("full canvas overlay covers the base", func(t *testing.T) {
		overlay := makePNG(t, 512, 512, color.NRGBA{0, 0, 255, 255})

		out, err := comp.Compose(base, recipient.FullCanvasOverlay{Overlay: overlay})
		require.NoError(t, err)

		assert.Equal(t, imaging.CanvasSize, out.Bounds().Dx())
		px := out.NRGBAAt(512, 512)
		assert.Greater(t, px.B, px.R, "overlay should dominate")
	})

	t.Run("corrupt subscriber overlay is an error", func(t *testing.T) {
		_, err := comp.Compose(base, recipient.FullCanvasOverlay{Overlay: []byte("junk")})
		assert.Error(t, err)
	})

	t.Run("base image is never mutated", func(t *testing.T) {
		before := make([]uint8, len(base.Pix))
		copy(before, base.Pix)

		logo := makePNG(t, 64, 64, color.NRGBA{0, 255, 0, 255})
		_, err := comp.Compose(base, recipient.LogoAndFooter{Logo: logo, Phone: "111"})
		require.NoError(t, err)

		overlay := makePNG(t, 256, 256, color.NRGBA{0, 0, 255, 128})
		_, err = comp.Compose(base, recipient.FullCanvasOverlay{Overlay: overlay})
		require.NoError(t, err)

		assert.Equal(t, before, base.Pix)
	})

	t.Run("undersized base is scaled to the canvas", func(t *testing.T) {
		small := image.NewNRGBA(image.Rect(0, 0, 256, 256))
		for y := 0; y < 256; y++ {
			for x := 0; x < 256; x++ {
				small.SetNRGBA(x, y, red)
			}
		}

		out, err := comp.Compose(small, recipient.LogoAndFooter{Phone: "111"})
		require.NoError(t, err)
		assert.Equal(t, imaging.CanvasSize, out.Bounds().Dx())
		assert.Equal(t, imaging.CanvasSize, out.Bounds().Dy())
	})
}
