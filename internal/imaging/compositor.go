package imaging

import (
	"image"
	"image/color"
	"log/slog"
	"os"

	"postify/internal/domain/recipient"
	"postify/internal/pkg/config"
	"postify/internal/pkg/errs"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// CanvasSize is the square edge of every published post.
	CanvasSize = 1024

	logoSize    = 120
	logoPadding = 20

	// UserLogoSize is the edge stored logos are normalized to on upload.
	UserLogoSize = 150

	footerElevation = 40
	footerFontSize  = 24
)

// Compositor stamps per-recipient branding onto a synthesized base image.
// The shared overlay and footer font are loaded once at startup; recipient
// payloads are decoded per call.
type Compositor struct {
	overlay     *image.NRGBA
	defaultLogo *image.NRGBA // nil when no default mark is configured
	face        font.Face
	logger      *slog.Logger
}

func NewCompositor(cfg config.AssetsConfig, logger *slog.Logger) (*Compositor, error) {
	overlay, err := loadAsset(cfg.OverlayPath)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load overlay asset")
	}

	var defaultLogo *image.NRGBA
	if cfg.LogoPath != "" {
		defaultLogo, err = loadAsset(cfg.LogoPath)
		if err != nil {
			logger.Warn("default logo unavailable, user posts without a logo will skip it",
				slog.String("path", cfg.LogoPath), slog.Any("error", err))
			defaultLogo = nil
		}
	}

	face, err := loadFace(cfg.FontPath)
	if err != nil {
		logger.Warn("footer font unavailable, falling back to built-in face",
			slog.String("path", cfg.FontPath), slog.Any("error", err))
		face = basicfont.Face7x13
	}

	return &Compositor{
		overlay:     overlay,
		defaultLogo: defaultLogo,
		face:        face,
		logger:      logger,
	}, nil
}

// Compose renders the recipient's branding onto a copy of base. base is never
// mutated, so one synthesized image can serve a whole fan-out. Errors are
// scoped to the recipient whose payload failed to decode.
func (c *Compositor) Compose(base image.Image, cust recipient.Customization) (*image.NRGBA, error) {
	canvas := copyToCanvas(base)

	switch v := cust.(type) {
	case recipient.LogoAndFooter:
		drawScaled(canvas, c.overlay)
		if err := c.drawLogo(canvas, v.Logo); err != nil {
			return nil, err
		}
		c.drawFooter(canvas, v.FooterLine())
		return canvas, nil

	case recipient.FullCanvasOverlay:
		overlay, err := DecodeImage(v.Overlay)
		if err != nil {
			return nil, errs.Wrap(err, "failed to decode subscriber overlay")
		}
		drawScaled(canvas, toNRGBA(overlay))
		return canvas, nil

	default:
		return nil, errs.New("unknown customization variant")
	}
}

func (c *Compositor) drawLogo(canvas *image.NRGBA, raw []byte) error {
	var logo *image.NRGBA
	if len(raw) > 0 {
		decoded, err := DecodeImage(raw)
		if err != nil {
			return errs.Wrap(err, "failed to decode recipient logo")
		}
		logo = toNRGBA(decoded)
	} else if c.defaultLogo != nil {
		logo = c.defaultLogo
	} else {
		return nil
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, logoSize, logoSize))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), draw.Over, nil)

	target := image.Rect(logoPadding, logoPadding, logoPadding+logoSize, logoPadding+logoSize)
	draw.Draw(canvas, target, scaled, image.Point{}, draw.Over)
	return nil
}

func (c *Compositor) drawFooter(canvas *image.NRGBA, line string) {
	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.White),
		Face: c.face,
	}

	metrics := c.face.Metrics()
	textWidth := d.MeasureString(line)
	textHeight := metrics.Ascent + metrics.Descent

	x := (fixed.I(CanvasSize) - textWidth) / 2
	y := fixed.I(CanvasSize-footerElevation) - textHeight + metrics.Ascent

	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(line)
}

// copyToCanvas returns base as a CanvasSize square NRGBA, scaling when the
// source dimensions differ.
func copyToCanvas(base image.Image) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	b := base.Bounds()
	if b.Dx() == CanvasSize && b.Dy() == CanvasSize {
		draw.Draw(canvas, canvas.Bounds(), base, b.Min, draw.Src)
		return canvas
	}
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), base, b, draw.Src, nil)
	return canvas
}

// drawScaled alpha-composites src over the full canvas, scaling it to the
// canvas edge first when needed.
func drawScaled(canvas *image.NRGBA, src *image.NRGBA) {
	b := src.Bounds()
	if b.Dx() == CanvasSize && b.Dy() == CanvasSize {
		draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Over)
		return
	}
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), src, b, draw.Over, nil)
}

func loadAsset(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(raw)
	if err != nil {
		return nil, err
	}
	return toNRGBA(img), nil
}

func loadFace(path string) (font.Face, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(raw)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    footerFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
