package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"

	"postify/internal/pkg/errs"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
)

// DecodeImage decodes a raw PNG/JPEG/GIF payload.
func DecodeImage(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errs.Wrap(err, "failed to decode image")
	}
	return img, nil
}

// EncodeBase64 flattens img onto an opaque white background and returns it as
// base64-encoded PNG, the wire form the delivery API expects. Flattening
// keeps semi-transparent regions from rendering black in viewers that ignore
// alpha.
func EncodeBase64(img image.Image) (string, error) {
	b := img.Bounds()
	flat := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, b.Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, flat); err != nil {
		return "", errs.Wrap(err, "failed to encode image")
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ProcessOverlay validates an uploaded overlay and re-encodes it as PNG for
// storage, keeping its original dimensions.
func ProcessOverlay(raw []byte) ([]byte, error) {
	img, err := DecodeImage(raw)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, toNRGBA(img)); err != nil {
		return nil, errs.Wrap(err, "failed to encode overlay")
	}
	return buf.Bytes(), nil
}

// ProcessLogo validates an uploaded logo and normalizes it to a
// UserLogoSize square PNG for storage.
func ProcessLogo(raw []byte) ([]byte, error) {
	img, err := DecodeImage(raw)
	if err != nil {
		return nil, err
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, UserLogoSize, UserLogoSize))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, errs.Wrap(err, "failed to encode logo")
	}
	return buf.Bytes(), nil
}
