package synthesis

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"os/exec"
	"strings"

	"postify/internal/pkg/config"
	"postify/internal/pkg/errs"

	_ "image/jpeg"
	_ "image/png"
)

// BrowserSynthesizer shells out to a browser-automation script that drives a
// web image generator. The script reads the prompt from stdin and writes the
// generated image to stdout as base64 PNG.
type BrowserSynthesizer struct {
	command []string
	cfg     config.BrowserConfig
}

func NewBrowserSynthesizer(cfg config.BrowserConfig) *BrowserSynthesizer {
	return &BrowserSynthesizer{
		command: strings.Fields(cfg.Command),
		cfg:     cfg,
	}
}

func (b *BrowserSynthesizer) Synthesize(ctx context.Context, prompt string) (image.Image, error) {
	if len(b.command) == 0 {
		return nil, errs.New("browser synthesizer command not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, b.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, b.command[0], b.command[1:]...)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errs.Wrapf(err, "browser synthesizer failed: %s", excerpt(stderr.String()))
	}

	encoded := stripWhitespace(stdout.String())
	if encoded == "" {
		return nil, errs.New("browser synthesizer produced no output")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errs.Wrap(err, "failed to decode browser synthesizer output")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errs.Wrap(err, "failed to decode generated image")
	}
	return img, nil
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 1000 {
		return s[:1000]
	}
	if s == "" {
		return "no stderr output"
	}
	return s
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
