package usecase

import (
	"context"
	"image"
	"math/rand/v2"
	"time"

	"postify/internal/domain/distribution"
	"postify/internal/domain/recipient"
	"postify/internal/pkg/config"
)

// PromptWriter turns an occasion into post copy: an image prompt and a
// caption.
type PromptWriter interface {
	ComposePost(ctx context.Context, occasion string, description *string) (distribution.PostCopy, error)
}

// Synthesizer renders a base image from a prompt.
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string) (image.Image, error)
}

// Compositor stamps recipient branding onto a base image without mutating it.
type Compositor interface {
	Compose(base image.Image, cust recipient.Customization) (*image.NRGBA, error)
}

// Notifier delivers one media post to one phone number.
type Notifier interface {
	SendMedia(ctx context.Context, phone, imageBase64, caption string) (map[string]any, error)
}

// Pacer yields the wait inserted between consecutive sends of a fan-out.
type Pacer interface {
	Delay() time.Duration
}

// RandomPacer draws a uniform whole-second delay from [min, max].
type RandomPacer struct {
	min time.Duration
	max time.Duration
}

func NewRandomPacer(cfg config.DistributionConfig) RandomPacer {
	return RandomPacer{min: cfg.DelayMin, max: cfg.DelayMax}
}

func (p RandomPacer) Delay() time.Duration {
	minSec := int64(p.min / time.Second)
	maxSec := int64(p.max / time.Second)
	if maxSec <= minSec {
		return time.Duration(minSec) * time.Second
	}
	return time.Duration(minSec+rand.N(maxSec-minSec+1)) * time.Second
}
