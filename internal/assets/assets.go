// Package assets embeds the tier sprites and turns them into opacity masks
// for pixel-accurate collisions.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-merge/internal/sim"
)

//go:embed sprites/*.png
var sprites embed.FS

// SpritePath returns the embedded path of a tier's sprite.
func SpritePath(t sim.Tier) string {
	return "sprites/" + t.String() + ".png"
}

// Decode returns the sprite image for t.
func Decode(t sim.Tier) (image.Image, error) {
	data, err := sprites.ReadFile(SpritePath(t))
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read sprite for %v: %w", t, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode sprite for %v: %w", t, err)
	}
	return img, nil
}

type maskKey struct {
	tier     sim.Tier
	diameter int
}

// MaskCache decodes sprite masks in the background, once per tier and size.
// A mask handed out before its decode finishes is not ready yet.
type MaskCache struct {
	mu     sync.Mutex
	masks  map[maskKey]*sim.Mask
	logger *log.Logger
}

// NewMaskCache creates an empty cache. A nil logger discards output.
func NewMaskCache(logger *log.Logger) *MaskCache {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &MaskCache{
		masks:  make(map[maskKey]*sim.Mask),
		logger: logger,
	}
}

// Mask implements sim.MaskSource.
func (c *MaskCache) Mask(t sim.Tier, diameter int) *sim.Mask {
	key := maskKey{tier: t, diameter: diameter}

	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.masks[key]; ok {
		return m
	}
	m := sim.LoadMaskAsync(diameter, func() (image.Image, error) {
		return Decode(t)
	}, c.logger)
	c.masks[key] = m
	return m
}

// Preload starts decoding the masks of every tier for the given
// configuration so they are usually ready before the first drop lands.
func (c *MaskCache) Preload(cfg sim.Config) {
	for _, t := range sim.AllTiers() {
		c.Mask(t, sim.MaskDiameter(cfg.Tiers.Radius(t, cfg.Field)))
	}
}
