package sim

import (
	"image"
	"math"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
)

// Mask is a square opacity buffer used by the pixel-accurate narrow phase.
//
// A mask may be handed out before its contents exist. Readers poll Ready and
// treat every lookup on an unready mask as transparent. The alpha buffer is
// written once, before the ready flag is published, and never again.
type Mask struct {
	size  int
	alpha []uint8
	ready atomic.Bool
}

// Size returns the side length in pixels.
func (m *Mask) Size() int {
	return m.size
}

// Ready reports whether the mask contents are available.
func (m *Mask) Ready() bool {
	return m != nil && m.ready.Load()
}

// Alpha returns the opacity at (x, y). Out-of-range coordinates and unready
// masks read as fully transparent.
func (m *Mask) Alpha(x, y int) uint8 {
	if !m.Ready() || x < 0 || y < 0 || x >= m.size || y >= m.size {
		return 0
	}
	return m.alpha[y*m.size+x]
}

func (m *Mask) publish(alpha []uint8) {
	m.alpha = alpha
	m.ready.Store(true)
}

// NewMaskFromImage scales img to size×size and keeps its alpha channel.
func NewMaskFromImage(img image.Image, size int) *Mask {
	m := &Mask{size: size}
	m.publish(alphaOf(img, size))
	return m
}

func alphaOf(img image.Image, size int) []uint8 {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	alpha := make([]uint8, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			alpha[y*size+x] = dst.NRGBAAt(x, y).A
		}
	}
	return alpha
}

// NewCircleMask returns a ready mask of an opaque disk filling the square.
func NewCircleMask(size int) *Mask {
	m := &Mask{size: size}
	alpha := make([]uint8, size*size)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				alpha[y*size+x] = 0xff
			}
		}
	}
	m.publish(alpha)
	return m
}

// NewPendingMask returns a mask that is not ready and never becomes ready.
// LoadMaskAsync builds on it; tests use it to model a decode in flight.
func NewPendingMask(size int) *Mask {
	return &Mask{size: size}
}

// LoadMaskAsync returns a mask immediately and fills it from decode on a new
// goroutine. If decode fails the mask stays unready for good.
func LoadMaskAsync(size int, decode func() (image.Image, error), logger *log.Logger) *Mask {
	m := NewPendingMask(size)
	go func() {
		img, err := decode()
		if err != nil {
			if logger != nil {
				logger.Warn("mask decode failed", "size", size, "error", err)
			}
			return
		}
		m.publish(alphaOf(img, size))
	}()
	return m
}

// MaskDiameter is the mask side length used for an object of radius r.
func MaskDiameter(r float64) int {
	return int(math.Ceil(2 * r))
}

// MaskSource hands out opacity masks for new objects.
type MaskSource interface {
	Mask(t Tier, diameter int) *Mask
}

// CircleMasks produces procedural disk masks, cached per diameter.
type CircleMasks struct {
	cache map[int]*Mask
}

// Mask implements MaskSource.
func (c *CircleMasks) Mask(_ Tier, diameter int) *Mask {
	if c.cache == nil {
		c.cache = make(map[int]*Mask)
	}
	if m, ok := c.cache[diameter]; ok {
		return m
	}
	m := NewCircleMask(diameter)
	c.cache[diameter] = m
	return m
}
