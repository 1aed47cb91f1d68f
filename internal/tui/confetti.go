package tui

import (
	"math"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var confettiGlyphs = []rune{'*', '•', '✦', '▪', '◆', '○'}

// particle is one piece of confetti in screen coordinates
type particle struct {
	x, y   float64
	vx, vy float64
	glyph  rune
	color  lipgloss.Color
}

// confetti is a particle burst. Frames advance on confettiFrameMsg until
// every particle has left the screen or the frame budget runs out.
type confetti struct {
	particles []particle
	frame     int
	width     int
	height    int
}

type confettiFrameMsg time.Time

// newConfetti launches count particles from 60% down the screen, fanned
// over ConfettiSpread degrees around straight up
func newConfetti(width, height, count int, rng *rand.Rand) *confetti {
	originX := float64(width) / 2
	originY := float64(height) * 0.6
	spread := float64(ConfettiSpread) * math.Pi / 180

	c := &confetti{width: width, height: height}
	for range count {
		angle := -math.Pi/2 + (rng.Float64()-0.5)*spread
		speed := 1.0 + rng.Float64()*1.5
		hue := rng.Float64() * 360

		c.particles = append(c.particles, particle{
			x:     originX,
			y:     originY,
			vx:    math.Cos(angle) * speed * 2, // cells are twice as tall as wide
			vy:    math.Sin(angle) * speed,
			glyph: confettiGlyphs[rng.IntN(len(confettiGlyphs))],
			color: lipgloss.Color(colorful.Hsv(hue, 0.85, 0.95).Hex()),
		})
	}
	return c
}

// step advances one frame and reports whether the burst is still visible
func (c *confetti) step() bool {
	c.frame++
	for i := range c.particles {
		p := &c.particles[i]
		p.x += p.vx
		p.y += p.vy
		p.vy += ConfettiGravity
		p.vx *= 0.96
	}
	return c.alive()
}

func (c *confetti) alive() bool {
	if c == nil || c.frame >= ConfettiFrames {
		return false
	}
	for _, p := range c.particles {
		if c.visible(p) {
			return true
		}
	}
	return false
}

func (c *confetti) visible(p particle) bool {
	return p.x >= 0 && p.y >= 0 && int(p.x) < c.width && int(p.y) < c.height
}

// render draws the particles over view
func (c *confetti) render(view string) string {
	if c == nil {
		return view
	}
	for _, p := range c.particles {
		if !c.visible(p) {
			continue
		}
		glyph := lipgloss.NewStyle().Foreground(p.color).Render(string(p.glyph))
		view = spliceOverlay(view, []string{glyph}, int(p.x), int(p.y))
	}
	return view
}

func confettiTick() tea.Cmd {
	return tea.Tick(ConfettiFrameInterval, func(t time.Time) tea.Msg {
		return confettiFrameMsg(t)
	})
}

// celebration collects celebration events fired by the shell during an
// Update so the model can start the animation afterwards
type celebration struct {
	pending int
}

func (c *celebration) fire() {
	c.pending++
}

// take reports and clears pending events
func (c *celebration) take() bool {
	fired := c.pending > 0
	c.pending = 0
	return fired
}
