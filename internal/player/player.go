// Package player is the playback controller for a recorded history. It owns
// a cursor into the steps and a play/pause state; a timer advances the
// cursor while playing.
package player

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/san-kum/algoscope/internal/trace"
)

const (
	DefaultInterval = 500 * time.Millisecond
	MinInterval     = 25 * time.Millisecond
	MaxInterval     = 4 * time.Second
)

var ErrNoSteps = errors.New("player: no steps to play")

type Option func(*Player)

func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.interval = clamp(d, MinInterval, MaxInterval)
		}
	}
}

// WithLoop makes playback wrap to the first step instead of pausing at the
// last one.
func WithLoop(loop bool) Option {
	return func(p *Player) { p.loop = loop }
}

// Player is safe for concurrent use: the TUI and Autoplay may drive the
// same instance.
type Player struct {
	mu       sync.Mutex
	steps    []trace.Step
	cursor   int
	playing  bool
	loop     bool
	interval time.Duration
}

func New(steps []trace.Step, opts ...Option) (*Player, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	p := &Player{steps: steps, interval: DefaultInterval}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Player) Len() int { return len(p.steps) }

func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Current returns the step under the cursor.
func (p *Player) Current() trace.Step {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.steps[p.cursor]
}

// Steps returns the full history; callers must not modify it.
func (p *Player) Steps() []trace.Step { return p.steps }

func (p *Player) AtStart() bool { return p.Cursor() == 0 }

func (p *Player) AtEnd() bool { return p.Cursor() == len(p.steps)-1 }

// Next moves one step forward and reports whether the cursor moved.
func (p *Player) Next() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor >= len(p.steps)-1 {
		return false
	}
	p.cursor++
	return true
}

// Prev moves one step back and reports whether the cursor moved.
func (p *Player) Prev() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	return true
}

// Seek moves the cursor to i, clamped to the history.
func (p *Player) Seek(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = clamp(i, 0, len(p.steps)-1)
}

func (p *Player) First() { p.Seek(0) }

func (p *Player) Last() { p.Seek(len(p.steps) - 1) }

// Reset rewinds to the first step and pauses.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = 0
	p.playing = false
}

// Play starts playback. Playing from the last step restarts from the first.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor == len(p.steps)-1 {
		p.cursor = 0
	}
	p.playing = true
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

func (p *Player) Toggle() {
	if p.Playing() {
		p.Pause()
	} else {
		p.Play()
	}
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *Player) Loop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loop
}

func (p *Player) SetLoop(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loop = loop
}

// Tick is one timer beat. While playing it advances the cursor; on the last
// step it wraps when looping and pauses otherwise. It reports whether the
// cursor moved.
func (p *Player) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return false
	}
	if p.cursor < len(p.steps)-1 {
		p.cursor++
		return true
	}
	if p.loop && len(p.steps) > 1 {
		p.cursor = 0
		return true
	}
	p.playing = false
	return false
}

func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// Faster halves the interval, down to MinInterval.
func (p *Player) Faster() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = clamp(p.interval/2, MinInterval, MaxInterval)
	return p.interval
}

// Slower doubles the interval, up to MaxInterval.
func (p *Player) Slower() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = clamp(p.interval*2, MinInterval, MaxInterval)
	return p.interval
}

// Autoplay plays from the current step, calling fn with the current step
// and then with every step the timer advances to. It returns nil when
// playback stops at the end and ctx.Err() when ctx is done first. Speed
// changes take effect on the next beat.
func (p *Player) Autoplay(ctx context.Context, fn func(trace.Step)) error {
	p.Play()
	fn(p.Current())

	interval := p.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-ticker.C:
			if !p.Tick() {
				if !p.Playing() {
					return nil
				}
				continue
			}
			fn(p.Current())
			if d := p.Interval(); d != interval {
				interval = d
				ticker.Reset(d)
			}
		}
	}
}

func clamp[T int | time.Duration](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
