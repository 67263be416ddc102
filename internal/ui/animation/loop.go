package animation

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Animator is a per-frame callback registration that can be started and stopped.
type Animator interface {
	Start()
	Stop()
}

// Loop calls onFrame once per rendered frame while started.
type Loop struct {
	mu       sync.Mutex
	animator Animator
	running  bool
}

// New registers onFrame with the fyne animation driver. The animation
// repeats forever; its progress value is ignored.
func New(onFrame func()) *Loop {
	animation := fyne.NewAnimation(time.Second, func(float32) {
		onFrame()
	})
	animation.Curve = fyne.AnimationLinear
	animation.RepeatCount = fyne.AnimationRepeatForever
	return NewWithAnimator(animation)
}

// NewWithAnimator wraps an existing frame source.
func NewWithAnimator(animator Animator) *Loop {
	return &Loop{animator: animator}
}

// Start begins frame callbacks. Calling Start on a running loop is a no-op.
func (loop *Loop) Start() {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	if loop.running {
		return
	}
	loop.running = true
	loop.animator.Start()
}

// Stop releases the frame callback registration.
func (loop *Loop) Stop() {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	if !loop.running {
		return
	}
	loop.running = false
	loop.animator.Stop()
}

// Running reports whether frame callbacks are registered.
func (loop *Loop) Running() bool {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	return loop.running
}
