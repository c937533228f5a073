package motion

import (
	"sync"
	"time"
)

// Updatable is the per-frame contract between the [Driver] and a value cell.
// [Value] satisfies it.
type Updatable interface {
	// Update advances by dt seconds and reports whether animation
	// continues.
	Update(dt float64) bool

	// IsAnimating reports whether an animation is currently installed.
	IsAnimating() bool
}

// maxFrameGap caps the dt handed to values after a long stall (background
// tab, suspended process) so animations resume rather than teleport.
const maxFrameGap = 250 * time.Millisecond

// Driver steps registered values from a clock, one Update call per value per
// tick. It is the host-side tick source of the engine: the host decides the
// cadence and calls Tick once per frame; the driver converts wall time into
// the per-frame dt the value cells consume.
//
// Hosts with their own frame loop can skip the Driver entirely and call
// [Value.Update] with their own dt.
type Driver struct {
	mu     sync.Mutex
	clock  Clock
	values map[int]Updatable
	nextID int
	last   time.Time
	primed bool
}

// NewDriver creates a driver using the given clock. A nil clock means
// [SystemClock].
func NewDriver(clock Clock) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{clock: clock, values: make(map[int]Updatable)}
}

// Register adds a value to the driver's tick loop and returns an
// unregister function.
func (d *Driver) Register(v Updatable) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.values[id] = v
	d.mu.Unlock()
	return func() {
		d.mu.Lock()
		delete(d.values, id)
		d.mu.Unlock()
	}
}

// Tick advances every registered value by the time elapsed since the
// previous Tick and reports whether any value is still animating, so the
// host can poll less often while idle. The first Tick primes the clock and
// applies a zero dt.
func (d *Driver) Tick() bool {
	d.mu.Lock()
	now := d.clock.Now()
	dt := time.Duration(0)
	if d.primed {
		dt = now.Sub(d.last)
		if dt < 0 {
			dt = 0
		}
		if dt > maxFrameGap {
			dt = maxFrameGap
		}
	}
	d.last = now
	d.primed = true

	// Copy out so callbacks fired inside Update can register or
	// unregister without deadlocking.
	values := make([]Updatable, 0, len(d.values))
	for _, v := range d.values {
		values = append(values, v)
	}
	d.mu.Unlock()

	seconds := dt.Seconds()
	animating := false
	for _, v := range values {
		if v.Update(seconds) {
			animating = true
		}
	}
	return animating
}

// HasActiveValues reports whether any registered value is animating.
func (d *Driver) HasActiveValues() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, v := range d.values {
		if v.IsAnimating() {
			return true
		}
	}
	return false
}
