package motion

import "time"

// Clock provides time for the [Driver]. The default implementation uses
// system time; tests inject a fake clock to control frame timing
// deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock uses system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }
