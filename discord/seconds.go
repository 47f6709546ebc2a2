package discord

import "time"

// Seconds is a duration transmitted over the wire in seconds.
type Seconds int

// DurationToSeconds converts the given duration to Seconds.
func DurationToSeconds(dura time.Duration) Seconds {
	return Seconds(dura.Seconds())
}

func (s Seconds) String() string {
	return s.Duration().String()
}

// Duration returns the Seconds as a time.Duration.
func (s Seconds) Duration() time.Duration {
	return time.Duration(s) * time.Second
}

// OptionalSeconds is the option type for Seconds.
type OptionalSeconds = *Seconds

// ZeroOptionalSeconds are 0 OptionalSeconds.
var ZeroOptionalSeconds = NewOptionalSeconds(0)

// NewOptionalSeconds creates a new OptionalSeconds using the value of the
// passed Seconds.
func NewOptionalSeconds(s Seconds) OptionalSeconds { return &s }
