package discord

import (
	"strings"
	"time"

	"github.com/accordlib/accord/utils/json"
)

// TimestampFormat is the format used by Discord timestamps. It is the ISO8601
// format with fractional seconds.
const TimestampFormat = time.RFC3339 // same as ISO8601

var (
	_ json.Unmarshaler = (*Timestamp)(nil)
	_ json.Marshaler   = (*Timestamp)(nil)
)

// Timestamp is a time.Time that is transmitted over the wire in the ISO8601
// format. A zero timestamp gets encoded into a JSON null.
type Timestamp time.Time

// NullTimestamp is a zero timestamp. It gets encoded into a JSON null.
var NullTimestamp = NewTimestamp(time.Time{})

// NewTimestamp creates a new Timestamp from the given time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Now returns the current Timestamp.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

func (t *Timestamp) UnmarshalJSON(v []byte) error {
	str := strings.Trim(string(v), `"`)

	if str == "null" {
		*t = Timestamp{}
		return nil
	}

	r, err := time.Parse(TimestampFormat, str)
	if err != nil {
		return err
	}

	*t = Timestamp(r)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.IsValid() {
		return []byte("null"), nil
	}

	return []byte(`"` + t.Format(TimestampFormat) + `"`), nil
}

// IsValid returns true if the timestamp isn't zero.
func (t Timestamp) IsValid() bool {
	return !t.Time().IsZero()
}

// Format formats the timestamp using the layout from the time package.
func (t Timestamp) Format(fmt string) string {
	return t.Time().Format(fmt)
}

// Time returns the timestamp as a time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// UnixTimestamp is a timestamp in Unix seconds.
type UnixTimestamp int64

// Time returns the UnixTimestamp as a time.Time.
func (t UnixTimestamp) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// UnixMsTimestamp is a timestamp in Unix milliseconds.
type UnixMsTimestamp int64

// TimeToMilliseconds converts the given time to a UnixMsTimestamp.
func TimeToMilliseconds(t time.Time) UnixMsTimestamp {
	return UnixMsTimestamp(t.UnixNano() / int64(time.Millisecond))
}

// Time returns the UnixMsTimestamp as a time.Time.
func (t UnixMsTimestamp) Time() time.Time {
	return time.Unix(0, int64(t)*int64(time.Millisecond))
}

// Milliseconds is a duration transmitted over the wire in milliseconds.
type Milliseconds float64

// DurationToMilliseconds converts the given duration to Milliseconds.
func DurationToMilliseconds(dura time.Duration) Milliseconds {
	return Milliseconds(dura.Milliseconds())
}

func (ms Milliseconds) String() string {
	return ms.Duration().String()
}

// Duration returns the Milliseconds as a time.Duration.
func (ms Milliseconds) Duration() time.Duration {
	return time.Duration(float64(ms) * float64(time.Millisecond))
}
