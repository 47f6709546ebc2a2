package gateway

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/accordlib/accord/utils/ws"
)

// DefaultIdentity is the default identify properties. Its values can be
// changed before any Gateway is created.
var DefaultIdentity = IdentifyProperties{
	OS:      runtime.GOOS,
	Browser: "accord",
	Device:  "accord",
}

// DefaultPresence is the default presence sent along the identify payload,
// if any.
var DefaultPresence *UpdatePresenceCommand

// IdentifyProperties is the connection properties object inside an identify
// payload.
type IdentifyProperties struct {
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Device  string `json:"device"`
}

// Shard is the [shard_id, num_shards] pair sent in the identify payload.
type Shard [2]int

// DefaultShard returns the zeroth of one shard.
func DefaultShard() *Shard {
	return &Shard{0, 1}
}

// ShardID returns the shard's index.
func (s Shard) ShardID() int { return s[0] }

// NumShards returns the total shard count.
func (s Shard) NumShards() int { return s[1] }

// IdentifyCommand is a command for Op 2. It is sent once after every Hello on
// a fresh session.
type IdentifyCommand struct {
	Token      string             `json:"token"`
	Properties IdentifyProperties `json:"properties"`

	Compress       bool `json:"compress,omitempty"`
	LargeThreshold uint `json:"large_threshold,omitempty"`

	Shard    *Shard                 `json:"shard,omitempty"`
	Presence *UpdatePresenceCommand `json:"presence,omitempty"`

	Intents Intents `json:"intents"`
}

// SetShard sets the shard pair on the identify payload.
func (i *IdentifyCommand) SetShard(id, num int) {
	if i.Shard == nil {
		i.Shard = new(Shard)
	}
	i.Shard[0], i.Shard[1] = id, num
}

// Identifier is an IdentifyCommand together with its rate limiters. The
// gateway waits on both limiters before identifying.
type Identifier struct {
	IdentifyCommand

	IdentifyShortLimit  *rate.Limiter `json:"-"`
	IdentifyGlobalLimit *rate.Limiter `json:"-"`
}

// DefaultIdentifier creates a new Identifier with the default identify
// payload for the given token.
func DefaultIdentifier(token string) Identifier {
	return NewIdentifier(IdentifyCommand{
		Token:          token,
		Properties:     DefaultIdentity,
		Shard:          DefaultShard(),
		Presence:       DefaultPresence,
		Compress:       true,
		LargeThreshold: 50,
	})
}

// NewIdentifier creates a new Identifier with fresh rate limiters.
func NewIdentifier(data IdentifyCommand) Identifier {
	return Identifier{
		IdentifyCommand:     data,
		IdentifyShortLimit:  ws.NewIdentityLimiter(),
		IdentifyGlobalLimit: ws.NewGlobalIdentityLimiter(),
	}
}

// Wait waits for both identify rate limiters.
func (i *Identifier) Wait(ctx context.Context) error {
	if err := i.IdentifyShortLimit.Wait(ctx); err != nil {
		return errors.Wrap(err, "can't wait for short limit")
	}
	if err := i.IdentifyGlobalLimit.Wait(ctx); err != nil {
		return errors.Wrap(err, "can't wait for global limit")
	}
	return nil
}
