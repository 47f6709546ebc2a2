package moreatomic

import (
	"go.uber.org/atomic"

	"github.com/accordlib/accord/discord"
)

// Snowflake is an atomically accessed snowflake.
type Snowflake struct {
	v atomic.Int64
}

func (s *Snowflake) Get() discord.Snowflake {
	return discord.Snowflake(s.v.Load())
}

func (s *Snowflake) Set(id discord.Snowflake) {
	s.v.Store(int64(id))
}
