package api

import (
	"github.com/accordlib/accord/discord"
)

// VoiceRegions returns a list of available voice regions that can be used
// when setting a voice or stage channel's RTC region.
func (c *Client) VoiceRegions() ([]discord.VoiceRegion, error) {
	var vrs []discord.VoiceRegion
	return vrs, c.RequestJSON(&vrs, "GET", Endpoint+"voice/regions")
}
