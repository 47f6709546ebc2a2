// Package accord contains a set of modular packages for working with the
// Discord API: a REST client, a gateway Websocket client, voice signaling,
// and the typed wire schema shared between them.
//
// Layout
//
// Package discord holds the typed payload shapes that mirror Discord's
// documented JSON objects. It is imported by everything else and carries no
// transport logic.
//
// Package api binds the REST resources. Package gateway binds the Websocket
// event stream. Package voice/voicegateway binds the voice signaling
// sub-protocol. Package api/webhook is a token-only REST client that works
// without a bot token.
//
// Package session ties api and gateway together with an event handler for
// programs that want a single entry point.
package accord

import (
	// Packages that most should use.
	_ "github.com/accordlib/accord/session"

	// Low level packages.
	_ "github.com/accordlib/accord/api"
	_ "github.com/accordlib/accord/gateway"
)

// Version is the version string of this library, sent with the identify
// payload and the REST User-Agent.
const Version = "0.3.0"
