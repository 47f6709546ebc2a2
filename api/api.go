// Package api provides bindings to the REST API. It handles authorization
// headers and encoding, but leaves rate limit headers to the caller.
package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/httputil/httpdriver"
)

const (
	// BaseEndpoint is the base URL of the API.
	BaseEndpoint = "https://discord.com"
	// Version is the API version that these bindings target.
	Version = "10"
	// Path is the API path with the version.
	Path = "/api/v" + Version

	// Endpoint is the fully qualified base endpoint with a trailing slash.
	Endpoint = BaseEndpoint + Path + "/"

	EndpointGateway    = Endpoint + "gateway"
	EndpointGatewayBot = EndpointGateway + "/bot"

	EndpointChannels       = Endpoint + "channels/"
	EndpointGuilds         = Endpoint + "guilds/"
	EndpointUsers          = Endpoint + "users/"
	EndpointMe             = EndpointUsers + "@me"
	EndpointWebhooks       = Endpoint + "webhooks/"
	EndpointInvites        = Endpoint + "invites/"
	EndpointApplications   = Endpoint + "applications/"
	EndpointInteractions   = Endpoint + "interactions/"
	EndpointStageInstances = Endpoint + "stage-instances"
)

// UserAgent is the user agent sent with every request.
var UserAgent = "DiscordBot (https://github.com/accordlib/accord, v0.3.0)"

// Client is an authorized REST client.
type Client struct {
	*httputil.Client
	Session
}

// NewClient creates a new authorized client with the given token. Bot tokens
// must carry the "Bot " prefix.
func NewClient(token string) *Client {
	return NewCustomClient(token, httputil.NewClient())
}

// NewCustomClient creates a new client from the given httputil.Client. The
// given client is copied.
func NewCustomClient(token string, httpClient *httputil.Client) *Client {
	ses := Session{Token: token}

	hcl := httpClient.Copy()
	hcl.OnRequest = append(hcl.OnRequest, ses.InjectRequest)

	return &Client{
		Client:  hcl,
		Session: ses,
	}
}

// WithContext returns a shallow copy of the Client that uses the given
// context on every request.
func (c *Client) WithContext(ctx context.Context) *Client {
	return &Client{
		Client:  c.Client.WithContext(ctx),
		Session: c.Session,
	}
}

// Session holds the authorization state shared by every request.
type Session struct {
	Token string
}

// InjectRequest adds the authorization and user agent headers.
func (s *Session) InjectRequest(r httpdriver.Request) error {
	if s.Token != "" {
		r.AddHeader(http.Header{
			"Authorization": {s.Token},
		})
	}

	r.AddHeader(http.Header{
		"User-Agent": {UserAgent},
	})

	return nil
}

// AuditLogReason is the type embedded in data structs when the action
// triggers an audit log entry. The reason is sent in the
// X-Audit-Log-Reason header.
type AuditLogReason string

// Header returns a header with the X-Audit-Log-Reason header, or nil if the
// reason is empty.
func (r AuditLogReason) Header() http.Header {
	if r == "" {
		return nil
	}
	return http.Header{"X-Audit-Log-Reason": {url.QueryEscape(string(r))}}
}

// GatewayURL fetches the websocket URL of the event gateway.
func (c *Client) GatewayURL() (string, error) {
	var g struct {
		URL string `json:"url"`
	}

	return g.URL, c.RequestJSON(&g, "GET", EndpointGateway)
}
