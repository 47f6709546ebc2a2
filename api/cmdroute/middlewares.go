package cmdroute

import (
	"context"
	"time"

	"github.com/accordlib/accord/api"
	"github.com/accordlib/accord/discord"
)

type ctxKey uint8

const (
	_ ctxKey = iota
	deferTicketKey
)

// UseContext returns a middleware that replaces the handler context with the
// given one. It should only be installed once, on the outermost router.
func UseContext(ctx context.Context) Middleware {
	return func(next InteractionHandler) InteractionHandler {
		return InteractionHandlerFunc(func(_ context.Context, ev *discord.InteractionEvent) *api.InteractionResponse {
			return next.HandleInteraction(ctx, ev)
		})
	}
}

// FollowUpSender sends follow-up messages for an interaction whose initial
// response was deferred. *api.Client satisfies it.
type FollowUpSender interface {
	CreateInteractionFollowup(appID discord.AppID, token string, data api.InteractionResponseData) (*discord.Message, error)
}

var _ FollowUpSender = (*api.Client)(nil)

// DeferOpts controls the Deferrable middleware.
type DeferOpts struct {
	// Timeout is how long a handler may take before its response is deferred.
	// It defaults to 1.5 seconds.
	Timeout time.Duration
	// Flags is set on every response that passes through the middleware.
	Flags discord.MessageFlags
	// Error is called when sending the follow-up message fails. It may be
	// nil.
	Error func(err error)
	// Done is called with the follow-up message once the deferred handler
	// finishes. It may be nil.
	Done func(*discord.Message)
}

// Deferrable wraps handlers so that a handler overrunning the configured
// timeout automatically answers with a deferral, and its eventual return
// value is delivered as a follow-up message instead.
func Deferrable(client FollowUpSender, opts DeferOpts) Middleware {
	if opts.Timeout == 0 {
		opts.Timeout = 1500 * time.Millisecond
	}

	return func(next InteractionHandler) InteractionHandler {
		return InteractionHandlerFunc(func(ctx context.Context, ev *discord.InteractionEvent) *api.InteractionResponse {
			deadline, cancel := context.WithTimeout(ctx, opts.Timeout)
			defer cancel()

			respCh := make(chan *api.InteractionResponse, 1)
			go func() {
				ticketCtx := context.WithValue(ctx, deferTicketKey, DeferTicket{
					ctx:     deadline,
					deferFn: cancel,
				})

				resp := next.HandleInteraction(ticketCtx, ev)
				respCh <- opts.stampFlags(resp)
			}()

			select {
			case resp := <-respCh:
				return resp

			case <-deadline.Done():
				go opts.followUp(client, ev, respCh)

				return &api.InteractionResponse{
					Type: api.DeferredMessageInteractionWithSource,
					Data: &api.InteractionResponseData{
						Flags: opts.Flags,
					},
				}
			}
		})
	}
}

// stampFlags copies the configured flags onto a non-nil response.
func (opts DeferOpts) stampFlags(resp *api.InteractionResponse) *api.InteractionResponse {
	if resp == nil || opts.Flags == 0 {
		return resp
	}

	if resp.Data == nil {
		resp.Data = &api.InteractionResponseData{}
	}
	resp.Data.Flags = opts.Flags

	return resp
}

// followUp waits for the late handler response and sends it as a follow-up
// message.
func (opts DeferOpts) followUp(client FollowUpSender, ev *discord.InteractionEvent, respCh <-chan *api.InteractionResponse) {
	resp := <-respCh
	if resp == nil || resp.Data == nil {
		return
	}

	m, err := client.CreateInteractionFollowup(ev.AppID, ev.Token, *resp.Data)
	if err != nil && opts.Error != nil {
		opts.Error(err)
	}
	if m != nil && opts.Done != nil {
		opts.Done(m)
	}
}

// DeferTicket tells a handler whether its response has already been deferred.
// Handlers that want to do their own follow-ups can call Defer explicitly.
type DeferTicket struct {
	ctx     context.Context
	deferFn context.CancelFunc
}

// DeferTicketFromContext returns the DeferTicket in ctx, or a zero-value
// ticket if the Deferrable middleware is not installed.
func DeferTicketFromContext(ctx context.Context) DeferTicket {
	ticket, _ := ctx.Value(deferTicketKey).(DeferTicket)
	return ticket
}

// IsDeferred reports whether the response has been deferred.
func (t DeferTicket) IsDeferred() bool {
	return t.Context().Err() != nil
}

// Context returns the context that is done once the response is deferred. The
// zero-value ticket returns the background context.
func (t DeferTicket) Context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}

// Defer marks the response as deferred. The zero-value ticket panics.
func (t DeferTicket) Defer() {
	t.deferFn()
}
