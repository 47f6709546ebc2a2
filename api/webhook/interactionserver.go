package webhook

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/api"
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/json"
)

func writeError(w http.ResponseWriter, code int, err error) {
	var resp struct {
		Error string `json:"error"`
	}

	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Error = http.StatusText(code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.EncodeStream(w, resp)
}

// InteractionHandler is a type whose method is called on every incoming
// interaction event.
type InteractionHandler interface {
	// HandleInteraction is expected to return a response synchronously,
	// either to be followed-up later by deferring the response or to be
	// responded immediately.
	HandleInteraction(*discord.InteractionEvent) *api.InteractionResponse
}

// InteractionHandlerFunc is a function type that implements the interface.
type InteractionHandlerFunc func(*discord.InteractionEvent) *api.InteractionResponse

var _ InteractionHandler = InteractionHandlerFunc(nil)

func (f InteractionHandlerFunc) HandleInteraction(ev *discord.InteractionEvent) *api.InteractionResponse {
	return f(ev)
}

type alwaysDeferInteraction struct {
	f     func(*discord.InteractionEvent)
	flags discord.MessageFlags
}

// AlwaysDeferInteraction always responds with a
// DeferredMessageInteractionWithSource then invokes f in the background.
// This allows f to always use the follow-up functions.
func AlwaysDeferInteraction(flags discord.MessageFlags, f func(*discord.InteractionEvent)) InteractionHandler {
	return alwaysDeferInteraction{f, flags}
}

func (f alwaysDeferInteraction) HandleInteraction(ev *discord.InteractionEvent) *api.InteractionResponse {
	go f.f(ev)
	return &api.InteractionResponse{
		Type: api.DeferredMessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags: f.flags,
		},
	}
}

// InteractionErrorFunc is called to write an error. err may be nil with a
// non-2xx code.
type InteractionErrorFunc func(w http.ResponseWriter, r *http.Request, code int, err error)

// InteractionServer provides an HTTP handler that verifies and handles
// interaction events pushed into an HTTPS endpoint.
type InteractionServer struct {
	ErrorFunc InteractionErrorFunc

	interactionHandler InteractionHandler
	httpHandler        http.Handler
	pubkey             ed25519.PublicKey
}

// NewInteractionServer creates a new InteractionServer instance. pubkey
// should be the application's hex-encoded public key.
func NewInteractionServer(pubkey string, handler InteractionHandler) (*InteractionServer, error) {
	pubkeyB, err := hex.DecodeString(pubkey)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode hex pubkey")
	}

	s := InteractionServer{
		ErrorFunc: func(w http.ResponseWriter, r *http.Request, code int, err error) {
			writeError(w, code, err)
		},
		interactionHandler: handler,
		pubkey:             pubkeyB,
	}

	s.httpHandler = http.HandlerFunc(s.handle)
	if len(s.pubkey) != 0 {
		s.httpHandler = s.withVerification(s.httpHandler)
	}

	return &s, nil
}

// ServeHTTP implements http.Handler.
func (s *InteractionServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpHandler.ServeHTTP(w, r)
}

func (s *InteractionServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		s.ErrorFunc(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	var ev discord.InteractionEvent

	if err := json.DecodeStream(r.Body, &ev); err != nil {
		s.ErrorFunc(w, r, 400, errors.Wrap(err, "cannot decode interaction body"))
		return
	}

	if _, ok := ev.Data.(*discord.PingInteraction); ok {
		w.Header().Set("Content-Type", "application/json")
		json.EncodeStream(w, api.InteractionResponse{
			Type: api.PongInteraction,
		})
		return
	}

	resp := s.interactionHandler.HandleInteraction(&ev)
	if resp == nil || resp.Type == api.PongInteraction {
		return
	}

	if resp.NeedsMultipart() {
		body := multipart.NewWriter(w)
		w.Header().Set("Content-Type", body.FormDataContentType())
		resp.WriteMultipart(body)
	} else {
		w.Header().Set("Content-Type", "application/json")
		json.EncodeStream(w, resp)
	}
}

func (s *InteractionServer) withVerification(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get("X-Signature-Ed25519")
		if signature == "" {
			s.ErrorFunc(w, r, 401, errors.New("missing header X-Signature-Ed25519"))
			return
		}

		sig, err := hex.DecodeString(signature)
		if err != nil {
			s.ErrorFunc(w, r, 400, errors.Wrap(err, "X-Signature-Ed25519 is not valid hex-encoded"))
			return
		}

		if len(sig) != ed25519.SignatureSize || sig[63]&224 != 0 {
			s.ErrorFunc(w, r, 400, errors.New("invalid X-Signature-Ed25519 data"))
			return
		}

		timestamp := r.Header.Get("X-Signature-Timestamp")
		if timestamp == "" {
			s.ErrorFunc(w, r, 401, errors.New("missing header X-Signature-Timestamp"))
			return
		}

		var msg bytes.Buffer
		msg.Grow(int(r.ContentLength+1) + len(timestamp))
		msg.WriteString(timestamp)

		if _, err := io.Copy(&msg, r.Body); err != nil {
			s.ErrorFunc(w, r, 500, errors.Wrap(err, "cannot read body"))
			return
		}

		if !ed25519.Verify(s.pubkey, msg.Bytes(), sig) {
			s.ErrorFunc(w, r, 401, errors.New("signature mismatch"))
			return
		}

		// Hand the request body back for the next handler.
		body := msg.Bytes()[len(timestamp):]
		r.Body = io.NopCloser(bytes.NewReader(body))

		next.ServeHTTP(w, r)
	})
}
