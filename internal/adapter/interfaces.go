// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// external services.
//
// The primary abstraction is [ChatCompleter], which decouples the service
// layer from the concrete completion API. The package ships an HTTP
// implementation ([NewHTTPChatAdapter]) speaking the de facto standard
// chat-completions wire format, so any compatible provider can sit behind it.
//
// Transport failures and non-2xx upstream responses are both reported as
// [ErrUpstream] (wrapped) so that callers can use [errors.Is] without knowing
// the protocol.
package adapter

import "context"

// ChatCompleter sends a single user message to an external completion API and
// returns the assistant's reply. Implementations are responsible for
// serialisation, authentication and mapping transport-level failures to
// [ErrUpstream].
type ChatCompleter interface {
	// Complete forwards message as a single-turn conversation and returns the
	// first reply choice. Returns [ErrUpstream] (wrapped) if the request
	// fails, the upstream responds with a non-2xx status, or the response
	// carries no choices.
	Complete(ctx context.Context, message string) (string, error)
}
