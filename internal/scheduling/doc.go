// Package scheduling implements the calendar availability and booking
// engine: resolving query windows against business hours, validating and
// normalizing booking requests, interpreting free/busy responses, and
// listing upcoming events through a provider gateway.
//
// The engine is stateless between invocations. Each operation resolves its
// inputs, makes at most one gateway round-trip, and reports failures as a
// tagged Error of one of three kinds: parse, policy, or provider.
package scheduling
