// SPDX-License-Identifier: GPL-3.0-or-later

// Package epp implements a client for the Extensible Provisioning Protocol
// (EPP, RFC 5730-5734): domain, contact, and host registration over a
// persistent TCP+TLS connection to a registry.
//
// # Core Abstraction
//
// Connection establishment is built from the same composable primitive as
// the rest of the package:
//
//	type Func[A, B any] interface {
//		Call(ctx context.Context, input A) (B, error)
//	}
//
// [Dial] composes [NewEndpointFunc], [NewConnectFunc], [NewObserveConnFunc],
// [CancelWatchFunc], and [NewTLSHandshakeFunc] into one pipeline: supply the
// registry's address, open a TCP connection, wrap it for I/O logging, bind
// its lifetime to the context, and perform the TLS handshake. The result is
// a [*Conn] whose first frame has already been read and parsed as the
// server's [Greeting].
//
// # Layers
//
//   - [Conn] owns the TLS byte stream and the 4-byte length-prefixed frame
//     codec ([ReadFrame], [WriteFrame]); it guarantees at most one
//     outstanding [Conn.Exchange] at a time.
//   - [Serialize] and [Deserialize] translate typed [Command]/[Extension]
//     values to and from EPP's XML envelope.
//   - [Client] is the session coordinator: it owns a [*Conn], drives the
//     login/transact/logout state machine ([SessionState]), and exposes
//     [Transact] as the generic entry point typed commands use.
//   - [ProfileStore] holds registry connection profiles (host, port, TLS
//     configuration, credentials) looked up by tag at [Open] time.
//
// # Connection Lifecycle
//
// [Open] dials, reads the greeting, and logs in; it returns a ready
// [*Client] or closes whatever it managed to establish and returns an
// error. [Client.Close] logs out (if still logged in) and closes the
// underlying connection unconditionally. There is no finalizer-driven
// teardown: a [*Client] that is never closed merely leaks its socket until
// the process exits.
//
// # Observability
//
// All primitives support structured logging via [SLogger] (compatible with
// [log/slog]). By default, logging is disabled; pass [WithLogger] to [Open]
// to enable it. Error classification is configurable via [ErrClassifier];
// [DefaultErrClassifierEPP] recognizes this package's [Kind] taxonomy,
// [*EppCommandError] result codes, and common POSIX network errnos.
//
// Use [NewSpanID] to generate a unique, time-ordered identifier (UUIDv7) for
// a session; [Open] attaches one automatically when the configured logger
// is a concrete [*slog.Logger], so every log line from one [*Client]
// correlates.
//
// # Timeout and Context Philosophy
//
// This package is context-transparent: operations never modify the context
// they receive. The caller controls timeouts externally via
// [context.WithTimeout], [context.WithDeadline], or [signal.NotifyContext].
// [CancelWatchFunc] binds the connection's lifetime to the dial context, so
// that cancelling it closes the connection and unblocks any in-progress
// I/O; the semaphore guarding [Conn.Exchange] is itself context-aware, so a
// cancelled caller waiting on an in-flight exchange returns immediately
// rather than waiting for it to finish.
//
// # Design Boundaries
//
// This package does not resolve hostnames (a registry [Profile]'s Host
// must already be an IP literal; see [resolveAddrPort]), does not source
// TLS certificate material, and does not retry or orchestrate multi-step
// workflows above a single [Transact] call. These concerns belong to
// callers or higher-level packages.
package epp
