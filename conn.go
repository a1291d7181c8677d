//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Dial pipeline composed the way dnsovertls.go's Dial composes its own
// pipeline: NewEndpointFunc -> NewConnectFunc -> NewObserveConnFunc ->
// NewCancelWatchFunc -> NewTLSHandshakeFunc.
//

package epp

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/netip"

	"golang.org/x/sync/semaphore"
)

// Conn owns a TLS byte stream to one registry and mediates one strictly
// serial sequence of request/response frames.
//
// A Conn holds at most one outstanding [Exchange] at a time, enforced by
// a weight-1 [semaphore.Weighted]: a concurrent Exchange on the same
// Conn blocks until the first completes. Any I/O, framing, or truncation
// failure during an Exchange marks the Conn permanently Broken.
type Conn struct {
	conn         TLSConn
	maxFrame     int
	logger       SLogger
	errClassifier ErrClassifier
	sem          *semaphore.Weighted
	greetingRaw  []byte
	greeting     *Greeting
	broken       bool
}

// Dial builds the dial pipeline (endpoint -> TCP connect -> I/O
// observation -> cancellation watch -> TLS handshake), connects to
// addr, reads the server's first frame, and requires it to parse as a
// well-formed epp:greeting.
//
// On any failure prior to a successful greeting read, the underlying
// connection (if one was established) is closed.
func Dial(ctx context.Context, cfg *Config, addr netip.AddrPort, tlsConfig *tls.Config, logger SLogger) (*Conn, error) {
	if logger == nil {
		logger = DefaultSLogger()
	}

	pipeline := Compose5(
		NewEndpointFunc(addr),
		NewConnectFunc(cfg, "tcp", logger),
		NewObserveConnFunc(cfg, logger),
		&CancelWatchFunc{},
		NewTLSHandshakeFunc(cfg, tlsConfig, logger),
	)

	tconn, err := pipeline.Call(ctx, Unit{})
	if err != nil {
		return nil, newError(KindTransport, "Dial", err)
	}

	maxFrame := cfg.MaxFrameSize
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameSize
	}

	c := &Conn{
		conn:          tconn,
		maxFrame:      maxFrame,
		logger:        logger,
		errClassifier: cfg.ErrClassifier,
		sem:           semaphore.NewWeighted(1),
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		tconn.Close()
		return nil, newError(KindTransport, "Dial", err)
	}
	raw, err := ReadFrame(c.conn, c.maxFrame)
	c.sem.Release(1)
	if err != nil {
		tconn.Close()
		return nil, err
	}

	greeting, err := ParseGreeting(raw)
	if err != nil {
		tconn.Close()
		return nil, err
	}

	c.greetingRaw = raw
	c.greeting = greeting

	c.logger.Info("greetingRead",
		slog.String("serverID", greeting.ServerID),
		slog.Any("objURIs", greeting.SvcMenu.ObjURIs),
		slog.Any("extURIs", greeting.SvcMenu.ExtURIs),
	)

	return c, nil
}

// Greeting returns the greeting captured at connect time.
func (c *Conn) Greeting() *Greeting {
	return c.greeting
}

// RawGreeting returns the raw XML bytes of the greeting frame captured
// at connect time.
func (c *Conn) RawGreeting() []byte {
	return c.greetingRaw
}

// Exchange writes xmlOut as one frame, reads exactly one reply frame,
// and returns its payload. The call is serialized against any other
// concurrent Exchange on the same Conn via a weight-1 semaphore, whose
// Acquire is context-aware: a cancelled caller unblocks immediately
// rather than waiting on an in-flight Exchange it no longer needs.
//
// Any I/O, framing, or truncation failure marks the Conn Broken; all
// subsequent Exchange calls then fail immediately with
// [ErrSessionBroken].
func (c *Conn) Exchange(ctx context.Context, xmlOut []byte) ([]byte, error) {
	if c.broken {
		return nil, newError(KindSessionBroken, "Exchange", nil)
	}
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, newError(KindTransport, "Exchange", err)
	}
	defer c.sem.Release(1)

	if err := WriteFrame(c.conn, xmlOut, c.maxFrame); err != nil {
		c.broken = true
		return nil, err
	}

	reply, err := ReadFrame(c.conn, c.maxFrame)
	if err != nil {
		c.broken = true
		return nil, err
	}
	return reply, nil
}

// Close closes the underlying connection unconditionally.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Broken reports whether the Conn has suffered a terminal I/O, framing,
// or truncation failure during an Exchange and must not be used further.
func (c *Conn) Broken() bool {
	return c.broken
}
