// SPDX-License-Identifier: GPL-3.0-or-later

package epp

import (
	"context"
	"crypto/tls"
	"encoding/xml"
	"log/slog"
	"net/netip"
)

// defaultClientObjURIs is the set of object namespaces this library
// requests at login when the server's greeting advertises them. A
// caller whose registry needs additional object families can still
// transact against them manually via [TransactXML].
var defaultClientObjURIs = []string{
	"urn:ietf:params:xml:ns:domain-1.0",
	"urn:ietf:params:xml:ns:contact-1.0",
	"urn:ietf:params:xml:ns:host-1.0",
}

// Option configures a [*Client] at construction time.
type Option func(*Client)

// WithLogger sets the [SLogger] a [*Client] uses for structured logging.
// When the logger is a [*slog.Logger], each Client attaches its own
// [NewSpanID] to it via `.With`, so log lines from one session correlate.
func WithLogger(logger SLogger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithObjURIs overrides the object service URIs requested at login.
func WithObjURIs(uris []string) Option {
	return func(c *Client) { c.objURIs = uris }
}

// WithTRIDGenerator overrides the [TRIDGenerator] used to produce clTRID
// values, in place of the [DefaultTRIDGenerator] [Open] installs. Since
// [Open] takes a [*ProfileStore] and tag rather than a [*Config] it
// builds internally, this Option is the supported override point rather
// than a Config field.
func WithTRIDGenerator(gen TRIDGenerator) Option {
	return func(c *Client) { c.tridGen = gen }
}

// Client is the user-facing transaction coordinator. It owns one
// [*Conn], the credentials used to log in, the configured extension
// URIs, and the cached greeting.
type Client struct {
	conn        *Conn
	creds       Credentials
	objURIs     []string
	logger      SLogger
	errClassifier ErrClassifier
	tridGen     TRIDGenerator
	state       SessionState
}

// Open resolves tag in store, dials the registry, and performs Login.
//
// On any failure the underlying [*Conn] (if one was established) is
// closed and the error is returned; no partially-initialized [*Client]
// is ever returned alongside a non-nil error.
func Open(ctx context.Context, store *ProfileStore, tag string, opts ...Option) (*Client, error) {
	profile, err := store.Lookup(tag)
	if err != nil {
		return nil, err
	}

	cfg := NewConfig()
	logger := DefaultSLogger()

	tlsConfig := profile.TLSConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if tlsConfig.ServerName == "" {
		tlsConfig = tlsConfig.Clone()
		tlsConfig.ServerName = profile.Host
	}

	addr, err := resolveAddrPort(profile.Host, profile.Port)
	if err != nil {
		return nil, newError(KindConfig, "Open", err)
	}

	conn, err := Dial(ctx, cfg, addr, tlsConfig, logger)
	if err != nil {
		return nil, err
	}

	c := &Client{
		conn:          conn,
		creds:         profile.Credentials,
		objURIs:       defaultClientObjURIs,
		logger:        logger,
		errClassifier: cfg.ErrClassifier,
		tridGen:       DefaultTRIDGenerator(profile.Credentials.Username),
		state:         StateGreeted,
	}
	for _, opt := range opts {
		opt(c)
	}
	if sl, ok := c.logger.(*slog.Logger); ok {
		c.logger = sl.With("spanID", NewSpanID())
	}

	if err := c.login(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return c, nil
}

// resolveAddrPort parses host as an already-resolved IP literal. DNS
// resolution is explicitly out of scope for this library (see Purpose
// & Scope): callers needing hostname resolution do it themselves and
// pass a [netip.AddrPort], or a caller can wrap [Open] with their own
// net.Resolver-backed lookup.
func resolveAddrPort(host string, port int) (netip.AddrPort, error) {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.AddrPort{}, err
	}
	return netip.AddrPortFrom(addr, uint16(port)), nil
}

type loginOptions struct {
	Version string `xml:"version"`
	Lang    string `xml:"lang"`
}

type loginSvcExtension struct {
	ExtURI []string `xml:"extURI"`
}

type loginSvcs struct {
	ObjURI        []string           `xml:"objURI"`
	SvcExtension  *loginSvcExtension `xml:"svcExtension,omitempty"`
}

type loginCommand struct {
	XMLName xml.Name `xml:"login"`
	ClID    string   `xml:"clID"`
	Pw      string   `xml:"pw"`
	Options loginOptions `xml:"options"`
	Svcs    loginSvcs    `xml:"svcs"`
}

func (c loginCommand) CommandBody() any { return c }

type logoutCommand struct {
	XMLName xml.Name `xml:"logout"`
}

func (c logoutCommand) CommandBody() any { return c }

func (c *Client) login(ctx context.Context) error {
	cmd := loginCommand{
		ClID: c.creds.Username,
		Pw:   c.creds.Password,
		Options: loginOptions{
			Version: "1.0",
			Lang:    "en",
		},
		Svcs: loginSvcs{
			ObjURI: intersectObjURIs(c.objURIs, c.conn.Greeting()),
		},
	}
	if len(c.creds.ExtURIs) > 0 {
		cmd.Svcs.SvcExtension = &loginSvcExtension{ExtURI: c.creds.ExtURIs}
	}

	_, _, _, err := Transact[struct{}, NoExt](ctx, c, cmd, NoExt{})
	if err != nil {
		return err
	}
	c.state = StateLoggedIn
	return nil
}

func intersectObjURIs(want []string, g *Greeting) []string {
	if g == nil {
		return want
	}
	var out []string
	for _, w := range want {
		if g.SupportsObject(w) {
			out = append(out, w)
		}
	}
	return out
}

// Hello serializes <epp><hello/></epp>, exchanges it, and parses the
// reply as a [Greeting]. Permitted in [StateGreeted] and [StateLoggedIn].
func (c *Client) Hello(ctx context.Context) (*Greeting, error) {
	if c.state != StateGreeted && c.state != StateLoggedIn {
		return nil, newError(KindSessionBroken, "Hello", nil)
	}
	reply, err := c.conn.Exchange(ctx, []byte(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>`+"\n"+`<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><hello/></epp>`))
	if err != nil {
		c.state = StateBroken
		return nil, err
	}
	return ParseGreeting(reply)
}

// Transact serializes cmd (optionally wrapped with ext), exchanges it
// over c's [*Conn], and deserializes the reply. It requires
// [StateLoggedIn] (the package's own login command is also accepted in
// [StateGreeted]); callers invoke it with explicit Resp/ExtResp type
// parameters, e.g. epp.Transact[domain.CheckResponse, NoExt](ctx, c, req, NoExt{}).
//
// The parsed reply's clTRID is verified to equal the one just sent;
// a mismatch produces [ErrProtocol] and marks the session Broken.
func Transact[Resp any, ExtResp any](ctx context.Context, c *Client, cmd Command, ext Extension) (Resp, *ExtResp, *TRID, error) {
	var zero Resp
	if c.state != StateLoggedIn && !(c.state == StateGreeted && isLogin(cmd)) {
		return zero, nil, nil, newError(KindSessionBroken, "Transact", nil)
	}

	clTRID := c.tridGen()
	out, err := Serialize(cmd, ext, clTRID)
	if err != nil {
		return zero, nil, nil, err
	}

	c.logger.Info("transactStart", slog.String("clTRID", clTRID))
	reply, err := c.conn.Exchange(ctx, out)
	if err != nil {
		c.state = StateBroken
		c.logger.Info("transactDone", slog.String("clTRID", clTRID), slog.Any("err", err))
		return zero, nil, nil, err
	}

	resp, extResp, trid, err := Deserialize[Resp, ExtResp](reply)
	c.logger.Info("transactDone", slog.String("clTRID", clTRID), slog.Any("err", err))

	if trid != nil && trid.ClTRID != "" && trid.ClTRID != clTRID {
		c.state = StateBroken
		return zero, nil, trid, newError(KindProtocol, "Transact", errClTRIDMismatch)
	}

	return resp, extResp, trid, err
}

func isLogin(cmd Command) bool {
	_, ok := cmd.(loginCommand)
	return ok
}

// TransactXML is a raw bypass: it exchanges s as-is and returns the raw
// reply without parsing. It does not advance the session state machine
// and is intended for debugging or for protocol operations this
// library's typed catalog doesn't yet cover.
func (c *Client) TransactXML(ctx context.Context, s string) (string, error) {
	reply, err := c.conn.Exchange(ctx, []byte(s))
	if err != nil {
		c.state = StateBroken
		return "", err
	}
	return string(reply), nil
}

// Greeting returns the greeting captured at connect time.
func (c *Client) Greeting() *Greeting {
	return c.conn.Greeting()
}

// RawGreeting returns the raw XML bytes of the greeting frame.
func (c *Client) RawGreeting() []byte {
	return c.conn.RawGreeting()
}

// State returns the session's current [SessionState].
func (c *Client) State() SessionState {
	return c.state
}

// Logout requires [StateLoggedIn]. It sends <logout/> and, uniquely
// among this package's operations, treats result code 1500 as success
// rather than as an [*EppCommandError] (see [Deserialize]'s doc comment
// for why that special-casing lives here and not in Deserialize
// itself). On success the state becomes [StateLoggedOut].
func (c *Client) Logout(ctx context.Context) error {
	if c.state != StateLoggedIn {
		return newError(KindSessionBroken, "Logout", nil)
	}
	_, _, _, err := Transact[struct{}, NoExt](ctx, c, logoutCommand{}, NoExt{})
	if err != nil {
		var cmdErr *EppCommandError
		if ok := asEppCommandError(err, &cmdErr); ok && cmdErr.Result.Code == 1500 {
			c.state = StateLoggedOut
			return nil
		}
		return err
	}
	// A 2xxx-or-higher code never reaches here (Deserialize would have
	// already produced an *EppCommandError); a genuine [1000,2000)
	// success on logout is unusual but treated the same as 1500.
	c.state = StateLoggedOut
	return nil
}

func asEppCommandError(err error, target **EppCommandError) bool {
	ce, ok := err.(*EppCommandError)
	if !ok {
		return false
	}
	*target = ce
	return true
}

// Close attempts Logout if the session is still [StateLoggedIn]; a
// logout failure during Close is logged, not returned. The underlying
// [*Conn] is closed unconditionally afterward.
//
// There is no finalizer-triggered logout: Go has no stable
// object-destructor hook comparable to Rust's Drop (runtime.SetFinalizer
// cannot safely run async I/O and its timing is unspecified), so Close
// is the sole explicit teardown path. A Client left open and garbage
// collected without calling Close merely leaks the underlying socket
// until the OS reclaims it.
func (c *Client) Close(ctx context.Context) error {
	if c.state == StateLoggedIn {
		if err := c.Logout(ctx); err != nil {
			c.logger.Info("logoutDuringCloseFailed", slog.Any("err", err))
		}
	}
	return c.conn.Close()
}

type clientError string

func (e clientError) Error() string { return string(e) }

var errClTRIDMismatch = clientError("response clTRID does not match the request just sent")
