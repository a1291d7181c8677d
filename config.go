// SPDX-License-Identifier: GPL-3.0-or-later

package epp

import (
	"crypto/tls"
	"fmt"
	"net"
	"sync"
	"time"

	"golang.org/x/text/secure/precis"
)

// Config holds common configuration for the connection pipeline.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// Dialer is used by [*ConnectFunc].
	//
	// Set by [NewConfig] to [*net.Dialer].
	Dialer Dialer

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifierEPP].
	ErrClassifier ErrClassifier

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time

	// MaxFrameSize bounds the total size (length prefix included) of any
	// frame read or written.
	//
	// Set by [NewConfig] to [DefaultMaxFrameSize].
	MaxFrameSize int
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Dialer:        &net.Dialer{},
		ErrClassifier: DefaultErrClassifierEPP,
		TimeNow:       time.Now,
		MaxFrameSize:  DefaultMaxFrameSize,
	}
}

// Credentials is the (username, password) pair presented at login, plus
// the extension URIs the session should advertise in <svcExtension>.
type Credentials struct {
	Username string
	Password string
	ExtURIs  []string
}

// validate checks Username and Password against PRECIS profiles the way
// mellium's XMPP stack validates JIDs and SASL identities, catching
// malformed credentials before a login round-trip is even attempted.
func (c Credentials) validate() error {
	if _, err := precis.UsernameCaseMapped.String(c.Username); err != nil {
		return newError(KindConfig, "Credentials.validate", fmt.Errorf("username: %w", err))
	}
	if _, err := precis.OpaqueString.String(c.Password); err != nil {
		return newError(KindConfig, "Credentials.validate", fmt.Errorf("password: %w", err))
	}
	return nil
}

// Profile is a registry endpoint record: host, port, TLS material, and
// the credentials to log in with. Profiles are registered under a short
// tag (e.g. "verisign") in a [ProfileStore].
type Profile struct {
	Host        string
	Port        int
	TLSConfig   *tls.Config
	Credentials Credentials
}

// ProfileStore is an in-memory, concurrency-safe registry of [Profile]
// values keyed by tag. The core never reads configuration files itself;
// populating the store from a credentials/endpoint file is the caller's
// job (see the package's Purpose & Scope notes).
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewProfileStore returns an empty, ready-to-use [*ProfileStore].
func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[string]Profile)}
}

// Register adds or replaces the [Profile] for tag, after validating its
// credentials against PRECIS. Safe for concurrent use.
func (s *ProfileStore) Register(tag string, p Profile) error {
	if err := p.Credentials.validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[tag] = p
	return nil
}

// Lookup returns the [Profile] registered under tag, or [ErrConfig] if
// no such tag has been registered. Safe for concurrent use.
func (s *ProfileStore) Lookup(tag string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[tag]
	if !ok {
		return Profile{}, newError(KindConfig, "ProfileStore.Lookup", fmt.Errorf("unknown registry tag %q", tag))
	}
	return p, nil
}
