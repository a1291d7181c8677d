// SPDX-License-Identifier: GPL-3.0-or-later

package epp

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/xml"
	"math/big"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateSelfSignedCert builds an ephemeral, self-signed certificate for
// "registry.example", used to run a real TLS handshake in-process without
// any external fixture.
func generateSelfSignedCert(t *testing.T) tls.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "registry.example"},
		DNSNames:              []string{"registry.example"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}

// startTestRegistry listens on a loopback TCP port, and for the one
// connection it accepts, performs a real TLS server handshake and then
// hands the resulting net.Conn to handle. It returns the listener's
// address.
func startTestRegistry(t *testing.T, handle func(conn net.Conn)) netip.AddrPort {
	t.Helper()
	cert := generateSelfSignedCert(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		raw, err := ln.Accept()
		if err != nil {
			return
		}
		tlsConn := tls.Server(raw, &tls.Config{Certificates: []tls.Certificate{cert}})
		defer tlsConn.Close()
		if err := tlsConn.Handshake(); err != nil {
			return
		}
		handle(tlsConn)
	}()

	addr := ln.Addr().(*net.TCPAddr)
	return netip.AddrPortFrom(netip.MustParseAddr(addr.IP.String()), uint16(addr.Port))
}

// testClientTLSConfig sets InsecureSkipVerify, since each test registry
// presents a fresh self-signed cert generated by generateSelfSignedCert;
// the handshake itself is still a real TLS handshake on both ends.
func testClientTLSConfig(t *testing.T) *tls.Config {
	t.Helper()
	return &tls.Config{InsecureSkipVerify: true, ServerName: "registry.example"}
}

// loginFrameClTRID extracts the clTRID a client sent in a <login> command,
// so the fake registry can echo it back the way a real one would.
func loginFrameClTRID(t *testing.T, payload []byte) string {
	t.Helper()
	var parsed struct {
		ClTRID string `xml:"command>clTRID"`
	}
	require.NoError(t, xml.Unmarshal(payload, &parsed))
	return parsed.ClTRID
}

// TestDialEndToEnd invokes Dial itself (not a hand-assembled pipeline)
// over a real TCP listener and a genuine TLS handshake, verifying it
// connects, performs the handshake, and parses the server's greeting.
func TestDialEndToEnd(t *testing.T) {
	addr := startTestRegistry(t, func(conn net.Conn) {
		_ = WriteFrame(conn, []byte(testGreetingXML), DefaultMaxFrameSize)
	})

	cfg := NewConfig()
	conn, err := Dial(context.Background(), cfg, addr, testClientTLSConfig(t), DefaultSLogger())
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, "Test Registry Server", conn.Greeting().ServerID)
	assert.True(t, conn.Greeting().SupportsObject("urn:ietf:params:xml:ns:domain-1.0"))
	assert.False(t, conn.Broken())
}

// TestDialRejectsNonGreetingFirstFrame exercises Dial's failure path: a
// first frame that isn't a well-formed greeting must surface ErrProtocol
// (Dial closes the underlying connection on this path).
func TestDialRejectsNonGreetingFirstFrame(t *testing.T) {
	addr := startTestRegistry(t, func(conn net.Conn) {
		_ = WriteFrame(conn, []byte(`<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><hello/></epp>`), DefaultMaxFrameSize)
	})

	cfg := NewConfig()
	_, err := Dial(context.Background(), cfg, addr, testClientTLSConfig(t), DefaultSLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocol)
}

// TestOpenEndToEnd invokes Open itself against a real *ProfileStore and a
// real TCP+TLS registry fake, covering the full dial-then-login path that
// is the package's primary public entry point.
func TestOpenEndToEnd(t *testing.T) {
	addr := startTestRegistry(t, func(conn net.Conn) {
		if err := WriteFrame(conn, []byte(testGreetingXML), DefaultMaxFrameSize); err != nil {
			return
		}
		payload, err := ReadFrame(conn, DefaultMaxFrameSize)
		if err != nil {
			return
		}
		clTRID := loginFrameClTRID(t, payload)
		_ = WriteFrame(conn, successReply(clTRID), DefaultMaxFrameSize)
	})

	store := NewProfileStore()
	require.NoError(t, store.Register("registry1", Profile{
		Host:      addr.Addr().String(),
		Port:      int(addr.Port()),
		TLSConfig: testClientTLSConfig(t),
		Credentials: Credentials{
			Username: "clientX",
			Password: "pw",
		},
	}))

	client, err := Open(context.Background(), store, "registry1")
	require.NoError(t, err)
	defer client.Close(context.Background())

	assert.Equal(t, StateLoggedIn, client.State())
	assert.Equal(t, "Test Registry Server", client.Greeting().ServerID)
}

// TestOpenUnknownTagFailsWithoutDialing confirms Open never attempts to
// dial when the profile tag isn't registered.
func TestOpenUnknownTagFailsWithoutDialing(t *testing.T) {
	store := NewProfileStore()
	_, err := Open(context.Background(), store, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}
