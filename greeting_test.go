// SPDX-License-Identifier: GPL-3.0-or-later

package epp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGreetingSuccess(t *testing.T) {
	g, err := ParseGreeting([]byte(testGreetingXML))
	require.NoError(t, err)
	assert.Equal(t, "Test Registry Server", g.ServerID)
	assert.Equal(t, "1.0", g.SvcMenu.Version)
	assert.Equal(t, "en", g.SvcMenu.Lang)
	assert.Contains(t, g.SvcMenu.ObjURIs, "urn:ietf:params:xml:ns:domain-1.0")
	assert.Contains(t, g.SvcMenu.ExtURIs, "http://www.verisign-grs.com/epp/namestoreExt-1.1")
}

func TestParseGreetingNotAGreeting(t *testing.T) {
	_, err := ParseGreeting([]byte(`<?xml version="1.0"?><epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><hello/></epp>`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestParseGreetingMalformedXML(t *testing.T) {
	_, err := ParseGreeting([]byte(`not xml at all`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestGreetingSupportsObject(t *testing.T) {
	g, err := ParseGreeting([]byte(testGreetingXML))
	require.NoError(t, err)
	assert.True(t, g.SupportsObject("urn:ietf:params:xml:ns:domain-1.0"))
	assert.False(t, g.SupportsObject("urn:ietf:params:xml:ns:unknown-1.0"))
}

func TestGreetingSupportsExtension(t *testing.T) {
	g, err := ParseGreeting([]byte(testGreetingXML))
	require.NoError(t, err)
	assert.True(t, g.SupportsExtension("http://www.verisign-grs.com/epp/namestoreExt-1.1"))
	assert.False(t, g.SupportsExtension("urn:ietf:params:xml:ns:rgp-1.0"))
}
