// SPDX-License-Identifier: GPL-3.0-or-later

package epp

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	require.NotNil(t, cfg)

	// Dialer should be set to *net.Dialer
	_, ok := cfg.Dialer.(*net.Dialer)
	assert.True(t, ok, "Dialer should be *net.Dialer")

	// ErrClassifier should be DefaultErrClassifierEPP by default
	assert.Equal(t, "", cfg.ErrClassifier.Classify(nil))
	assert.Equal(t, "ETIMEDOUT", cfg.ErrClassifier.Classify(context.DeadlineExceeded))

	// TimeNow should be set and return a valid time
	now := cfg.TimeNow()
	assert.False(t, now.IsZero())

	assert.Equal(t, DefaultMaxFrameSize, cfg.MaxFrameSize)
}

func TestProfileStoreRegisterAndLookup(t *testing.T) {
	store := NewProfileStore()

	err := store.Register("registry1", Profile{
		Host: "epp.registry1.example",
		Port: 700,
		Credentials: Credentials{
			Username: "clientuser",
			Password: "s3cr3t",
		},
	})
	require.NoError(t, err)

	p, err := store.Lookup("registry1")
	require.NoError(t, err)
	assert.Equal(t, "epp.registry1.example", p.Host)
	assert.Equal(t, 700, p.Port)
}

func TestProfileStoreLookupMissing(t *testing.T) {
	store := NewProfileStore()
	_, err := store.Lookup("does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestProfileStoreRegisterRejectsInvalidCredentials(t *testing.T) {
	store := NewProfileStore()
	err := store.Register("bad", Profile{
		Host: "epp.example",
		Credentials: Credentials{
			Username: "bad\x00user",
			Password: "pw",
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}
