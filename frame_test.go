// SPDX-License-Identifier: GPL-3.0-or-later

package epp

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte("a"),
		[]byte("<epp/>"),
		bytes.Repeat([]byte("x"), 4096),
	}
	for _, payload := range cases {
		var buf bytes.Buffer
		require.NoError(t, WriteFrame(&buf, payload, DefaultMaxFrameSize))

		wire := buf.Bytes()
		require.Len(t, wire, len(payload)+4)

		total := uint32(wire[0])<<24 | uint32(wire[1])<<16 | uint32(wire[2])<<8 | uint32(wire[3])
		assert.Equal(t, uint32(len(payload)+4), total)

		got, err := ReadFrame(bytes.NewReader(wire), DefaultMaxFrameSize)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	}
}

func TestReadFrameCleanEOF(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader(nil), DefaultMaxFrameSize)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadFrameTruncated(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader([]byte{0, 0, 0, 10, 'a', 'b'}), DefaultMaxFrameSize)
	require.Error(t, err)
	var eppErr *Error
	require.True(t, errors.As(err, &eppErr))
	assert.Equal(t, KindTruncated, eppErr.Kind)
}

func TestReadFrameTooShort(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader([]byte{0, 0, 0, 4}), DefaultMaxFrameSize)
	require.Error(t, err)
	var eppErr *Error
	require.True(t, errors.As(err, &eppErr))
	assert.Equal(t, KindFraming, eppErr.Kind)
}

func TestReadFrameTooLarge(t *testing.T) {
	buf := make([]byte, 4)
	buf[0] = 0xFF
	buf[1] = 0xFF
	buf[2] = 0xFF
	buf[3] = 0xFF
	_, err := ReadFrame(bytes.NewReader(buf), 1024)
	require.Error(t, err)
	var eppErr *Error
	require.True(t, errors.As(err, &eppErr))
	assert.Equal(t, KindFraming, eppErr.Kind)
}

func TestWriteFrameTooLarge(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFrame(&buf, make([]byte, 100), 50)
	require.Error(t, err)
	var eppErr *Error
	require.True(t, errors.As(err, &eppErr))
	assert.Equal(t, KindFraming, eppErr.Kind)
}
