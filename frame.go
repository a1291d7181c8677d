//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/nemith/netconf message framing (io.ReadFull
// usage).
//

package epp

import (
	"bufio"
	"encoding/binary"
	"io"
)

// DefaultMaxFrameSize is the default cap on a single frame's total size
// (length prefix included). RFC 5734 leaves the cap to implementations;
// 64 KiB is too small for real greeting/response traffic, so this
// package defaults to 1 MiB.
const DefaultMaxFrameSize = 1 << 20

// ReadFrame reads one length-prefixed EPP frame from r and returns its
// payload (the length prefix itself is not included).
//
// The wire format is a 4-byte big-endian unsigned total length (which
// INCLUDES the 4-byte prefix) followed by exactly total-4 payload bytes.
//
// ReadFrame fails with [ErrFraming] if the declared total is smaller
// than 5 (a zero-length payload is not a valid EPP frame) or larger
// than max. A clean EOF before any byte of the length prefix is read is
// returned verbatim as [io.EOF] so callers can distinguish "no more
// frames" from "frame interrupted"; an EOF after that point is wrapped as
// [ErrTruncated], and any other read error as [ErrTransport].
func ReadFrame(r io.Reader, max int) ([]byte, error) {
	var lenbuf [4]byte
	if _, err := io.ReadFull(r, lenbuf[:]); err != nil {
		if err == io.EOF {
			return nil, err
		}
		if err == io.ErrUnexpectedEOF {
			return nil, newError(KindTruncated, "ReadFrame", err)
		}
		return nil, newError(KindTransport, "ReadFrame", err)
	}

	total := binary.BigEndian.Uint32(lenbuf[:])
	if total < 5 {
		return nil, newError(KindFraming, "ReadFrame", errFrameTooShort)
	}
	if int64(total) > int64(max) {
		return nil, newError(KindFraming, "ReadFrame", errFrameTooLarge)
	}

	payload := make([]byte, total-4)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, newError(KindTruncated, "ReadFrame", err)
		}
		return nil, newError(KindTransport, "ReadFrame", err)
	}
	return payload, nil
}

// WriteFrame writes payload to w as one length-prefixed EPP frame,
// flushing w if it is a [*bufio.Writer]. Fails with [ErrFraming] if the
// resulting total length (len(payload)+4) exceeds max.
func WriteFrame(w io.Writer, payload []byte, max int) error {
	total := uint64(len(payload)) + 4
	if total > uint64(max) {
		return newError(KindFraming, "WriteFrame", errFrameTooLarge)
	}

	buf := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(buf, uint32(total))
	copy(buf[4:], payload)

	if _, err := w.Write(buf); err != nil {
		return newError(KindTransport, "WriteFrame", err)
	}
	if bw, ok := w.(*bufio.Writer); ok {
		if err := bw.Flush(); err != nil {
			return newError(KindTransport, "WriteFrame", err)
		}
	}
	return nil
}

var (
	errFrameTooShort = frameError("declared frame length is too short to contain a payload")
	errFrameTooLarge = frameError("declared frame length exceeds the configured maximum")
)

type frameError string

func (e frameError) Error() string { return string(e) }
