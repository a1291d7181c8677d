// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on _examples/original_source/epp-client/src/message/ack.rs
// and epp/response/message/poll.rs.

// Package message implements the EPP <poll> command: checking for and
// acknowledging queued service messages (RFC 5730 section 2.9.2.3).
package message

import "encoding/xml"

// PollReq is the <poll op="req"/> command, asking the registry whether
// any message is queued. A reply with no <msgQ> means nothing queued;
// one carrying msgQ.ID is acknowledged via [PollAck].
type PollReq struct {
	XMLName xml.Name `xml:"poll"`
	Op      string   `xml:"op,attr"`
}

func (c PollReq) CommandBody() any { return c }

// NewPollReq builds a [PollReq].
func NewPollReq() PollReq {
	return PollReq{Op: "req"}
}

// PollAck is the <poll op="ack"/> command, acknowledging and dequeuing
// the message identified by MsgID.
type PollAck struct {
	XMLName xml.Name `xml:"poll"`
	Op      string   `xml:"op,attr"`
	MsgID   string   `xml:"msgID,attr"`
}

func (c PollAck) CommandBody() any { return c }

// NewPollAck builds a [PollAck] for msgID (the msgQ.ID from a prior
// [PollReq] reply). Acknowledgement carries no resData.
func NewPollAck(msgID string) PollAck {
	return PollAck{Op: "ack", MsgID: msgID}
}
