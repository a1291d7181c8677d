// SPDX-License-Identifier: GPL-3.0-or-later

// Package common holds the EPP XML fragments shared across the domain,
// contact, and host object packages: authInfo, period, status, and
// object-reference elements.
package common

// AuthInfo is the <authInfo> element carrying an object's auth password,
// required on domain/contact create and used to authorize a transfer.
type AuthInfo struct {
	Pw string `xml:"pw"`
}

// Period is the <period> element expressing a registration or renewal
// term in years (unit "y") or months (unit "m").
type Period struct {
	Unit  string `xml:"unit,attr"`
	Value int    `xml:",chardata"`
}

// Years returns a [Period] of n years, the unit every registry actually
// accepts in practice.
func Years(n int) Period {
	return Period{Unit: "y", Value: n}
}

// Status is the <status> element reporting or requesting an EPP object
// status (e.g. "clientTransferProhibited", "ok").
type Status struct {
	Value string `xml:"s,attr"`
	Lang  string `xml:"lang,attr,omitempty"`
	Text  string `xml:",chardata"`
}

// HostAddr is the <addr> element under a host's create/info/update,
// carrying an IPv4 ("v4") or IPv6 ("v6") address.
type HostAddr struct {
	IPVersion string `xml:"ip,attr"`
	Value     string `xml:",chardata"`
}

// V4 builds a [HostAddr] for an IPv4 literal.
func V4(addr string) HostAddr { return HostAddr{IPVersion: "v4", Value: addr} }

// V6 builds a [HostAddr] for an IPv6 literal.
func V6(addr string) HostAddr { return HostAddr{IPVersion: "v6", Value: addr} }

// ContactRef is a <contact> element under domain create/update, naming a
// contact id for a given role ("admin", "tech", "billing").
type ContactRef struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

