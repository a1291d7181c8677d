// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on _examples/original_source/epp-client/src/host/create.rs,
// host/check.rs, and host/delete.rs.

// Package host implements the EPP host object mapping (RFC 5732): check,
// create, info, delete, and update.
package host

import (
	"encoding/xml"

	"github.com/bassosimone/epp/objects/common"
)

const xmlnsHost = "urn:ietf:params:xml:ns:host-1.0"

// CheckCommand is the <host:check> command.
type CheckCommand struct {
	XMLName xml.Name `xml:"host:check"`
	Xmlns   string   `xml:"xmlns:host,attr"`
	Names   []string `xml:"host:name"`
}

func (c CheckCommand) CommandBody() any { return c }

// NewCheck builds a [CheckCommand] for the given host names.
func NewCheck(names ...string) CheckCommand {
	return CheckCommand{Xmlns: xmlnsHost, Names: names}
}

// CheckResultName is the <name> child of a <cd> check result.
type CheckResultName struct {
	Value string `xml:",chardata"`
	Avail int    `xml:"avail,attr"`
}

// CheckResult is one <cd> entry of a host check response.
type CheckResult struct {
	Name   CheckResultName `xml:"name"`
	Reason string          `xml:"reason,omitempty"`
}

// CheckResponse is the <chkData> resData of a host check response.
type CheckResponse struct {
	XMLName xml.Name      `xml:"chkData"`
	Checks  []CheckResult `xml:"cd"`
}

// CreateCommand is the <host:create> command.
type CreateCommand struct {
	XMLName   xml.Name          `xml:"host:create"`
	Xmlns     string            `xml:"xmlns:host,attr"`
	Name      string            `xml:"host:name"`
	Addresses []common.HostAddr `xml:"host:addr,omitempty"`
}

func (c CreateCommand) CommandBody() any { return c }

// NewCreate builds a [CreateCommand] for a host name with the given
// glue addresses (only meaningful for in-bailiwick hosts).
func NewCreate(name string, addrs ...common.HostAddr) CreateCommand {
	return CreateCommand{Xmlns: xmlnsHost, Name: name, Addresses: addrs}
}

// CreateResponse is the <creData> resData of a host create response.
type CreateResponse struct {
	XMLName xml.Name `xml:"creData"`
	Name    string   `xml:"name"`
	CrDate  string   `xml:"crDate"`
}

// InfoCommand is the <host:info> command.
type InfoCommand struct {
	XMLName xml.Name `xml:"host:info"`
	Xmlns   string   `xml:"xmlns:host,attr"`
	Name    string   `xml:"host:name"`
}

func (c InfoCommand) CommandBody() any { return c }

// NewInfo builds an [InfoCommand] for name.
func NewInfo(name string) InfoCommand {
	return InfoCommand{Xmlns: xmlnsHost, Name: name}
}

// InfoResponse is the <infData> resData of a host info response.
type InfoResponse struct {
	XMLName   xml.Name          `xml:"infData"`
	Name      string            `xml:"name"`
	ROID      string            `xml:"roid"`
	Status    []string          `xml:"status>s,omitempty"`
	Addresses []common.HostAddr `xml:"addr,omitempty"`
	ClID      string            `xml:"clID"`
	CrID      string            `xml:"crID,omitempty"`
	CrDate    string            `xml:"crDate,omitempty"`
	UpDate    string            `xml:"upDate,omitempty"`
}

// DeleteCommand is the <host:delete> command.
type DeleteCommand struct {
	XMLName xml.Name `xml:"host:delete"`
	Xmlns   string   `xml:"xmlns:host,attr"`
	Name    string   `xml:"host:name"`
}

func (c DeleteCommand) CommandBody() any { return c }

// NewDelete builds a [DeleteCommand] for name. A host delete has no
// resData.
func NewDelete(name string) DeleteCommand {
	return DeleteCommand{Xmlns: xmlnsHost, Name: name}
}

// UpdateCommand is the <host:update> command.
type UpdateCommand struct {
	XMLName xml.Name      `xml:"host:update"`
	Xmlns   string        `xml:"xmlns:host,attr"`
	Name    string        `xml:"host:name"`
	Add     *UpdateAddRem `xml:"host:add,omitempty"`
	Rem     *UpdateAddRem `xml:"host:rem,omitempty"`
	Chg     *UpdateChange `xml:"host:chg,omitempty"`
}

func (c UpdateCommand) CommandBody() any { return c }

// UpdateAddRem is the shape shared by <host:add> and <host:rem>.
type UpdateAddRem struct {
	Addresses []common.HostAddr `xml:"host:addr,omitempty"`
	Status    []string          `xml:"host:status>s,omitempty"`
}

// UpdateChange is the <host:chg> block: a host rename.
type UpdateChange struct {
	Name string `xml:"host:name,omitempty"`
}

// NewUpdate builds an [UpdateCommand] for name with no add/rem/chg set;
// the caller populates them before transacting. A host update has no
// resData.
func NewUpdate(name string) UpdateCommand {
	return UpdateCommand{Xmlns: xmlnsHost, Name: name}
}
