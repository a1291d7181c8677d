// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on _examples/original_source/epp-client/src/contact/check.rs,
// contact/delete.rs, and epp/request/contact/info.rs.

// Package contact implements the EPP contact object mapping (RFC 5733):
// check, create, info, delete, and update.
package contact

import "encoding/xml"

const xmlnsContact = "urn:ietf:params:xml:ns:contact-1.0"

// AuthInfo is the contact-specific <authInfo> element (kept distinct
// from objects/common.AuthInfo since it nests under the contact
// namespace rather than a shared one).
type AuthInfo struct {
	Pw string `xml:"contact:pw"`
}

// PostalInfoAddr is the <addr> block of a <postalInfo>.
type PostalInfoAddr struct {
	Street      []string `xml:"contact:street,omitempty"`
	City        string   `xml:"contact:city"`
	StateProv   string   `xml:"contact:sp,omitempty"`
	PostalCode  string   `xml:"contact:pc,omitempty"`
	CountryCode string   `xml:"contact:cc"`
}

// PostalInfo is the <postalInfo> block, present in both "loc" (local
// script) and "int" (internationalized ASCII) forms per RFC 5733; Type
// selects which.
type PostalInfo struct {
	Type string         `xml:"type,attr"`
	Name string         `xml:"contact:name"`
	Org  string         `xml:"contact:org,omitempty"`
	Addr PostalInfoAddr `xml:"contact:addr"`
}

// CheckCommand is the <contact:check> command.
type CheckCommand struct {
	XMLName xml.Name `xml:"contact:check"`
	Xmlns   string   `xml:"xmlns:contact,attr"`
	IDs     []string `xml:"contact:id"`
}

func (c CheckCommand) CommandBody() any { return c }

// NewCheck builds a [CheckCommand] for the given contact ids.
func NewCheck(ids ...string) CheckCommand {
	return CheckCommand{Xmlns: xmlnsContact, IDs: ids}
}

// CheckResultID is the <id> child of a <cd> check result.
type CheckResultID struct {
	Value     string `xml:",chardata"`
	Available int    `xml:"avail,attr"`
}

// CheckResult is one <cd> entry of a contact check response.
type CheckResult struct {
	ID     CheckResultID `xml:"id"`
	Reason string        `xml:"reason,omitempty"`
}

// CheckResponse is the <chkData> resData of a contact check response.
type CheckResponse struct {
	XMLName xml.Name      `xml:"chkData"`
	Checks  []CheckResult `xml:"cd"`
}

// CreateCommand is the <contact:create> command.
type CreateCommand struct {
	XMLName    xml.Name     `xml:"contact:create"`
	Xmlns      string       `xml:"xmlns:contact,attr"`
	ID         string       `xml:"contact:id"`
	PostalInfo PostalInfo   `xml:"contact:postalInfo"`
	Voice      string       `xml:"contact:voice,omitempty"`
	Fax        string       `xml:"contact:fax,omitempty"`
	Email      string       `xml:"contact:email"`
	AuthInfo   AuthInfo     `xml:"contact:authInfo"`
}

func (c CreateCommand) CommandBody() any { return c }

// NewCreate builds a [CreateCommand]. Callers needing "int" postal info
// alongside "loc" set PostalInfo.Type directly; RFC 5733 permits at most
// one of each per contact, so this package models a single PostalInfo
// rather than a pair.
func NewCreate(id string, postal PostalInfo, email, authPw string) CreateCommand {
	return CreateCommand{
		Xmlns: xmlnsContact, ID: id, PostalInfo: postal, Email: email,
		AuthInfo: AuthInfo{Pw: authPw},
	}
}

// CreateResponse is the <creData> resData of a contact create response.
type CreateResponse struct {
	XMLName xml.Name `xml:"creData"`
	ID      string   `xml:"id"`
	CrDate  string   `xml:"crDate"`
}

// InfoCommand is the <contact:info> command.
type InfoCommand struct {
	XMLName  xml.Name `xml:"contact:info"`
	Xmlns    string   `xml:"xmlns:contact,attr"`
	ID       string   `xml:"contact:id"`
	AuthInfo AuthInfo `xml:"contact:authInfo"`
}

func (c InfoCommand) CommandBody() any { return c }

// NewInfo builds an [InfoCommand] for id, authorized by authPw.
func NewInfo(id, authPw string) InfoCommand {
	return InfoCommand{Xmlns: xmlnsContact, ID: id, AuthInfo: AuthInfo{Pw: authPw}}
}

// InfoResponse is the <infData> resData of a contact info response.
type InfoResponse struct {
	XMLName    xml.Name     `xml:"infData"`
	ID         string       `xml:"id"`
	ROID       string       `xml:"roid"`
	Status     []string     `xml:"status>s,omitempty"`
	PostalInfo []PostalInfo `xml:"postalInfo"`
	Voice      string       `xml:"voice,omitempty"`
	Fax        string       `xml:"fax,omitempty"`
	Email      string       `xml:"email"`
	ClID       string       `xml:"clID"`
	CrID       string       `xml:"crID,omitempty"`
	CrDate     string       `xml:"crDate,omitempty"`
	UpDate     string       `xml:"upDate,omitempty"`
}

// DeleteCommand is the <contact:delete> command.
type DeleteCommand struct {
	XMLName xml.Name `xml:"contact:delete"`
	Xmlns   string   `xml:"xmlns:contact,attr"`
	ID      string   `xml:"contact:id"`
}

func (c DeleteCommand) CommandBody() any { return c }

// NewDelete builds a [DeleteCommand] for id. A contact delete has no
// resData.
func NewDelete(id string) DeleteCommand {
	return DeleteCommand{Xmlns: xmlnsContact, ID: id}
}

// UpdateCommand is the <contact:update> command.
type UpdateCommand struct {
	XMLName xml.Name      `xml:"contact:update"`
	Xmlns   string        `xml:"xmlns:contact,attr"`
	ID      string        `xml:"contact:id"`
	Add     *UpdateStatus `xml:"contact:add,omitempty"`
	Rem     *UpdateStatus `xml:"contact:rem,omitempty"`
	Chg     *UpdateChange `xml:"contact:chg,omitempty"`
}

func (c UpdateCommand) CommandBody() any { return c }

// UpdateStatus is the shape shared by <contact:add> and <contact:rem>.
type UpdateStatus struct {
	Status []string `xml:"contact:status>s,omitempty"`
}

// UpdateChange is the <contact:chg> block.
type UpdateChange struct {
	PostalInfo *PostalInfo `xml:"contact:postalInfo,omitempty"`
	Voice      string      `xml:"contact:voice,omitempty"`
	Email      string      `xml:"contact:email,omitempty"`
	AuthInfo   *AuthInfo   `xml:"contact:authInfo,omitempty"`
}

// NewUpdate builds an [UpdateCommand] for id with no add/rem/chg set;
// the caller populates them before transacting. A contact update has no
// resData.
func NewUpdate(id string) UpdateCommand {
	return UpdateCommand{Xmlns: xmlnsContact, ID: id}
}
