// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on _examples/original_source/epp-client/src/domain/delete.rs and
// domain/transfer.rs: one Go file per request/response pair there becomes
// one typed Command/Resp pair here, using golang.org/x/net/idna for the
// ASCII-compatible encoding step the Rust source left to the caller.

// Package domain implements the EPP domain object mapping (RFC 5731):
// check, create, info, delete, renew, transfer, and update.
package domain

import (
	"encoding/xml"

	"golang.org/x/net/idna"

	"github.com/bassosimone/epp/objects/common"
)

const xmlnsDomain = "urn:ietf:params:xml:ns:domain-1.0"

// toASCII applies IDNA lookup-profile encoding, so a caller can pass a
// Unicode domain label and have it travel the wire as the registry
// expects (xn--... for non-ASCII names, unchanged for ASCII ones).
func toASCII(name string) (string, error) {
	return idna.Lookup.ToASCII(name)
}

// CheckCommand is the <domain:check> command, checking the availability
// of one or more domain names.
type CheckCommand struct {
	XMLName xml.Name `xml:"domain:check"`
	Xmlns   string   `xml:"xmlns:domain,attr"`
	Names   []string `xml:"domain:name"`
}

func (c CheckCommand) CommandBody() any { return c }

// NewCheck builds a [CheckCommand] for the given names, IDNA-encoding
// each one.
func NewCheck(names ...string) (CheckCommand, error) {
	encoded := make([]string, len(names))
	for i, n := range names {
		a, err := toASCII(n)
		if err != nil {
			return CheckCommand{}, err
		}
		encoded[i] = a
	}
	return CheckCommand{Xmlns: xmlnsDomain, Names: encoded}, nil
}

// CheckResultName is the <name> child of a <cd> check result, carrying
// the checked name and its avail attribute.
type CheckResultName struct {
	Value string `xml:",chardata"`
	Avail int    `xml:"avail,attr"`
}

// CheckResult is one <cd> entry of a check response.
type CheckResult struct {
	Name   CheckResultName `xml:"name"`
	Reason string          `xml:"reason,omitempty"`
}

// CheckResponse is the <chkData> resData of a domain check response.
type CheckResponse struct {
	XMLName xml.Name      `xml:"chkData"`
	Checks  []CheckResult `xml:"cd"`
}

// CreateCommand is the <domain:create> command.
type CreateCommand struct {
	XMLName    xml.Name             `xml:"domain:create"`
	Xmlns      string               `xml:"xmlns:domain,attr"`
	Name       string               `xml:"domain:name"`
	Period     *common.Period       `xml:"domain:period,omitempty"`
	Ns         []string             `xml:"domain:ns>domain:hostObj,omitempty"`
	Registrant string               `xml:"domain:registrant,omitempty"`
	Contacts   []common.ContactRef  `xml:"domain:contact,omitempty"`
	AuthInfo   common.AuthInfo      `xml:"domain:authInfo"`
}

func (c CreateCommand) CommandBody() any { return c }

// NewCreate builds a [CreateCommand] for name, registered to registrant
// with the given auth password. Nameservers and additional contacts are
// optional and set via the returned value's fields before transacting.
func NewCreate(name string, period common.Period, registrant, authPw string) (CreateCommand, error) {
	a, err := toASCII(name)
	if err != nil {
		return CreateCommand{}, err
	}
	return CreateCommand{
		Xmlns:      xmlnsDomain,
		Name:       a,
		Period:     &period,
		Registrant: registrant,
		AuthInfo:   common.AuthInfo{Pw: authPw},
	}, nil
}

// CreateResponse is the <creData> resData of a domain create response.
type CreateResponse struct {
	XMLName xml.Name `xml:"creData"`
	Name    string   `xml:"name"`
	CrDate  string   `xml:"crDate"`
	ExDate  string   `xml:"exDate,omitempty"`
}

// InfoCommand is the <domain:info> command.
type InfoCommand struct {
	XMLName xml.Name `xml:"domain:info"`
	Xmlns   string   `xml:"xmlns:domain,attr"`
	Name    string   `xml:"domain:name"`
}

func (c InfoCommand) CommandBody() any { return c }

// NewInfo builds an [InfoCommand] for name.
func NewInfo(name string) (InfoCommand, error) {
	a, err := toASCII(name)
	if err != nil {
		return InfoCommand{}, err
	}
	return InfoCommand{Xmlns: xmlnsDomain, Name: a}, nil
}

// InfoResponse is the <infData> resData of a domain info response.
type InfoResponse struct {
	XMLName    xml.Name        `xml:"infData"`
	Name       string          `xml:"name"`
	ROID       string          `xml:"roid"`
	Status     []common.Status `xml:"status"`
	Registrant string          `xml:"registrant,omitempty"`
	ClID       string          `xml:"clID"`
	CrID       string          `xml:"crID,omitempty"`
	CrDate     string          `xml:"crDate,omitempty"`
	UpID       string          `xml:"upID,omitempty"`
	UpDate     string          `xml:"upDate,omitempty"`
	ExDate     string          `xml:"exDate,omitempty"`
	TrDate     string          `xml:"trDate,omitempty"`
	AuthInfo   *common.AuthInfo `xml:"authInfo,omitempty"`
}

// DeleteCommand is the <domain:delete> command.
type DeleteCommand struct {
	XMLName xml.Name `xml:"domain:delete"`
	Xmlns   string   `xml:"xmlns:domain,attr"`
	Name    string   `xml:"domain:name"`
}

func (c DeleteCommand) CommandBody() any { return c }

// NewDelete builds a [DeleteCommand] for name. A domain delete has no
// resData: transact with epp.Transact[struct{}, ExtResp].
func NewDelete(name string) (DeleteCommand, error) {
	a, err := toASCII(name)
	if err != nil {
		return DeleteCommand{}, err
	}
	return DeleteCommand{Xmlns: xmlnsDomain, Name: a}, nil
}

// RenewCommand is the <domain:renew> command.
type RenewCommand struct {
	XMLName    xml.Name      `xml:"domain:renew"`
	Xmlns      string        `xml:"xmlns:domain,attr"`
	Name       string        `xml:"domain:name"`
	CurExpDate string        `xml:"domain:curExpDate"`
	Period     *common.Period `xml:"domain:period,omitempty"`
}

func (c RenewCommand) CommandBody() any { return c }

// NewRenew builds a [RenewCommand]. curExpDate is the domain's currently
// known expiry date (YYYY-MM-DD), required by RFC 5731 to guard against
// racing renewals.
func NewRenew(name, curExpDate string, period common.Period) (RenewCommand, error) {
	a, err := toASCII(name)
	if err != nil {
		return RenewCommand{}, err
	}
	return RenewCommand{Xmlns: xmlnsDomain, Name: a, CurExpDate: curExpDate, Period: &period}, nil
}

// RenewResponse is the <renData> resData of a domain renew response.
type RenewResponse struct {
	XMLName xml.Name `xml:"renData"`
	Name    string   `xml:"name"`
	ExDate  string   `xml:"exDate"`
}

// TransferOp enumerates the <transfer op="..."> values RFC 5731 defines.
type TransferOp string

const (
	TransferRequest TransferOp = "request"
	TransferQuery   TransferOp = "query"
	TransferApprove TransferOp = "approve"
	TransferReject  TransferOp = "reject"
	TransferCancel  TransferOp = "cancel"
)

// TransferCommand is the <domain:transfer> command, grounded on
// domain/transfer.rs's five constructors (request/query/approve/reject/
// cancel), unified here into one type discriminated by Op.
type TransferCommand struct {
	XMLName  xml.Name        `xml:"domain:transfer"`
	Op       TransferOp      `xml:"op,attr"`
	Xmlns    string          `xml:"xmlns:domain,attr"`
	Name     string          `xml:"domain:name"`
	Period   *common.Period  `xml:"domain:period,omitempty"`
	AuthInfo *common.AuthInfo `xml:"domain:authInfo,omitempty"`
}

func (c TransferCommand) CommandBody() any { return c }

// NewTransferRequest builds a TransferCommand requesting a transfer,
// optionally renewing for period years, authorized by authPw.
func NewTransferRequest(name string, period *common.Period, authPw string) (TransferCommand, error) {
	a, err := toASCII(name)
	if err != nil {
		return TransferCommand{}, err
	}
	return TransferCommand{
		Op: TransferRequest, Xmlns: xmlnsDomain, Name: a, Period: period,
		AuthInfo: &common.AuthInfo{Pw: authPw},
	}, nil
}

// NewTransferQuery builds a TransferCommand querying transfer status.
func NewTransferQuery(name, authPw string) (TransferCommand, error) {
	a, err := toASCII(name)
	if err != nil {
		return TransferCommand{}, err
	}
	return TransferCommand{Op: TransferQuery, Xmlns: xmlnsDomain, Name: a, AuthInfo: &common.AuthInfo{Pw: authPw}}, nil
}

// NewTransferDecision builds a TransferCommand for approve, reject, or
// cancel, none of which carry an authInfo.
func NewTransferDecision(op TransferOp, name string) (TransferCommand, error) {
	a, err := toASCII(name)
	if err != nil {
		return TransferCommand{}, err
	}
	return TransferCommand{Op: op, Xmlns: xmlnsDomain, Name: a}, nil
}

// TransferResponse is the <trnData> resData of a domain transfer
// response.
type TransferResponse struct {
	XMLName      xml.Name `xml:"trnData"`
	Name         string   `xml:"name"`
	TransferStat string   `xml:"trStatus"`
	ReID         string   `xml:"reID"`
	ReDate       string   `xml:"reDate"`
	AckID        string   `xml:"acID"`
	AckDate      string   `xml:"acDate"`
	ExDate       string   `xml:"exDate,omitempty"`
}

// UpdateCommand is the <domain:update> command. Add/Rem/Chg mirror RFC
// 5731's three update blocks; a caller sets only the fields it needs.
type UpdateCommand struct {
	XMLName xml.Name          `xml:"domain:update"`
	Xmlns   string             `xml:"xmlns:domain,attr"`
	Name    string             `xml:"domain:name"`
	Add     *UpdateAddRem      `xml:"domain:add,omitempty"`
	Rem     *UpdateAddRem      `xml:"domain:rem,omitempty"`
	Chg     *UpdateChange      `xml:"domain:chg,omitempty"`
}

func (c UpdateCommand) CommandBody() any { return c }

// UpdateAddRem is the shape shared by <domain:add> and <domain:rem>.
type UpdateAddRem struct {
	Ns       []string             `xml:"domain:ns>domain:hostObj,omitempty"`
	Contacts []common.ContactRef  `xml:"domain:contact,omitempty"`
	Status   []common.Status      `xml:"domain:status,omitempty"`
}

// UpdateChange is the <domain:chg> block: registrant and/or authInfo.
type UpdateChange struct {
	Registrant string           `xml:"domain:registrant,omitempty"`
	AuthInfo   *common.AuthInfo `xml:"domain:authInfo,omitempty"`
}

// NewUpdate builds an [UpdateCommand] for name with no add/rem/chg set;
// the caller populates Add/Rem/Chg as needed before transacting. A
// domain update has no resData.
func NewUpdate(name string) (UpdateCommand, error) {
	a, err := toASCII(name)
	if err != nil {
		return UpdateCommand{}, err
	}
	return UpdateCommand{Xmlns: xmlnsDomain, Name: a}, nil
}
