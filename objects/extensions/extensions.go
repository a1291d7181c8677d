// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on _examples/original_source/epp-client/src/extensions/
// namestore.rs, rgp/request.rs, and consolidate.rs.

// Package extensions implements the EPP command extensions this library
// targets: the Verisign NameStore subproduct extension, RGP restore
// request/report, the sync-update extension, and their combination.
package extensions

import (
	"encoding/xml"

	"github.com/bassosimone/epp"
)

// NameStore is the Verisign <namestoreExt:namestoreExt> extension,
// selecting which TLD subproduct a command applies to. It is valid as
// both a command and a response [epp.Extension].
type NameStore struct {
	epp.ExtBase
	XMLName    xml.Name `xml:"namestoreExt:namestoreExt"`
	Xmlns      string   `xml:"xmlns:namestoreExt,attr"`
	SubProduct string   `xml:"namestoreExt:subProduct"`
}

// NewNameStore builds a [NameStore] extension for the given subproduct
// (e.g. "com", "net").
func NewNameStore(subproduct string) NameStore {
	return NameStore{
		Xmlns:      "http://www.verisign-grs.com/epp/namestoreExt-1.1",
		SubProduct: subproduct,
	}
}

// RGPRestoreRequest is the <rgp:update><rgp:restore op="request"/> RGP
// grace-period restore extension, sent alongside a domain update to ask
// the registry to restore a domain in redemptionPeriod.
type RGPRestoreRequest struct {
	epp.ExtBase
	XMLName xml.Name             `xml:"rgp:update"`
	Xmlns   string               `xml:"xmlns:rgp,attr"`
	Restore rgpRestoreRequestData `xml:"rgp:restore"`
}

type rgpRestoreRequestData struct {
	Op string `xml:"op,attr"`
}

// NewRGPRestoreRequest builds an [RGPRestoreRequest].
func NewRGPRestoreRequest() RGPRestoreRequest {
	return RGPRestoreRequest{
		Xmlns:   "urn:ietf:params:xml:ns:rgp-1.0",
		Restore: rgpRestoreRequestData{Op: "request"},
	}
}

// RGPStatus is one <rgpStatus> entry reporting a domain's current grace
// period.
type RGPStatus struct {
	Status string `xml:"s,attr"`
}

// RGPRequestResponse is the <upData> extension response carrying the
// domain's resulting RGP status list, returned from both a restore
// request (on a domain update) and a domain info query.
type RGPRequestResponse struct {
	epp.ExtBase
	XMLName   xml.Name    `xml:"upData"`
	RGPStatus []RGPStatus `xml:"rgpStatus"`
}

// Sync is the Verisign <sync:update> extension requesting the domain's
// expiration date be realigned to a fixed month/day, independent of its
// original registration anniversary.
type Sync struct {
	epp.ExtBase
	XMLName xml.Name `xml:"sync:update"`
	Xmlns   string   `xml:"xmlns:sync,attr"`
	ExpDay  string   `xml:"sync:expMonthDay"`
}

// NewSync builds a [Sync] extension for expiry day expressed as
// gMonthDay (e.g. "--05-31" for May 31st, per
// https://www.w3.org/TR/xmlschema-2/#gMonthDay).
func NewSync(monthDay string) Sync {
	return Sync{Xmlns: "http://www.verisign.com/epp/sync-1.0", ExpDay: monthDay}
}

// SyncWithNameStore combines [Sync] and [NameStore] into a single
// <extension> element, grounded on consolidate.rs's SyncWithNameStore:
// Verisign's sync-update extension requires the subproduct extension to
// be present in the same command when used against a NameStore-enabled
// TLD.
type SyncWithNameStore struct {
	epp.ExtBase
	Sync      Sync      `xml:"sync:update"`
	NameStore NameStore `xml:"namestoreExt:namestoreExt"`
}

// NewSyncWithNameStore combines sync and subproduct into one extension.
func NewSyncWithNameStore(monthDay, subproduct string) SyncWithNameStore {
	return SyncWithNameStore{Sync: NewSync(monthDay), NameStore: NewNameStore(subproduct)}
}

// MarshalXML emits Sync and NameStore as sibling elements directly under
// <extension>, rather than letting encoding/xml synthesize a wrapper
// element for the SyncWithNameStore struct itself (it has no XMLName of
// its own, since RFC 5730's <extension> takes multiple children
// directly, not one further-nested grouping element).
func (s SyncWithNameStore) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	if err := e.Encode(s.Sync); err != nil {
		return err
	}
	return e.Encode(s.NameStore)
}
