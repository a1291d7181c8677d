//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Deserialize's raw-then-typed two-pass decode is grounded on
// bea0ff08_nemith-netconf's Session.Exec: unmarshal once against a
// fixed envelope shape to inspect <rpc-reply>/<result>, then unmarshal
// the caller-supplied payload type from the same bytes. Here the second
// pass decodes from the captured <resData>/<extension> innerxml rather
// than the whole document, since Resp/ExtResp declare their own
// XMLName (e.g. "chkData") which would not match the wrapping
// <resData> element if decoded as a single nested field.
//

package epp

import (
	"bytes"
	"encoding/xml"
)

// Command is implemented by every typed EPP request. CommandBody returns
// the value to marshal as the <command>'s business child element; that
// value's own XMLName field supplies the element's (prefixed) name, e.g.
// "domain:check".
type Command interface {
	CommandBody() any
}

// Extension is the marker interface implemented by every EPP command
// extension payload (RGP restore, NameStore, sync update, and their
// combinations). ExtensionMarker has no behavior; it exists only to keep
// arbitrary values from being passed where an Extension is required.
//
// The method is exported (unlike a typical unexported marker) so that
// extension types defined in other packages (see objects/extensions) can
// implement it directly, or by embedding [ExtBase].
type Extension interface {
	ExtensionMarker()
}

// ExtBase is embedded by Extension implementations outside this package
// to satisfy the marker method without repeating its empty body.
type ExtBase struct{}

// ExtensionMarker implements [Extension].
func (ExtBase) ExtensionMarker() {}

// NoExt is the distinguished empty [Extension]: passing it to
// [Serialize] or [Transact] produces an envelope with no <extension>
// element at all, and requests that [Deserialize] treat a non-empty
// reply <extension> as an error.
type NoExt struct{ ExtBase }

const eppXMLDecl = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"

// Serialize builds the full EPP envelope XML for cmd, optionally wrapped
// with ext (pass [NoExt]{} to omit the <extension> element), and clTRID.
//
// Fails with [ErrXML] if marshaling the command or extension value fails.
func Serialize(cmd Command, ext Extension, clTRID string) ([]byte, error) {
	body := cmd.CommandBody()
	bodyXML, err := xml.Marshal(body)
	if err != nil {
		return nil, newError(KindXML, "Serialize", err)
	}

	var extXML []byte
	if !isNoExt(ext) {
		inner, err := xml.Marshal(ext)
		if err != nil {
			return nil, newError(KindXML, "Serialize", err)
		}
		extXML = inner
	}

	var buf bytes.Buffer
	buf.WriteString(eppXMLDecl)
	buf.WriteString(`<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><command>`)
	buf.Write(bodyXML)
	if extXML != nil {
		buf.WriteString(`<extension>`)
		buf.Write(extXML)
		buf.WriteString(`</extension>`)
	}
	buf.WriteString(`<clTRID>`)
	xml.EscapeText(&buf, []byte(clTRID))
	buf.WriteString(`</clTRID></command></epp>`)

	return buf.Bytes(), nil
}

func isNoExt(ext Extension) bool {
	if ext == nil {
		return true
	}
	_, ok := ext.(NoExt)
	return ok
}

// MsgQ is the optional <msgQ> element on responses carrying a poll
// message queue notification.
type MsgQ struct {
	Count int    `xml:"count,attr"`
	ID    string `xml:"id,attr"`
	QDate string `xml:"qDate"`
	Msg   string `xml:"msg"`
}

// rawInner captures an element's unparsed child content, used to defer
// typed decoding of <resData> and <extension> to a second pass.
type rawInner struct {
	Inner []byte `xml:",innerxml"`
}

// rawResponse is the fixed outer shape every EPP response shares,
// regardless of what Resp/ExtResp the caller ultimately wants.
type rawResponse struct {
	XMLName xml.Name  `xml:"epp"`
	Result  Result    `xml:"response>result"`
	MsgQ    *MsgQ     `xml:"response>msgQ"`
	ResData *rawInner `xml:"response>resData"`
	ExtData *rawInner `xml:"response>extension"`
	TRID    TRID      `xml:"response>trID"`
}

// Deserialize parses reply XML into either a success value of type Resp
// (plus an *ExtResp payload if present) or an [*EppCommandError].
//
// Dispatch follows the [Success] predicate: 1000 <= code < 2000 is
// success; any other code (including 1500, logout's nominal success)
// produces an [*EppCommandError]. Client.Logout is the one caller
// allowed to treat a 1500 [*EppCommandError] as success; Deserialize
// itself never special-cases it.
//
// When ExtResp is [NoExt] but the reply carries a non-empty
// <extension>, Deserialize returns [ErrUnknownExtension]. When a
// declared (non-NoExt) extension's content doesn't parse, it surfaces
// as [ErrXML].
func Deserialize[Resp any, ExtResp any](reply []byte) (Resp, *ExtResp, *TRID, error) {
	var zero Resp
	var raw rawResponse
	if err := xml.Unmarshal(reply, &raw); err != nil {
		return zero, nil, nil, newError(KindXML, "Deserialize", err)
	}
	if raw.Result.Code == 0 {
		return zero, nil, nil, newError(KindProtocol, "Deserialize", errMissingResult)
	}

	if !Success(raw.Result.Code) {
		return zero, nil, &raw.TRID, &EppCommandError{Result: raw.Result, TRID: raw.TRID}
	}

	var resp Resp
	if raw.ResData != nil {
		// <resData> contains exactly one child element (e.g. chkData);
		// its raw innerxml is already a standalone document whose root
		// matches Resp's own XMLName, so no synthetic wrapper is needed
		// (mirrors nemith-netconf's Exec: decode the same bytes again
		// into the caller's type).
		if err := xml.Unmarshal(raw.ResData.Inner, &resp); err != nil {
			return zero, nil, nil, newError(KindXML, "Deserialize", err)
		}
	}

	var extResp *ExtResp
	if raw.ExtData != nil {
		var noExtRequested ExtResp
		if _, ok := any(noExtRequested).(NoExt); ok {
			if len(bytes.TrimSpace(raw.ExtData.Inner)) > 0 {
				return resp, nil, &raw.TRID, ErrUnknownExtension
			}
		} else {
			var parsedExt ExtResp
			if err := xml.Unmarshal(raw.ExtData.Inner, &parsedExt); err != nil {
				return zero, nil, nil, newError(KindXML, "Deserialize", err)
			}
			extResp = &parsedExt
		}
	}

	return resp, extResp, &raw.TRID, nil
}

// ParseMsgQ extracts the optional <msgQ> queue-summary element from a
// raw response, independent of whatever typed resData/extension that
// response also carries. A poll request's reply has no resData of its
// own interest beyond this; callers transact with
// Transact[struct{}, NoExt] and call ParseMsgQ on the raw reply exposed
// via [*Client.TransactXML], or inspect it directly from a [*Conn].
func ParseMsgQ(reply []byte) (*MsgQ, error) {
	var raw rawResponse
	if err := xml.Unmarshal(reply, &raw); err != nil {
		return nil, newError(KindXML, "ParseMsgQ", err)
	}
	return raw.MsgQ, nil
}

type envelopeError string

func (e envelopeError) Error() string { return string(e) }

var errMissingResult = envelopeError("response is missing a <result> element")
