// SPDX-License-Identifier: GPL-3.0-or-later

package epp

// SessionState enumerates the states a [*Client]'s session can be in.
type SessionState int

const (
	// StateUnconnected is the state before [Dial] has produced a [*Conn].
	StateUnconnected SessionState = iota

	// StateGreeted is entered once the server's greeting has been parsed.
	// Hello and Login are permitted; business transactions are not.
	StateGreeted

	// StateLoggedIn is entered on a successful Login (result in
	// [1000,2000)). The only state in which business transactions are
	// permitted.
	StateLoggedIn

	// StateLoggedOut is entered on a successful Logout (result 1500).
	// Terminal: no further operations are permitted.
	StateLoggedOut

	// StateBroken is entered on any I/O failure or malformed frame.
	// Terminal: no further operations are permitted.
	StateBroken
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case StateUnconnected:
		return "unconnected"
	case StateGreeted:
		return "greeted"
	case StateLoggedIn:
		return "logged-in"
	case StateLoggedOut:
		return "logged-out"
	case StateBroken:
		return "broken"
	default:
		return "invalid"
	}
}
