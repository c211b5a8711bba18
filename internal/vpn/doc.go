// Package vpn adapts the nordvpn command-line client to the operations
// the menu offers: connecting, disconnecting, toggling auto-connect, and
// listing the countries and server groups the client knows about.
//
// Each operation is an argument template with an optional {target}
// token, so a differently spelled client can be driven from
// configuration alone.
package vpn
