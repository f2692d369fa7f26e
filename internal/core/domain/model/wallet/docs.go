// Package wallet models the single session between the customer and an external
// wallet provider.
//
// The package includes:
//   - Session: the aggregate holding status, account, balance, send form and the
//     most recent transfers
//   - Status: Disconnected -> Connecting -> Connected state machine
//   - ProviderKind: the tagged variant of supported provider capabilities
//   - Transfer: a record of a submitted send or a settled order payment
//
// Key rules:
//   - at most one connection attempt is in flight; every attempt carries a token and
//     results for a superseded token are ignored
//   - the address is present iff the status is Connected
//   - a failed attempt or a disconnect returns the session to Disconnected and clears
//     address, balance and the send form
//   - Send checks NotConnected before MissingInput and never mutates the form on failure
package wallet
