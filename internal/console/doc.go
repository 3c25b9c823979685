// Package console keeps the operator list shown by the management console in
// sync with the gateway.
//
// A Store holds the canonical list, the single create/edit dialog session and
// the notification slot. A Controller turns user intents into tea.Cmd values
// that perform the HTTP round-trip, and Handle applies the settled response:
// on any successful write it notifies the user and schedules a fresh list
// fetch, so the displayed list always converges to the server's view instead
// of being patched locally.
package console
