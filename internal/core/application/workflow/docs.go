// Package workflow contains the Controller, the only entry point the presentation
// layer talks to. It orchestrates the order draft, the price summary, the wallet
// session, the payment settlement and the delivery tracker.
//
// Intents are handled one at a time. Handlers run under the controller mutex; the
// wallet provider round trip is the only suspension point inside an intent and it
// runs with the mutex released, guarded by the session's attempt token. Timer
// callbacks re-enter through the same mutex and check that the settlement they
// belong to is still current, so a torn down or cancelled draft is never mutated.
//
// Every accepted mutation publishes a Snapshot to the Presenter. Every rejection
// (invalid promo code, provider unavailable, connection rejected, missing input,
// not connected, invalid amount) publishes exactly one Notification of kind
// Rejection and leaves state at its pre-intent value. A closed step gate is not a
// rejection: Dispatch returns order.ErrValidationBlocked and notifies nothing.
package workflow
