// Package payment models the simulated settlement of a confirmed order.
//
// A Transaction moves Idle -> Processing -> Completed. Processing can only be
// entered from Idle and only while the wallet session is Connected, which
// guarantees at most one in-flight settlement per draft. Failed is part of the
// status set but no transition leads to it yet: settlement always completes.
package payment
