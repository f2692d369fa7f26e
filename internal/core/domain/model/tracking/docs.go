// Package tracking derives delivery progress for a confirmed order.
//
// Stages form a fixed ordered list:
//
//	OrderPlaced -> DroneDispatched -> InTransit -> ArrivingSoon -> Delivered
//
// A Tracker only moves forward, one stage per Advance, and stops at Delivered.
// Progress is index/(count-1)*100 rounded, unless the hand-off seeded an override,
// which is reported until the next Advance.
package tracking
