// Package kernel provides the value objects shared by every aggregate of the
// workflow: UUID identifiers and non-negative Money amounts.
//
// Both types are immutable and have an invalid zero value; use the constructors.
package kernel
