// Package errs provides the typed errors shared by the domain model and the
// workflow layer.
//
// Every type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) returned by Unwrap
//   - exported ParamName/Cause fields for callers that need the detail
//   - a constructor without cause and a ...WithCause variant
//
// Domain packages declare their own sentinels (wallet.ErrMissingInput, ...) and
// wrap these types with them, so both errors.Is(err, wallet.ErrMissingInput) and
// errors.Is(err, errs.ErrValueIsRequired) hold for the same value.
package errs
