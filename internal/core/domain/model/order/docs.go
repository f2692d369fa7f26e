// Package order models the shipment draft a customer fills in before paying.
//
// The package includes:
//   - Draft: the mutable, field-by-field accumulated sender/recipient/package input
//   - Field: the closed set of draft field names
//   - Step: the wizard position (Addresses -> Package -> Review) with its gates
//   - Details: the frozen copy handed to payment on confirmation
//
// Gate rules:
//   - Addresses is complete iff senderName, senderAddress, deliveryAddress
//     (recipientAddress) and recipientName are non-empty
//   - Package is complete iff packageDescription and packageWeight are non-empty
//
// An incomplete gate is not an error condition; CanAdvance simply reports false and
// Step.Next returns ErrValidationBlocked so the caller can keep progression disabled.
package order
