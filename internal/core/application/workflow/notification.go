package workflow

import (
	"errors"
	"time"

	"droneflow/internal/core/domain/model/pricing"
	"droneflow/internal/core/domain/model/wallet"
)

// NotificationKind separates confirmations from rejection notices.
type NotificationKind string

const (
	Info      NotificationKind = "info"
	Rejection NotificationKind = "rejection"
)

// Code identifies a notification for programmatic consumers.
type Code string

const (
	CodeInvalidPromoCode     Code = "InvalidPromoCode"
	CodeProviderUnavailable  Code = "ProviderUnavailable"
	CodeConnectionRejected   Code = "ConnectionRejected"
	CodeMissingInput         Code = "MissingInput"
	CodeNotConnected         Code = "NotConnected"
	CodeInvalidAmount        Code = "InvalidAmount"
	CodePromoApplied         Code = "PromoApplied"
	CodeWalletConnected      Code = "WalletConnected"
	CodeWalletDisconnected   Code = "WalletDisconnected"
	CodeTransactionSubmitted Code = "TransactionSubmitted"
	CodeOrderConfirmed       Code = "OrderConfirmed"
	CodeTrackingStarted      Code = "TrackingStarted"
	CodeOrderDelivered       Code = "OrderDelivered"
	CodeOrderCancelled       Code = "OrderCancelled"
)

// Notification is a user visible message.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Code    Code             `json:"code"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	At      time.Time        `json:"at"`
}

type rejection struct {
	sentinel error
	code     Code
	title    string
	message  string
}

var rejections = []rejection{
	{pricing.ErrInvalidPromoCode, CodeInvalidPromoCode,
		"Invalid promo code", "Please check your code and try again"},
	{wallet.ErrProviderUnavailable, CodeProviderUnavailable,
		"Wallet Not Found", "Please install a Compass or Ethereum compatible wallet extension"},
	{wallet.ErrConnectionRejected, CodeConnectionRejected,
		"Connection Failed", "Failed to connect to the wallet. Please try again."},
	{wallet.ErrNotConnected, CodeNotConnected,
		"Wallet Not Connected", "Please connect your wallet first"},
	{wallet.ErrMissingInput, CodeMissingInput,
		"Missing Information", "Please enter both amount and recipient address"},
	{wallet.ErrInvalidAmount, CodeInvalidAmount,
		"Invalid Amount", "Please enter an amount greater than zero"},
}

// rejectionFor maps err onto the rejection taxonomy. ok is false for errors that
// are not surfaced as notices.
func rejectionFor(err error, at time.Time) (Notification, bool) {
	for _, r := range rejections {
		if errors.Is(err, r.sentinel) {
			return Notification{Kind: Rejection, Code: r.code, Title: r.title, Message: r.message, At: at}, true
		}
	}
	return Notification{}, false
}

// IsRejection reports whether err belongs to the user visible rejection taxonomy.
func IsRejection(err error) bool {
	_, ok := rejectionFor(err, time.Time{})
	return ok
}

// RejectionCode returns the taxonomy code of err, or "".
func RejectionCode(err error) Code {
	n, _ := rejectionFor(err, time.Time{})
	return n.Code
}

func info(code Code, title, message string, at time.Time) Notification {
	return Notification{Kind: Info, Code: code, Title: title, Message: message, At: at}
}
