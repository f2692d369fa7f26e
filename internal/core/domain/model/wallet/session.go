package wallet

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"droneflow/internal/core/domain/model/kernel"
	"droneflow/internal/pkg/errs"
)

var (
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrProviderUnavailable means no provider capability is installed.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	// ErrConnectionRejected means the provider refused, errored, or granted no account.
	ErrConnectionRejected = errors.New("wallet connection rejected")
	// ErrNotConnected means the operation needs a Connected session.
	ErrNotConnected = errors.New("wallet not connected")
	// ErrMissingInput means the amount or the recipient address is blank.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidAmount means the amount is not a positive number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrStaleAttempt means a provider answered for an attempt that was superseded.
	ErrStaleAttempt = errors.New("stale connection attempt")
)

// SendForm is the pending "send funds" input.
type SendForm struct {
	Amount  string `json:"amount"`
	Address string `json:"address"`
}

// Attempt identifies one connection attempt.
type Attempt uint64

// Session is the wallet aggregate. It is not safe for concurrent use; the
// workflow serializes access.
type Session struct {
	status    Status
	provider  ProviderKind
	account   *Account
	balance   kernel.Money
	form      SendForm
	transfers []Transfer
	attempt   Attempt

	isConstructed bool
}

// NewSession returns a Disconnected session.
func NewSession() *Session {
	return &Session{
		status:        Disconnected,
		balance:       kernel.Zero,
		isConstructed: true,
	}
}

func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s *Session) Status() Status {
	return s.status
}

func (s *Session) Provider() ProviderKind {
	return s.provider
}

func (s *Session) Balance() kernel.Money {
	return s.balance
}

func (s *Session) Form() SendForm {
	return s.form
}

func (s *Session) Transfers() []Transfer {
	return slices.Clone(s.transfers)
}

func (s *Session) IsConnected() bool {
	return s.status == Connected
}

func (s *Session) CurrentAttempt() Attempt {
	return s.attempt
}

// Address returns "" unless Connected.
func (s *Session) Address() string {
	if s.account == nil {
		return ""
	}
	return s.account.Address
}

// BeginConnect moves to Connecting and returns the token the provider result must
// present. ErrConnectInFlight and ErrAlreadyConnected leave the session untouched.
func (s *Session) BeginConnect() (Attempt, error) {
	next, err := s.status.BeginConnect()
	if err != nil {
		return 0, err
	}
	s.attempt++
	s.status = next
	return s.attempt, nil
}

// CompleteConnect applies the accounts granted for attempt. The first account
// becomes the session address. An empty grant counts as a rejection.
func (s *Session) CompleteConnect(attempt Attempt, kind ProviderKind, accounts []Account, balance kernel.Money) error {
	if attempt != s.attempt {
		return ErrStaleAttempt
	}

	next, err := s.status.CompleteConnect()
	if err != nil {
		return err
	}

	account, ok := firstAccount(accounts)
	if !ok {
		s.reset()
		return fmt.Errorf("%w: %w", ErrConnectionRejected, errs.NewValueIsRequiredError("accounts"))
	}

	s.status = next
	s.provider = kind
	s.account = &account
	s.balance = balance
	return nil
}

// FailConnect returns a Connecting session to Disconnected.
func (s *Session) FailConnect(attempt Attempt) error {
	if attempt != s.attempt {
		return ErrStaleAttempt
	}
	if s.status != Connecting {
		return nil
	}
	s.reset()
	return nil
}

// Restore reattaches an account the provider already authorized, without a
// Connecting phase. Only a Disconnected session can be restored.
func (s *Session) Restore(kind ProviderKind, accounts []Account, balance kernel.Money) error {
	if s.status != Disconnected {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to restore", s.status),
		)
	}
	account, ok := firstAccount(accounts)
	if !ok {
		return errs.NewValueIsRequiredError("accounts")
	}

	s.attempt++
	s.status = Connected
	s.provider = kind
	s.account = &account
	s.balance = balance
	return nil
}

// Disconnect always succeeds and is idempotent. It also invalidates any pending
// attempt so a late provider answer cannot reconnect the session.
func (s *Session) Disconnect() {
	s.attempt++
	s.reset()
}

// EditSendForm replaces the pending send input.
func (s *Session) EditSendForm(amount, address string) {
	s.form = SendForm{Amount: amount, Address: address}
}

// Send validates and records a transfer of amount to toAddress. Blank arguments
// fall back to the send form. On success the form is cleared.
func (s *Session) Send(amount, toAddress string, at time.Time) (Transfer, error) {
	if s.status != Connected {
		return Transfer{}, ErrNotConnected
	}

	if strings.TrimSpace(amount) == "" {
		amount = s.form.Amount
	}
	if strings.TrimSpace(toAddress) == "" {
		toAddress = s.form.Address
	}
	amount = strings.TrimSpace(amount)
	toAddress = strings.TrimSpace(toAddress)

	if err := errors.Join(required("amount", amount), required("toAddress", toAddress)); err != nil {
		return Transfer{}, fmt.Errorf("%w: %w", ErrMissingInput, err)
	}

	money, err := kernel.MoneyFromString(amount)
	if err == nil && !money.IsPositive() {
		err = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	if err != nil {
		return Transfer{}, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	transfer := Transfer{
		ID:           kernel.NewUUID(),
		Direction:    Sent,
		Amount:       money,
		Counterparty: toAddress,
		Status:       TransferSubmitted,
		At:           at,
	}
	s.record(transfer)
	s.form = SendForm{}
	return transfer, nil
}

// RecordPayment adds a completed order payment to the recent transfers.
func (s *Session) RecordPayment(orderID kernel.UUID, amount kernel.Money, payee string, at time.Time) Transfer {
	transfer := Transfer{
		ID:           kernel.NewUUID(),
		Direction:    Sent,
		Amount:       amount,
		Counterparty: payee,
		OrderID:      orderID,
		Status:       TransferCompleted,
		At:           at,
	}
	s.record(transfer)
	return transfer
}

func (s *Session) record(t Transfer) {
	s.transfers = append([]Transfer{t}, s.transfers...)
	if len(s.transfers) > MaxRecentTransfers {
		s.transfers = s.transfers[:MaxRecentTransfers]
	}
}

func (s *Session) reset() {
	s.status = Disconnected
	s.provider = UnknownProvider
	s.account = nil
	s.balance = kernel.Zero
	s.form = SendForm{}
	s.transfers = nil
}

func firstAccount(accounts []Account) (Account, bool) {
	if len(accounts) == 0 || strings.TrimSpace(accounts[0].Address) == "" {
		return Account{}, false
	}
	return Account{Address: strings.TrimSpace(accounts[0].Address)}, true
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
