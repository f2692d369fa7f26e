package payment

import (
	"errors"
	"fmt"
	"time"

	"droneflow/internal/core/domain/model/kernel"
	"droneflow/internal/core/domain/model/order"
	"droneflow/internal/core/domain/model/wallet"
	"droneflow/internal/pkg/errs"
)

var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")

// Transaction is the payment for one draft.
type Transaction struct {
	status      Status
	amount      kernel.Money
	reference   string
	payer       string
	details     order.Details
	startedAt   time.Time
	completedAt time.Time

	isConstructed bool
}

// NewTransaction returns an Idle transaction.
func NewTransaction() *Transaction {
	return &Transaction{status: Idle, amount: kernel.Zero, isConstructed: true}
}

func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

func (t *Transaction) Status() Status {
	return t.status
}

func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

func (t *Transaction) Payer() string {
	return t.payer
}

func (t *Transaction) Details() order.Details {
	return t.details
}

func (t *Transaction) StartedAt() time.Time {
	return t.startedAt
}

func (t *Transaction) CompletedAt() time.Time {
	return t.completedAt
}

// Reference is the recipient address or order reference the payment is for.
func (t *Transaction) Reference() string {
	return t.reference
}

// Start freezes the payment inputs and enters Processing.
//
// Checks, in order:
//   - reentrant start: ErrAlreadyProcessing
//   - session not Connected: wallet.ErrNotConnected
//   - non-positive amount or blank reference: errs validation errors
func (t *Transaction) Start(
	session *wallet.Session,
	amount kernel.Money,
	reference string,
	details order.Details,
	at time.Time,
) error {
	next, err := t.status.Start()
	if err != nil {
		return err
	}
	if session.Validate() != nil || !session.IsConnected() {
		return wallet.ErrNotConnected
	}

	if err = errors.Join(
		validateAmount(amount),
		validateReference(reference),
	); err != nil {
		return err
	}

	t.status = next
	t.amount = amount
	t.reference = reference
	t.payer = session.Address()
	t.details = details
	t.startedAt = at
	return nil
}

// Complete marks the settlement as done.
func (t *Transaction) Complete(at time.Time) error {
	next, err := t.status.Complete()
	if err != nil {
		return err
	}
	t.status = next
	t.completedAt = at
	return nil
}

func validateAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	return nil
}

func validateReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	return nil
}
