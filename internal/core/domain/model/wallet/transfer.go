package wallet

import (
	"time"

	"droneflow/internal/core/domain/model/kernel"
)

// Direction of a Transfer relative to the connected account.
type Direction string

const (
	Sent     Direction = "sent"
	Received Direction = "received"
)

// TransferStatus is "submitted" for sends handed to the provider and "completed"
// for settled order payments.
type TransferStatus string

const (
	TransferSubmitted TransferStatus = "submitted"
	TransferCompleted TransferStatus = "completed"
)

// MaxRecentTransfers bounds Session.Transfers.
const MaxRecentTransfers = 10

// Transfer is an entry of the recent activity list.
type Transfer struct {
	ID           kernel.UUID    `json:"id"`
	Direction    Direction      `json:"direction"`
	Amount       kernel.Money   `json:"amount"`
	Counterparty string         `json:"counterparty,omitempty"`
	OrderID      kernel.UUID    `json:"orderId"`
	Status       TransferStatus `json:"status"`
	At           time.Time      `json:"at"`
}
