package order

import (
	"errors"
	"strings"
)

// ErrDraftIsNotConstructed is returned for a Draft not built by NewDraft.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// Draft accumulates the shipment input. Values are stored verbatim; the gates
// only look at whether a value is blank.
type Draft struct {
	values        [fieldCount]string
	isConstructed bool
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{isConstructed: true}
}

func (d *Draft) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftIsNotConstructed
	}
	return nil
}

// SetField overwrites the previous value. It only fails for an invalid Field.
func (d *Draft) SetField(f Field, value string) error {
	if err := f.Validate(); err != nil {
		return err
	}
	d.values[f] = value
	return nil
}

func (d *Draft) Value(f Field) string {
	if f.Validate() != nil {
		return ""
	}
	return d.values[f]
}

// CanAdvance reports whether the gate of step is open.
func (d *Draft) CanAdvance(step Step) bool {
	switch step {
	case Addresses:
		return d.filled(SenderName, SenderAddress, RecipientAddress, RecipientName)
	case Package:
		return d.filled(PackageDescription, PackageWeight)
	case Review:
		return d.CanAdvance(Addresses) && d.CanAdvance(Package)
	default:
		return false
	}
}

// Complete reports whether every gate is open, i.e. the draft can be confirmed.
func (d *Draft) Complete() bool {
	return d.CanAdvance(Review)
}

// Freeze copies the current values into an immutable Details.
func (d *Draft) Freeze() Details {
	return Details{
		SenderName:         d.values[SenderName],
		SenderAddress:      d.values[SenderAddress],
		SenderPhone:        d.values[SenderPhone],
		RecipientName:      d.values[RecipientName],
		RecipientAddress:   d.values[RecipientAddress],
		RecipientPhone:     d.values[RecipientPhone],
		PackageDescription: d.values[PackageDescription],
		PackageWeight:      d.values[PackageWeight],
		PackageDimensions:  d.values[PackageDimensions],
		Notes:              d.values[Notes],
	}
}

func (d *Draft) filled(fields ...Field) bool {
	for _, f := range fields {
		if strings.TrimSpace(d.values[f]) == "" {
			return false
		}
	}
	return true
}

// Details is a read-only copy of a draft.
type Details struct {
	SenderName         string `json:"senderName"`
	SenderAddress      string `json:"senderAddress"`
	SenderPhone        string `json:"senderPhone"`
	RecipientName      string `json:"recipientName"`
	RecipientAddress   string `json:"recipientAddress"`
	RecipientPhone     string `json:"recipientPhone"`
	PackageDescription string `json:"packageDescription"`
	PackageWeight      string `json:"packageWeight"`
	PackageDimensions  string `json:"packageDimensions"`
	Notes              string `json:"notes"`
}
