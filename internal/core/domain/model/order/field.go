package order

import (
	"strings"

	"droneflow/internal/pkg/errs"
)

// Field names one text input of the draft.
type Field int

const (
	UnknownField Field = iota
	SenderName
	SenderAddress
	SenderPhone
	RecipientName
	RecipientAddress
	RecipientPhone
	PackageDescription
	PackageWeight
	PackageDimensions
	Notes

	fieldCount
)

var fieldNames = map[Field]string{
	SenderName:         "senderName",
	SenderAddress:      "senderAddress",
	SenderPhone:        "senderPhone",
	RecipientName:      "recipientName",
	RecipientAddress:   "recipientAddress",
	RecipientPhone:     "recipientPhone",
	PackageDescription: "packageDescription",
	PackageWeight:      "packageWeight",
	PackageDimensions:  "packageDimensions",
	Notes:              "notes",
}

// deliveryAddress is the name the creation form uses for the recipient address.
const deliveryAddressAlias = "deliveryaddress"

// Fields returns every valid field in declaration order.
func Fields() []Field {
	fields := make([]Field, 0, fieldCount-1)
	for f := SenderName; f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

// ParseField accepts the camelCase names case-insensitively, plus "deliveryAddress".
func ParseField(name string) (Field, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == deliveryAddressAlias {
		return RecipientAddress, nil
	}
	for f, n := range fieldNames {
		if strings.ToLower(n) == normalized {
			return f, nil
		}
	}
	return UnknownField, errs.NewValueIsInvalidError("field " + name)
}

func (f Field) Validate() error {
	if _, ok := fieldNames[f]; !ok {
		return errs.NewValueIsInvalidError("field")
	}
	return nil
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}
