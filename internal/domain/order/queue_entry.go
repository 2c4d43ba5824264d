package order

import (
	"strconv"

	"voucher-seckill/internal/pkg/errs"
)

// Stream field names written by the admission script.
const (
	FieldOrderID   = "id"
	FieldUserID    = "userId"
	FieldVoucherID = "voucherId"
)

// QueueEntry is one accepted admission waiting to be materialized.
type QueueEntry struct {
	OrderID   int64
	UserID    int64
	VoucherID int64
}

func (e QueueEntry) Validate() error {
	if e.OrderID <= 0 {
		return ErrInvalidOrderID
	}
	if e.UserID <= 0 {
		return ErrInvalidUserID
	}
	if e.VoucherID <= 0 {
		return errs.Wrap(errs.ErrDomainValidation, "voucher id must be positive")
	}
	return nil
}

// ParseQueueEntry decodes stream fields. Failures are marked errs.ErrMalformedEntry
// since such an entry can never be materialized.
func ParseQueueEntry(values map[string]any) (QueueEntry, error) {
	orderID, err := int64Field(values, FieldOrderID)
	if err != nil {
		return QueueEntry{}, err
	}
	userID, err := int64Field(values, FieldUserID)
	if err != nil {
		return QueueEntry{}, err
	}
	voucherID, err := int64Field(values, FieldVoucherID)
	if err != nil {
		return QueueEntry{}, err
	}

	entry := QueueEntry{OrderID: orderID, UserID: userID, VoucherID: voucherID}
	if err := entry.Validate(); err != nil {
		return QueueEntry{}, errs.Mark(err, errs.ErrMalformedEntry)
	}
	return entry, nil
}

func int64Field(values map[string]any, key string) (int64, error) {
	raw, ok := values[key]
	if !ok {
		return 0, errs.Wrapf(errs.ErrMalformedEntry, "missing field %q", key)
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		return v, nil
	default:
		return 0, errs.Wrapf(errs.ErrMalformedEntry, "field %q has type %T", key, raw)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "field %q", key), errs.ErrMalformedEntry)
	}
	return n, nil
}
