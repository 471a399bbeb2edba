package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleGamer         Role = "GAMER"
	RoleAdministrator Role = "ADMINISTRATOR"
)

func (r Role) String() string {
	return string(r)
}

// TransactionKind selects the cost formula and the stock rule of a ledger operation.
type TransactionKind string

const (
	KindPurchase                    TransactionKind = "purchase"
	KindReservation                 TransactionKind = "reservation"
	KindCompleteReservationPurchase TransactionKind = "complete_reservation_purchase"
	KindCancellation                TransactionKind = "cancellation"
)

func (k TransactionKind) String() string {
	return string(k)
}

const (
	ManualCancellationReason  = "Manual Cancellation"
	ExpiredCancellationReason = "Reservation Expired"

	// LedgerTimeLayout renders ledger timestamps as dd-MM-yyyy HH:mm:ss.
	LedgerTimeLayout = "02-01-2006 15:04:05"

	ReservationHoldPeriod = 48 * time.Hour
)

var (
	InitialCredits = decimal.NewFromInt(100)

	// ReservationDepositRate is the share of the reservation cost debited when
	// the reservation is made. The rest is debited when it is converted to a purchase.
	ReservationDepositRate = decimal.RequireFromString("0.2")
)

// TransactionCost returns what a gamer is charged for qty units at unitPrice.
func TransactionCost(unitPrice decimal.Decimal, qty int, kind TransactionKind) (decimal.Decimal, error) {
	total := unitPrice.Mul(decimal.NewFromInt(int64(qty)))
	switch kind {
	case KindPurchase, KindReservation:
		return total, nil
	case KindCompleteReservationPurchase:
		return decimal.NewFromInt(1).Sub(ReservationDepositRate).Mul(total), nil
	default:
		return decimal.Zero, ErrInvalidTransactionKind
	}
}

// RoundCredits rounds half-up to two decimal places.
func RoundCredits(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func FormatLedgerTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LedgerTimeLayout)
}
