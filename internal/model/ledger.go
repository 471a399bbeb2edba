package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRecord is implemented by every ledger fact: *Purchase, *Reservation and *Cancellation.
type LedgerRecord interface {
	Entry() *LedgerEntry
	Kind() TransactionKind
}

// LedgerEntry holds the fields common to all ledger facts. Title and Creator
// are snapshots taken when the fact was recorded.
type LedgerEntry struct {
	ID          int64           `json:"id"`
	GamerID     int64           `json:"gamer_id"`
	VideoGameID int64           `json:"video_game_id"`
	Title       string          `json:"title"`
	Creator     string          `json:"creator"`
	Quantity    int             `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
	CreatedAt   time.Time       `json:"transaction_date_time"`
}

func newLedgerEntry(gamerID int64, game *VideoGame, qty int, now time.Time) LedgerEntry {
	return LedgerEntry{
		GamerID:     gamerID,
		VideoGameID: game.ID,
		Title:       game.Title,
		Creator:     game.Creator,
		Quantity:    qty,
		Cost:        RoundCredits(game.Credits.Mul(decimal.NewFromInt(int64(qty)))),
		CreatedAt:   now,
	}
}

// UnitPrice derives the per-unit price from the recorded cost.
func (e *LedgerEntry) UnitPrice() decimal.Decimal {
	if e.Quantity <= 0 {
		return e.Cost
	}
	return RoundCredits(e.Cost.Div(decimal.NewFromInt(int64(e.Quantity))))
}

type Purchase struct {
	LedgerEntry
}

func NewPurchase(gamerID int64, game *VideoGame, qty int, now time.Time) *Purchase {
	return &Purchase{LedgerEntry: newLedgerEntry(gamerID, game, qty, now)}
}

func (p *Purchase) Entry() *LedgerEntry   { return &p.LedgerEntry }
func (p *Purchase) Kind() TransactionKind { return KindPurchase }

type Reservation struct {
	LedgerEntry
	CreditsPaid        decimal.Decimal `json:"credits_paid"`
	CreditsToPay       decimal.Decimal `json:"credits_to_pay"`
	LatestPurchaseDate time.Time       `json:"latest_purchase_date"`
}

// NewReservation splits the cost into the deposit paid now and the remainder
// due before LatestPurchaseDate.
func NewReservation(gamerID int64, game *VideoGame, qty int, now time.Time) *Reservation {
	entry := newLedgerEntry(gamerID, game, qty, now)
	paid := RoundCredits(entry.Cost.Mul(ReservationDepositRate))
	return &Reservation{
		LedgerEntry:        entry,
		CreditsPaid:        paid,
		CreditsToPay:       RoundCredits(entry.Cost.Sub(paid)),
		LatestPurchaseDate: now.Add(ReservationHoldPeriod),
	}
}

func (r *Reservation) Entry() *LedgerEntry   { return &r.LedgerEntry }
func (r *Reservation) Kind() TransactionKind { return KindReservation }

// Expired reports whether the purchase window closed before now.
func (r *Reservation) Expired(now time.Time) bool {
	return now.After(r.LatestPurchaseDate)
}

type Cancellation struct {
	LedgerEntry
	ReservationID      int64           `json:"reservation_id"`
	CreditsPaid        decimal.Decimal `json:"credits_paid"`
	CreditsToPay       decimal.Decimal `json:"credits_to_pay"`
	LatestPurchaseDate time.Time       `json:"latest_purchase_date"`
	CancelledAt        time.Time       `json:"date_of_cancellation"`
	Reason             string          `json:"reason_of_cancellation"`
}

// NewCancellation snapshots the financial fields of the reservation being cancelled.
func NewCancellation(res *Reservation, reason string, now time.Time) *Cancellation {
	entry := res.LedgerEntry
	entry.ID = 0
	entry.CreatedAt = now
	return &Cancellation{
		LedgerEntry:        entry,
		ReservationID:      res.ID,
		CreditsPaid:        res.CreditsPaid,
		CreditsToPay:       res.CreditsToPay,
		LatestPurchaseDate: res.LatestPurchaseDate,
		CancelledAt:        now,
		Reason:             reason,
	}
}

func (c *Cancellation) Entry() *LedgerEntry   { return &c.LedgerEntry }
func (c *Cancellation) Kind() TransactionKind { return KindCancellation }

// LedgerEvent is published once a ledger fact has been committed.
type LedgerEvent struct {
	Kind        TransactionKind `json:"kind"`
	EntryID     int64           `json:"entry_id"`
	GamerID     int64           `json:"gamer_id"`
	VideoGameID int64           `json:"video_game_id"`
	Title       string          `json:"title"`
	Quantity    int             `json:"quantity"`
	Cost        string          `json:"cost"`
	Charged     string          `json:"charged"`
	Balance     string          `json:"balance"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

func NewLedgerEvent(rec LedgerRecord, charged, balance decimal.Decimal) LedgerEvent {
	e := rec.Entry()
	return LedgerEvent{
		Kind:        rec.Kind(),
		EntryID:     e.ID,
		GamerID:     e.GamerID,
		VideoGameID: e.VideoGameID,
		Title:       e.Title,
		Quantity:    e.Quantity,
		Cost:        e.Cost.StringFixed(2),
		Charged:     charged.StringFixed(2),
		Balance:     balance.StringFixed(2),
		OccurredAt:  e.CreatedAt,
	}
}
