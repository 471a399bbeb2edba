package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 10, 15, 0, 0, time.UTC)

func fifa() *VideoGame {
	return &VideoGame{ID: 1, Title: "FIFA 20", Creator: "EA Sports", Quantity: 15, Credits: decimal.NewFromInt(20)}
}

func TestNewGamer_StartsWithInitialCredits(t *testing.T) {
	g := NewGamer("Sam Tan", "samtan95", "samtan@gmail.com", "hash")

	assert.Equal(t, "100.00", g.TotalCredits.StringFixed(2))
	assert.Equal(t, RoleGamer, g.Role)
	assert.Empty(t, g.PurchaseHistory)
	assert.Empty(t, g.ReservationHistory)
	assert.Empty(t, g.CancellationHistory)
}

func TestNewReservation_DepositSplit(t *testing.T) {
	r := NewReservation(1, fifa(), 2, fixedNow)

	assert.Equal(t, "40.00", r.Cost.StringFixed(2))
	assert.Equal(t, "8.00", r.CreditsPaid.StringFixed(2))
	assert.Equal(t, "32.00", r.CreditsToPay.StringFixed(2))
	assert.True(t, r.CreditsPaid.Add(r.CreditsToPay).Equal(r.Cost))
	assert.Equal(t, KindReservation, r.Kind())
}

func TestNewReservation_SplitRoundsToCost(t *testing.T) {
	game := &VideoGame{ID: 2, Title: "Odd", Creator: "Someone", Quantity: 5, Credits: decimal.RequireFromString("3.33")}

	r := NewReservation(1, game, 1, fixedNow)

	assert.Equal(t, "0.67", r.CreditsPaid.StringFixed(2))
	assert.Equal(t, "2.66", r.CreditsToPay.StringFixed(2))
	diff := r.CreditsPaid.Add(r.CreditsToPay).Sub(r.Cost).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")))
}

func TestNewReservation_LatestPurchaseDateIs48HoursLater(t *testing.T) {
	r := NewReservation(1, fifa(), 1, fixedNow)

	assert.Equal(t, fixedNow.Add(48*time.Hour), r.LatestPurchaseDate)
	assert.False(t, r.Expired(fixedNow.Add(48*time.Hour)))
	assert.True(t, r.Expired(fixedNow.Add(48*time.Hour+time.Second)))
}

func TestNewCancellation_SnapshotsReservation(t *testing.T) {
	r := NewReservation(1, fifa(), 2, fixedNow)
	r.ID = 9
	later := fixedNow.Add(time.Hour)

	c := NewCancellation(r, ManualCancellationReason, later)

	assert.Equal(t, int64(9), c.ReservationID)
	assert.Equal(t, int64(0), c.ID)
	assert.Equal(t, r.Title, c.Title)
	assert.True(t, c.CreditsPaid.Equal(r.CreditsPaid))
	assert.True(t, c.CreditsToPay.Equal(r.CreditsToPay))
	assert.Equal(t, r.LatestPurchaseDate, c.LatestPurchaseDate)
	assert.Equal(t, later, c.CancelledAt)
	assert.Equal(t, "Manual Cancellation", c.Reason)
}

func TestTransactionCost(t *testing.T) {
	unit := decimal.NewFromInt(20)

	cost, err := TransactionCost(unit, 2, KindPurchase)
	require.NoError(t, err)
	assert.Equal(t, "40.00", cost.StringFixed(2))

	cost, err = TransactionCost(unit, 2, KindReservation)
	require.NoError(t, err)
	assert.Equal(t, "40.00", cost.StringFixed(2))

	cost, err = TransactionCost(unit, 2, KindCompleteReservationPurchase)
	require.NoError(t, err)
	assert.Equal(t, "32.00", cost.StringFixed(2))

	_, err = TransactionCost(unit, 2, KindCancellation)
	assert.ErrorIs(t, err, ErrInvalidTransactionKind)
}

func TestRoundCredits_HalfUp(t *testing.T) {
	assert.Equal(t, "0.13", RoundCredits(decimal.RequireFromString("0.125")).StringFixed(2))
	assert.Equal(t, "59.99", RoundCredits(decimal.RequireFromString("59.994")).StringFixed(2))
}

func TestGamer_AppendHistory_NewestFirst(t *testing.T) {
	g := NewGamer("Sam Tan", "samtan95", "samtan@gmail.com", "hash")
	first := NewPurchase(1, fifa(), 1, fixedNow)
	second := NewPurchase(1, fifa(), 2, fixedNow.Add(time.Minute))

	g.AppendHistory(first)
	g.AppendHistory(second)
	g.AppendHistory(NewReservation(1, fifa(), 1, fixedNow))

	require.Len(t, g.PurchaseHistory, 2)
	assert.Same(t, second, g.PurchaseHistory[0])
	assert.Same(t, first, g.PurchaseHistory[1])
	assert.Len(t, g.ReservationHistory, 1)
	assert.Empty(t, g.CancellationHistory)
}

func TestGamer_RemoveReservation(t *testing.T) {
	g := NewGamer("Sam Tan", "samtan95", "samtan@gmail.com", "hash")
	a := NewReservation(1, fifa(), 1, fixedNow)
	a.ID = 1
	b := NewReservation(1, fifa(), 1, fixedNow)
	b.ID = 2
	g.AppendHistory(a)
	g.AppendHistory(b)

	assert.True(t, g.RemoveReservation(1))
	assert.False(t, g.RemoveReservation(1))
	require.Len(t, g.ReservationHistory, 1)
	assert.Equal(t, int64(2), g.ReservationHistory[0].ID)
}

func TestFormatLedgerTime(t *testing.T) {
	assert.Equal(t, "18-10-2026 10:15:00", FormatLedgerTime(fixedNow))
	assert.Equal(t, "", FormatLedgerTime(time.Time{}))
}

func TestNewLedgerEntryResponse_Reservation(t *testing.T) {
	r := NewReservation(1, fifa(), 2, fixedNow)

	resp := NewLedgerEntryResponse(r)

	assert.Equal(t, "reservation", resp.Kind)
	assert.Equal(t, "40.00", resp.Cost)
	assert.Equal(t, "8.00", resp.CreditsPaid)
	assert.Equal(t, "32.00", resp.CreditsToPay)
	assert.Equal(t, "20-10-2026 10:15:00", resp.LatestPurchaseDate)
	assert.Equal(t, "18-10-2026 10:15:00", resp.TransactionDateTime)
}
