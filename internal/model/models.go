package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Person holds the identity fields shared by every account variant.
type Person struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Gamer struct {
	Person
	TotalCredits decimal.Decimal `json:"total_credits"`
	Version      int             `json:"version"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Newest first. Views over ledger rows owned by this gamer.
	PurchaseHistory     []*Purchase     `json:"purchase_history"`
	ReservationHistory  []*Reservation  `json:"reservation_history"`
	CancellationHistory []*Cancellation `json:"cancellation_history"`
}

func NewGamer(name, username, email, passwordHash string) *Gamer {
	return &Gamer{
		Person: Person{
			Name:         name,
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         RoleGamer,
		},
		TotalCredits:        InitialCredits,
		PurchaseHistory:     []*Purchase{},
		ReservationHistory:  []*Reservation{},
		CancellationHistory: []*Cancellation{},
	}
}

// AppendHistory puts the record at the front of the history matching its kind.
func (g *Gamer) AppendHistory(rec LedgerRecord) {
	switch r := rec.(type) {
	case *Purchase:
		g.PurchaseHistory = append([]*Purchase{r}, g.PurchaseHistory...)
	case *Reservation:
		g.ReservationHistory = append([]*Reservation{r}, g.ReservationHistory...)
	case *Cancellation:
		g.CancellationHistory = append([]*Cancellation{r}, g.CancellationHistory...)
	}
}

// RemoveReservation drops the reservation with the given id and reports whether it was present.
func (g *Gamer) RemoveReservation(id int64) bool {
	for i, r := range g.ReservationHistory {
		if r.ID == id {
			g.ReservationHistory = append(g.ReservationHistory[:i:i], g.ReservationHistory[i+1:]...)
			return true
		}
	}
	return false
}

type Administrator struct {
	Person
}

func NewAdministrator(name, username, email, passwordHash string) *Administrator {
	return &Administrator{
		Person: Person{
			Name:         name,
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         RoleAdministrator,
		},
	}
}

type VideoGame struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Creator           string          `json:"creator"`
	YearOfPublication int             `json:"year_of_publication"`
	Quantity          int             `json:"quantity"`
	Credits           decimal.Decimal `json:"credits"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Principal is the authenticated identity handed to every gamer or administrator operation.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
