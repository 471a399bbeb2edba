package model

type RegistrationRequest struct {
	Name     string `json:"name" form:"name" binding:"required" example:"Sam Tan"`
	Username string `json:"username" form:"username" binding:"required" example:"samtan95"`
	Email    string `json:"email" form:"email" binding:"required" example:"samtan@gmail.com"`
	Password string `json:"password" form:"password" binding:"required" example:"ZZZzzz12"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required" example:"samtan95"`
	Password string `json:"password" form:"password" binding:"required" example:"ZZZzzz12"`
}

type GameQuantityRequest struct {
	GameID   int64 `json:"gameId" form:"gameId" binding:"required" example:"1"`
	Quantity int   `json:"quantity" form:"quantity" example:"2"`
}

type ReservationRequest struct {
	ReservationID int64 `json:"reservationId" form:"reservationId" binding:"required" example:"1"`
}

type AddGameRequest struct {
	Title             string `json:"title" form:"title" binding:"required" example:"FIFA 20"`
	Creator           string `json:"creator" form:"creator" binding:"required" example:"EA Sports"`
	YearOfPublication int    `json:"yearOfPublication" form:"yearOfPublication" example:"2019"`
	Quantity          int    `json:"quantity" form:"quantity" example:"15"`
	Credits           string `json:"credits" form:"credits" binding:"required" example:"20.00"`
}

type ViewResponse struct {
	View string `json:"view" example:"gamer-index"`
}

type RegistrationResponse struct {
	Message string         `json:"message" example:"Registration successful. Please log in."`
	View    string         `json:"view" example:"gamer-login"`
	Gamer   *GamerResponse `json:"gamer"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type" example:"Bearer"`
	ExpiresAt string `json:"expires_at" example:"20-10-2026 12:00:00"`
	Username  string `json:"username" example:"samtan95"`
	Role      Role   `json:"role" example:"GAMER"`
}

type GamerResponse struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"name" example:"Sam Tan"`
	Username     string `json:"username" example:"samtan95"`
	Email        string `json:"email" example:"samtan@gmail.com"`
	TotalCredits string `json:"totalCredits" example:"100.00"`
}

type AdministratorResponse struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Site Admin"`
	Username string `json:"username" example:"administrator"`
	Email    string `json:"email" example:"admin@gamevault.com"`
}

type VideoGameResponse struct {
	ID                int64  `json:"id" example:"1"`
	Title             string `json:"title" example:"FIFA 20"`
	Creator           string `json:"creator" example:"EA Sports"`
	YearOfPublication int    `json:"yearOfPublication" example:"2019"`
	Quantity          int    `json:"quantity" example:"15"`
	Credits           string `json:"credits" example:"20.00"`
}

type LedgerEntryResponse struct {
	ID                  int64  `json:"id" example:"1"`
	Kind                string `json:"kind" example:"purchase"`
	VideoGameID         int64  `json:"videoGameId" example:"1"`
	Title               string `json:"title" example:"FIFA 20"`
	Creator             string `json:"creator" example:"EA Sports"`
	Quantity            int    `json:"quantity" example:"2"`
	Cost                string `json:"cost" example:"40.00"`
	TransactionDateTime string `json:"transactionDateTime" example:"18-10-2026 10:15:00"`

	// Reservation and cancellation fields.
	ReservationID        int64  `json:"reservationId,omitempty"`
	CreditsPaid          string `json:"creditsPaid,omitempty" example:"8.00"`
	CreditsToPay         string `json:"creditsToPay,omitempty" example:"32.00"`
	LatestPurchaseDate   string `json:"latestPurchaseDate,omitempty" example:"20-10-2026 10:15:00"`
	DateOfCancellation   string `json:"dateOfCancellation,omitempty"`
	ReasonOfCancellation string `json:"reasonOfCancellation,omitempty" example:"Manual Cancellation"`
}

type TransactionResponse struct {
	Status  string               `json:"status" example:"success"`
	Message string               `json:"message" example:"Purchase successful."`
	Balance string               `json:"balance" example:"60.00"`
	Charged string               `json:"charged" example:"40.00"`
	Entry   *LedgerEntryResponse `json:"entry"`
}

type HomeResponse struct {
	View     string               `json:"view" example:"gamer-home"`
	Gamer    *GamerResponse       `json:"gamer,omitempty"`
	Username string               `json:"username,omitempty" example:"samtan95"`
	Catalog  []*VideoGameResponse `json:"catalog"`
}

type HistoryResponse struct {
	Kind    string                 `json:"kind" example:"purchase"`
	Entries []*LedgerEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Unsuccessful purchase - Insufficient credits."`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_CREDITS"`
	Details string `json:"details,omitempty"`
}

func NewGamerResponse(g *Gamer) *GamerResponse {
	return &GamerResponse{
		ID:           g.ID,
		Name:         g.Name,
		Username:     g.Username,
		Email:        g.Email,
		TotalCredits: g.TotalCredits.StringFixed(2),
	}
}

func NewAdministratorResponse(a *Administrator) *AdministratorResponse {
	return &AdministratorResponse{
		ID:       a.ID,
		Name:     a.Name,
		Username: a.Username,
		Email:    a.Email,
	}
}

func NewVideoGameResponse(v *VideoGame) *VideoGameResponse {
	return &VideoGameResponse{
		ID:                v.ID,
		Title:             v.Title,
		Creator:           v.Creator,
		YearOfPublication: v.YearOfPublication,
		Quantity:          v.Quantity,
		Credits:           v.Credits.StringFixed(2),
	}
}

func NewCatalogResponse(games []*VideoGame) []*VideoGameResponse {
	out := make([]*VideoGameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, NewVideoGameResponse(g))
	}
	return out
}

// NewLedgerEntryResponse renders any ledger record for the wire.
func NewLedgerEntryResponse(rec LedgerRecord) *LedgerEntryResponse {
	e := rec.Entry()
	resp := &LedgerEntryResponse{
		ID:                  e.ID,
		Kind:                rec.Kind().String(),
		VideoGameID:         e.VideoGameID,
		Title:               e.Title,
		Creator:             e.Creator,
		Quantity:            e.Quantity,
		Cost:                e.Cost.StringFixed(2),
		TransactionDateTime: FormatLedgerTime(e.CreatedAt),
	}

	switch r := rec.(type) {
	case *Reservation:
		resp.CreditsPaid = r.CreditsPaid.StringFixed(2)
		resp.CreditsToPay = r.CreditsToPay.StringFixed(2)
		resp.LatestPurchaseDate = FormatLedgerTime(r.LatestPurchaseDate)
	case *Cancellation:
		resp.ReservationID = r.ReservationID
		resp.CreditsPaid = r.CreditsPaid.StringFixed(2)
		resp.CreditsToPay = r.CreditsToPay.StringFixed(2)
		resp.LatestPurchaseDate = FormatLedgerTime(r.LatestPurchaseDate)
		resp.DateOfCancellation = FormatLedgerTime(r.CancelledAt)
		resp.ReasonOfCancellation = r.Reason
	}
	return resp
}

func NewPurchaseHistoryResponse(records []*Purchase) *HistoryResponse {
	entries := make([]*LedgerEntryResponse, 0, len(records))
	for _, r := range records {
		entries = append(entries, NewLedgerEntryResponse(r))
	}
	return &HistoryResponse{Kind: KindPurchase.String(), Entries: entries, Total: len(entries)}
}

func NewReservationHistoryResponse(records []*Reservation) *HistoryResponse {
	entries := make([]*LedgerEntryResponse, 0, len(records))
	for _, r := range records {
		entries = append(entries, NewLedgerEntryResponse(r))
	}
	return &HistoryResponse{Kind: KindReservation.String(), Entries: entries, Total: len(entries)}
}

func NewCancellationHistoryResponse(records []*Cancellation) *HistoryResponse {
	entries := make([]*LedgerEntryResponse, 0, len(records))
	for _, r := range records {
		entries = append(entries, NewLedgerEntryResponse(r))
	}
	return &HistoryResponse{Kind: KindCancellation.String(), Entries: entries, Total: len(entries)}
}
