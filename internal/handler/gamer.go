package handler

import (
	"net/http"

	"gamevault/internal/auth"
	"gamevault/internal/model"

	"github.com/gin-gonic/gin"
)

// Register
// @Summary Register a gamer
// @Description Creates a gamer account holding 100 credits
// @Tags gamer
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param registration body model.RegistrationRequest true "Registration details"
// @Success 201 {object} model.RegistrationResponse
// @Failure 400 {object} model.ErrorResponse "Invalid field"
// @Failure 409 {object} model.ErrorResponse "Username or email unavailable"
// @Router /gamer/registration [post]
func (h *Handler) Register(c *gin.Context) {
	var req model.RegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Please fill in all registration fields.")
		return
	}

	gamer, err := h.accounts.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, opRegistration, err)
		return
	}

	c.JSON(http.StatusCreated, model.RegistrationResponse{
		Message: "Registration successful. Please log in.",
		View:    "gamer-login",
		Gamer:   model.NewGamerResponse(gamer),
	})
}

// GamerLogin
// @Summary Log in as a gamer
// @Tags gamer
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} model.ErrorResponse "Invalid username and/or password"
// @Failure 429 {object} model.ErrorResponse "Too many attempts"
// @Router /gamer/login [post]
func (h *Handler) GamerLogin(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.handleError(c, opLogin, model.ErrLoginFailed)
		return
	}

	principal, err := h.accounts.AuthenticateGamer(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, opLogin, err)
		return
	}
	h.issueToken(c, principal)
}

func (h *Handler) issueToken(c *gin.Context, principal *model.Principal) {
	token, err := h.tokens.Issue(*principal)
	if err != nil {
		h.handleError(c, opLogin, err)
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Token:     token.Value,
		TokenType: "Bearer",
		ExpiresAt: model.FormatLedgerTime(token.ExpiresAt),
		Username:  principal.Username,
		Role:      principal.Role,
	})
}

// principal returns the authenticated caller, answering 401 when there is none
func (h *Handler) principal(c *gin.Context) (*model.Principal, bool) {
	p, ok := principalFrom(c)
	if !ok {
		h.handleError(c, opAccount, auth.ErrInvalidToken)
	}
	return p, ok
}

// GamerHome
// @Summary Gamer home
// @Description Returns the gamer's username, credits and the catalog
// @Tags gamer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.HomeResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /gamer/home [get]
func (h *Handler) GamerHome(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	gamer, err := h.accounts.GetGamer(c.Request.Context(), p.ID)
	if err != nil {
		h.handleError(c, opAccount, err)
		return
	}

	games, err := h.catalog.ListGames(c.Request.Context())
	if err != nil {
		h.handleError(c, opCatalog, err)
		return
	}

	c.JSON(http.StatusOK, model.HomeResponse{
		View:     "gamer-home",
		Gamer:    model.NewGamerResponse(gamer),
		Username: gamer.Username,
		Catalog:  model.NewCatalogResponse(games),
	})
}

// PurchaseHistory
// @Summary Purchase history
// @Description Purchases of the gamer, newest first
// @Tags gamer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.HistoryResponse
// @Router /gamer/purchases [get]
func (h *Handler) PurchaseHistory(c *gin.Context) {
	gamer, ok := h.loadGamer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, model.NewPurchaseHistoryResponse(gamer.PurchaseHistory))
}

// ReservationHistory
// @Summary Reservation history
// @Description Open reservations of the gamer, newest first
// @Tags gamer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.HistoryResponse
// @Router /gamer/reservations [get]
func (h *Handler) ReservationHistory(c *gin.Context) {
	gamer, ok := h.loadGamer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, model.NewReservationHistoryResponse(gamer.ReservationHistory))
}

// CancellationHistory
// @Summary Cancellation history
// @Tags gamer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.HistoryResponse
// @Router /gamer/cancellations [get]
func (h *Handler) CancellationHistory(c *gin.Context) {
	gamer, ok := h.loadGamer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, model.NewCancellationHistoryResponse(gamer.CancellationHistory))
}

func (h *Handler) loadGamer(c *gin.Context) (*model.Gamer, bool) {
	p, ok := h.principal(c)
	if !ok {
		return nil, false
	}

	gamer, err := h.accounts.GetGamer(c.Request.Context(), p.ID)
	if err != nil {
		h.handleError(c, opAccount, err)
		return nil, false
	}
	return gamer, true
}
