package handler

import (
	"net/http"

	"gamevault/internal/model"

	"github.com/gin-gonic/gin"
)

// Buy
// @Summary Buy video games
// @Description Debits the full cost and decrements stock
// @Tags marketplace
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param order body model.GameQuantityRequest true "Video game and quantity"
// @Success 201 {object} model.TransactionResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient stock or credits"
// @Failure 404 {object} model.ErrorResponse "Video game unavailable"
// @Router /gamer/buy [post]
func (h *Handler) Buy(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	var req model.GameQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Please select a video game and a quantity.")
		return
	}

	resp, err := h.marketplace.Buy(c.Request.Context(), p.ID, req.GameID, req.Quantity)
	if err != nil {
		h.handleError(c, opPurchase, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Reserve
// @Summary Reserve video games
// @Description Debits a 20% deposit and holds the units for 48 hours
// @Tags marketplace
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param order body model.GameQuantityRequest true "Video game and quantity"
// @Success 201 {object} model.TransactionResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient stock or credits"
// @Failure 404 {object} model.ErrorResponse "Video game unavailable"
// @Router /gamer/reserve [post]
func (h *Handler) Reserve(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	var req model.GameQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Please select a video game and a quantity.")
		return
	}

	resp, err := h.marketplace.Reserve(c.Request.Context(), p.ID, req.GameID, req.Quantity)
	if err != nil {
		h.handleError(c, opReservation, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CancelReservation
// @Summary Cancel a reservation
// @Description Returns the reserved units to stock. The deposit is not refunded.
// @Tags marketplace
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param reservation body model.ReservationRequest true "Reservation"
// @Success 200 {object} model.TransactionResponse
// @Failure 404 {object} model.ErrorResponse "Order to cancel cannot be found"
// @Router /gamer/reservations/cancel [post]
func (h *Handler) CancelReservation(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	var req model.ReservationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Please select a reservation.")
		return
	}

	resp, err := h.marketplace.CancelReservation(c.Request.Context(), p.ID, req.ReservationID)
	if err != nil {
		h.handleError(c, opCancellation, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuyReservation
// @Summary Buy a reserved order
// @Description Debits the remaining 80% at the current price and removes the reservation
// @Tags marketplace
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param reservation body model.ReservationRequest true "Reservation"
// @Success 201 {object} model.TransactionResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient credits"
// @Failure 404 {object} model.ErrorResponse "Reservation or video game not found"
// @Router /gamer/reservations/buy [post]
func (h *Handler) BuyReservation(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	var req model.ReservationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Please select a reservation.")
		return
	}

	resp, err := h.marketplace.CompleteReservationPurchase(c.Request.Context(), p.ID, req.ReservationID)
	if err != nil {
		h.handleError(c, opReservationPurchase, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
