package handler

import (
	"net/http"

	"gamevault/internal/model"

	"github.com/gin-gonic/gin"
)

// AdministratorLogin
// @Summary Log in as an administrator
// @Tags administrator
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} model.ErrorResponse "Invalid username and/or password"
// @Failure 429 {object} model.ErrorResponse "Too many attempts"
// @Router /administrator/login [post]
func (h *Handler) AdministratorLogin(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.handleError(c, opLogin, model.ErrLoginFailed)
		return
	}

	principal, err := h.accounts.AuthenticateAdministrator(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, opLogin, err)
		return
	}
	h.issueToken(c, principal)
}

// AdministratorHome
// @Summary Administrator home
// @Tags administrator
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.HomeResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /administrator/home [get]
func (h *Handler) AdministratorHome(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}

	games, err := h.catalog.ListGames(c.Request.Context())
	if err != nil {
		h.handleError(c, opCatalog, err)
		return
	}

	c.JSON(http.StatusOK, model.HomeResponse{
		View:     "administrator-home",
		Username: p.Username,
		Catalog:  model.NewCatalogResponse(games),
	})
}

// AddGame
// @Summary Add a video game to the catalog
// @Tags administrator
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param game body model.AddGameRequest true "Video game"
// @Success 201 {object} model.VideoGameResponse
// @Failure 400 {object} model.ErrorResponse "Invalid video game"
// @Failure 409 {object} model.ErrorResponse "Title already in the catalog"
// @Router /administrator/games [post]
func (h *Handler) AddGame(c *gin.Context) {
	var req model.AddGameRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Please fill in the title, creator and credits.")
		return
	}

	game, err := h.catalog.AddGame(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, opCatalog, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewVideoGameResponse(game))
}

// RegisterAdministrator
// @Summary Register another administrator
// @Description Only an authenticated administrator can create administrator accounts
// @Tags administrator
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param registration body model.RegistrationRequest true "Registration details"
// @Success 201 {object} model.AdministratorResponse
// @Failure 400 {object} model.ErrorResponse "Invalid field"
// @Failure 409 {object} model.ErrorResponse "Username or email unavailable"
// @Router /administrator/registration [post]
func (h *Handler) RegisterAdministrator(c *gin.Context) {
	var req model.RegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Please fill in all registration fields.")
		return
	}

	admin, err := h.accounts.RegisterAdministrator(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, opRegistration, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewAdministratorResponse(admin))
}
