package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"gamevault/internal/auth"
	"gamevault/internal/config"
	"gamevault/internal/model"
	"gamevault/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testHandler struct {
	accounts    *mocks.AccountService
	catalog     *mocks.CatalogService
	marketplace *mocks.MarketplaceService
	tokens      *auth.TokenManager
	router      *gin.Engine
}

func newTestHandler(t *testing.T) *testHandler {
	gin.SetMode(gin.TestMode)
	th := &testHandler{
		accounts:    mocks.NewAccountService(t),
		catalog:     mocks.NewCatalogService(t),
		marketplace: mocks.NewMarketplaceService(t),
		tokens:      auth.NewTokenManager("test-secret", "gamevault", time.Hour),
	}
	h := NewHandler(th.accounts, th.catalog, th.marketplace, th.tokens, nil, config.RateLimitConfig{Enabled: true}, zerolog.Nop())
	th.router = h.SetupRoutes()
	return th
}

func (th *testHandler) token(t *testing.T, id int64, username string, role model.Role) string {
	tok, err := th.tokens.Issue(model.Principal{ID: id, Username: username, Role: role})
	require.NoError(t, err)
	return tok.Value
}

func (th *testHandler) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	th.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func samTan() *model.Gamer {
	g := model.NewGamer("Sam Tan", "samtan95", "samtan@gmail.com", "hash")
	g.ID = 1
	return g
}

func TestHandler_Views(t *testing.T) {
	th := newTestHandler(t)

	views := map[string]string{
		"/":                           "gamer-index",
		"/gamer/login":                "gamer-login",
		"/gamer/registration":         "gamer-registration",
		"/administrator":              "administrator-index",
		"/administrator/login":        "administrator-login",
		"/administrator/registration": "administrator-registration",
	}
	for path, view := range views {
		w := th.do(http.MethodGet, path, nil, "")

		assert.Equal(t, http.StatusOK, w.Code, path)
		var resp model.ViewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, view, resp.View)
	}
}

func TestHandler_Register_Success(t *testing.T) {
	th := newTestHandler(t)

	th.accounts.On("Register", mock.Anything, &model.RegistrationRequest{
		Name:     "Sam Tan",
		Username: "samtan95",
		Email:    "samtan@gmail.com",
		Password: "ZZZzzz12",
	}).Return(samTan(), nil)

	w := th.do(http.MethodPost, "/gamer/registration", model.RegistrationRequest{
		Name:     "Sam Tan",
		Username: "samtan95",
		Email:    "samtan@gmail.com",
		Password: "ZZZzzz12",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Registration successful. Please log in.", resp.Message)
	assert.Equal(t, "100.00", resp.Gamer.TotalCredits)
}

func TestHandler_Register_FormBody(t *testing.T) {
	th := newTestHandler(t)

	th.accounts.On("Register", mock.Anything, mock.MatchedBy(func(r *model.RegistrationRequest) bool {
		return r.Username == "alihassan1" && r.Email == "alihassan@gmail.com"
	})).Return(samTan(), nil)

	form := url.Values{
		"name":     {"Ali Hassan"},
		"username": {"alihassan1"},
		"email":    {"alihassan@gmail.com"},
		"password": {"ZZZzzz12"},
	}
	req, _ := http.NewRequest(http.MethodPost, "/gamer/registration", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	th.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Register_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid username", model.ErrInvalidUsername, http.StatusBadRequest, "Invalid username entered. Please enter a valid username."},
		{"invalid password", model.ErrInvalidPassword, http.StatusBadRequest, "Invalid password entered. Please enter a valid password."},
		{"username taken", model.ErrUnavailableUsername, http.StatusConflict, "Username entered is unavailable. Please enter another username."},
		{"email taken", model.ErrUnavailableEmail, http.StatusConflict, "Email address entered is unavailable. Please enter another email address."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.accounts.On("Register", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := th.do(http.MethodPost, "/gamer/registration", samTanRegistration(), "")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodeError(t, w).Error)
		})
	}
}

func samTanRegistration() model.RegistrationRequest {
	return model.RegistrationRequest{Name: "Sam Tan", Username: "samtan95", Email: "samtan@gmail.com", Password: "ZZZzzz12"}
}

func TestHandler_Register_MissingField(t *testing.T) {
	th := newTestHandler(t)

	w := th.do(http.MethodPost, "/gamer/registration", map[string]string{"name": "Sam Tan"}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_GamerLogin_Success(t *testing.T) {
	th := newTestHandler(t)

	th.accounts.On("AuthenticateGamer", mock.Anything, "samtan95", "ZZZzzz12").Return(&model.Principal{
		ID:       1,
		Username: "samtan95",
		Role:     model.RoleGamer,
	}, nil)

	w := th.do(http.MethodPost, "/gamer/login", model.LoginRequest{Username: "samtan95", Password: "ZZZzzz12"}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, model.RoleGamer, resp.Role)

	principal, err := th.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), principal.ID)
}

func TestHandler_GamerLogin_Failure(t *testing.T) {
	th := newTestHandler(t)

	th.accounts.On("AuthenticateGamer", mock.Anything, "samtan95", "wrong").Return(nil, model.ErrLoginFailed)

	w := th.do(http.MethodPost, "/gamer/login", model.LoginRequest{Username: "samtan95", Password: "wrong"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username and/or password. Please try again.", decodeError(t, w).Error)
}

func TestHandler_GamerHome_RequiresToken(t *testing.T) {
	th := newTestHandler(t)

	w := th.do(http.MethodGet, "/gamer/home", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, w).Code)

	w = th.do(http.MethodGet, "/gamer/home", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, w).Code)
}

func TestHandler_RoleIsEnforced(t *testing.T) {
	th := newTestHandler(t)

	adminToken := th.token(t, 1, "administrator", model.RoleAdministrator)
	gamerToken := th.token(t, 1, "samtan95", model.RoleGamer)

	w := th.do(http.MethodGet, "/gamer/home", nil, adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = th.do(http.MethodPost, "/administrator/games", model.AddGameRequest{Title: "FIFA 21", Creator: "EA Sports", Credits: "20"}, gamerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GamerHome(t *testing.T) {
	th := newTestHandler(t)

	th.accounts.On("GetGamer", mock.Anything, int64(1)).Return(samTan(), nil)
	th.catalog.On("ListGames", mock.Anything).Return([]*model.VideoGame{
		{ID: 1, Title: "FIFA 20", Creator: "EA Sports", Quantity: 15, Credits: decimal.NewFromInt(20)},
		{ID: 4, Title: "WWE 2K23", Creator: "Visual Concepts", Quantity: 0, Credits: decimal.NewFromInt(10)},
	}, nil)

	w := th.do(http.MethodGet, "/gamer/home", nil, th.token(t, 1, "samtan95", model.RoleGamer))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.HomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "gamer-home", resp.View)
	assert.Equal(t, "samtan95", resp.Username)
	assert.Equal(t, "100.00", resp.Gamer.TotalCredits)
	require.Len(t, resp.Catalog, 2)
	assert.Equal(t, 0, resp.Catalog[1].Quantity)
}

func TestHandler_ReservationHistory(t *testing.T) {
	th := newTestHandler(t)

	gamer := samTan()
	res := model.NewReservation(1, &model.VideoGame{ID: 1, Title: "FIFA 20", Creator: "EA Sports", Credits: decimal.NewFromInt(20)}, 2,
		time.Date(2026, 10, 18, 10, 15, 0, 0, time.UTC))
	res.ID = 5
	gamer.AppendHistory(res)

	th.accounts.On("GetGamer", mock.Anything, int64(1)).Return(gamer, nil)

	w := th.do(http.MethodGet, "/gamer/reservations", nil, th.token(t, 1, "samtan95", model.RoleGamer))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "reservation", resp.Kind)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "8.00", resp.Entries[0].CreditsPaid)
	assert.Equal(t, "20-10-2026 10:15:00", resp.Entries[0].LatestPurchaseDate)
}

func TestHandler_Buy_Success(t *testing.T) {
	th := newTestHandler(t)

	th.marketplace.On("Buy", mock.Anything, int64(1), int64(2), 3).Return(&model.TransactionResponse{
		Status:  "success",
		Message: "Successful purchase.",
		Balance: "64.00",
		Charged: "36.00",
	}, nil)

	w := th.do(http.MethodPost, "/gamer/buy", model.GameQuantityRequest{GameID: 2, Quantity: 3}, th.token(t, 1, "samtan95", model.RoleGamer))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Successful purchase.", resp.Message)
	assert.Equal(t, "64.00", resp.Balance)
}

func TestHandler_Buy_MissingGame(t *testing.T) {
	th := newTestHandler(t)

	w := th.do(http.MethodPost, "/gamer/buy", map[string]int{"quantity": 1}, th.token(t, 1, "samtan95", model.RoleGamer))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_MarketplaceFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		method  string
		body    interface{}
		err     error
		status  int
		message string
	}{
		{
			name: "purchase with insufficient stock", path: "/gamer/buy", method: "Buy",
			body: model.GameQuantityRequest{GameID: 1, Quantity: 2}, err: model.ErrInsufficientStock,
			status: http.StatusBadRequest, message: "Unsuccessful purchase - Insufficient video games available.",
		},
		{
			name: "purchase with insufficient credits", path: "/gamer/buy", method: "Buy",
			body: model.GameQuantityRequest{GameID: 1, Quantity: 2}, err: model.ErrInsufficientCredits,
			status: http.StatusBadRequest, message: "Unsuccessful purchase - Insufficient credits to purchase video games in quantity specified.",
		},
		{
			name: "purchase of unknown game", path: "/gamer/buy", method: "Buy",
			body: model.GameQuantityRequest{GameID: 1, Quantity: 2}, err: model.ErrVideoGameNotFound,
			status: http.StatusNotFound, message: "Unsuccessful purchase - Video Game specified is unavailable.",
		},
		{
			name: "reservation with insufficient credits", path: "/gamer/reserve", method: "Reserve",
			body: model.GameQuantityRequest{GameID: 1, Quantity: 2}, err: model.ErrInsufficientCredits,
			status: http.StatusBadRequest, message: "Unsuccessful reservation - Insufficient credits to purchase video games in quantity specified.",
		},
		{
			name: "cancel unknown reservation", path: "/gamer/reservations/cancel", method: "CancelReservation",
			body: model.ReservationRequest{ReservationID: 5}, err: model.ErrReservationNotFound,
			status: http.StatusNotFound, message: "Order to cancel cannot be found.",
		},
		{
			name: "buy reservation with insufficient credits", path: "/gamer/reservations/buy", method: "CompleteReservationPurchase",
			body: model.ReservationRequest{ReservationID: 5}, err: model.ErrInsufficientCredits,
			status: http.StatusBadRequest, message: "Unsuccessful purchase - Insufficient funds for payment of total payable credits.",
		},
		{
			name: "buy reservation whose game was removed", path: "/gamer/reservations/buy", method: "CompleteReservationPurchase",
			body: model.ReservationRequest{ReservationID: 5}, err: model.ErrVideoGameNotFound,
			status: http.StatusNotFound, message: "Unsuccessful purchase - Video Game in Reservation not found.",
		},
		{
			name: "unexpected failure", path: "/gamer/buy", method: "Buy",
			body: model.GameQuantityRequest{GameID: 1, Quantity: 2}, err: errors.New("connection refused"),
			status: http.StatusInternalServerError, message: "Unexpected error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.method == "Buy" || tt.method == "Reserve" {
				th.marketplace.On(tt.method, mock.Anything, int64(1), int64(1), 2).Return(nil, tt.err)
			} else {
				th.marketplace.On(tt.method, mock.Anything, int64(1), int64(5)).Return(nil, tt.err)
			}

			w := th.do(http.MethodPost, tt.path, tt.body, th.token(t, 1, "samtan95", model.RoleGamer))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodeError(t, w).Error)
		})
	}
}

func TestHandler_AdministratorLoginAndAddGame(t *testing.T) {
	th := newTestHandler(t)

	th.accounts.On("AuthenticateAdministrator", mock.Anything, "administrator", "AAAaaa11").Return(&model.Principal{
		ID:       1,
		Username: "administrator",
		Role:     model.RoleAdministrator,
	}, nil)
	th.catalog.On("AddGame", mock.Anything, mock.MatchedBy(func(r *model.AddGameRequest) bool {
		return r.Title == "FIFA 21"
	})).Return(&model.VideoGame{ID: 5, Title: "FIFA 21", Creator: "EA Sports", Quantity: 3, Credits: decimal.NewFromInt(25)}, nil)
	th.catalog.On("AddGame", mock.Anything, mock.MatchedBy(func(r *model.AddGameRequest) bool {
		return r.Title == "FIFA 20"
	})).Return(nil, model.ErrDuplicateTitle)

	w := th.do(http.MethodPost, "/administrator/login", model.LoginRequest{Username: "administrator", Password: "AAAaaa11"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = th.do(http.MethodPost, "/administrator/games", model.AddGameRequest{Title: "FIFA 21", Creator: "EA Sports", Quantity: 3, Credits: "25"}, login.Token)
	assert.Equal(t, http.StatusCreated, w.Code)
	var game model.VideoGameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &game))
	assert.Equal(t, "25.00", game.Credits)

	w = th.do(http.MethodPost, "/administrator/games", model.AddGameRequest{Title: "FIFA 20", Creator: "EA Sports", Quantity: 3, Credits: "25"}, login.Token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_TITLE", decodeError(t, w).Code)
}

func TestHandler_RegisterAdministrator(t *testing.T) {
	th := newTestHandler(t)
	adminToken := th.token(t, 1, "administrator", model.RoleAdministrator)

	req := model.RegistrationRequest{Name: "Second Admin", Username: "secondadmin", Email: "second@gamevault.com", Password: "AAAaaa11"}
	admin := model.NewAdministrator(req.Name, req.Username, req.Email, "hash")
	admin.ID = 2
	th.accounts.On("RegisterAdministrator", mock.Anything, &req).Return(admin, nil).Once()

	w := th.do(http.MethodPost, "/administrator/registration", req, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp model.AdministratorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.ID)
	assert.Equal(t, "secondadmin", resp.Username)

	th.accounts.On("RegisterAdministrator", mock.Anything, &req).Return(nil, model.ErrUnavailableUsername).Once()
	w = th.do(http.MethodPost, "/administrator/registration", req, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	gamerToken := th.token(t, 1, "samtan95", model.RoleGamer)
	w = th.do(http.MethodPost, "/administrator/registration", req, gamerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
