package model

import "errors"

var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("invalid password")

	ErrUnavailableUsername = errors.New("username unavailable")
	ErrUnavailableEmail    = errors.New("email address unavailable")
	ErrLoginFailed         = errors.New("invalid username and/or password")

	ErrGamerNotFound         = errors.New("gamer not found")
	ErrAdministratorNotFound = errors.New("administrator not found")
	ErrVideoGameNotFound     = errors.New("video game not found")
	ErrReservationNotFound   = errors.New("reservation not found")

	ErrInsufficientStock      = errors.New("insufficient video game quantity")
	ErrInsufficientCredits    = errors.New("insufficient credits")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrInvalidVideoGame       = errors.New("invalid video game")
	ErrDuplicateTitle         = errors.New("video game title already exists")
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
)
