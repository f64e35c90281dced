package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")
	ErrConflict        = errors.New("concurrent update conflict")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrRevokedToken               = errors.New("access token has been revoked")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInvalidStatus           = errors.New("unknown order status")
	ErrInvalidTransition       = errors.New("order status transition is not allowed")
	ErrPartnerInactive         = errors.New("delivery partner is not active")
	ErrPreconditionFailed      = errors.New("order has no partner assignment")
	ErrInvalidAmount           = errors.New("transaction amount must be positive")
	ErrInsufficientBalance     = errors.New("wallet balance is not enough")
	ErrTransactionImmutable    = errors.New("transaction is not pending, status can not change")
	ErrInvalidTransactionState = errors.New("unknown transaction status")
)
