package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials or tokens.
// Login and refresh failures collapse into this single error so the HTTP layer
// cannot leak whether an account exists.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user lacks the required role.
var ErrForbidden = errors.New("forbidden")
