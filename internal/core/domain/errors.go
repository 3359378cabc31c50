package domain

import "errors"

var ErrDuplicateHandle = errors.New("handle already registered")
var ErrMissingField = errors.New("required field missing")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRate = errors.New("hourly rate must be a positive number")
var ErrUnknownSlot = errors.New("unknown time slot")
var ErrSlotUnavailable = errors.New("slot not available")

var ErrForbidden = errors.New("access forbidden")
var ErrUnknownRole = errors.New("unknown role")
var ErrIdentityNotFound = errors.New("identity not found")
var ErrFacilityNotFound = errors.New("facility not found")
var ErrUnauthenticated = errors.New("session invalid or expired")
