package customer

import "errors"

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerCodeExists  = errors.New("customer code already exists")
	ErrCustomerHasBots     = errors.New("customer still owns subscriptions")
	ErrInvalidCustomerCode = errors.New("invalid customer code")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
