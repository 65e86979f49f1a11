package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyCustomerID   = "customer_id"
	ContextKeyCustomerRole = "customer_role"
	ContextKeyRequestID    = "request_id"

	// Database table names
	TableCustomers     = "customers"
	TableSubscriptions = "subscriptions"
	TableRenewals      = "renewals"
)
