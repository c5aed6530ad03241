package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState       = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrStoreNotFound      = NewDomainError("STORE_NOT_FOUND", "No store matches the requested identifier")
	ErrInvalidQuantity    = NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	ErrInsufficientStock  = NewDomainError("INSUFFICIENT_STOCK", "Requested quantity exceeds available stock")
	ErrCartCorruptState   = NewDomainError("CART_CORRUPT_STATE", "Persisted cart data could not be read")
	ErrCartStorageFailure = NewDomainError("CART_PERSISTENCE_UNAVAILABLE", "Cart storage is unavailable")
)
