package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidFormat        = "INVALID_FORMAT"
	ErrCodeNotANumber           = "NOT_A_NUMBER"
	ErrCodeNegativePoints       = "NEGATIVE_POINTS"
	ErrCodeInsufficientBalance  = "INSUFFICIENT_BALANCE"
	ErrCodeDiscountExceedsPrice = "DISCOUNT_EXCEEDS_PRICE"
	ErrCodeAlreadyRegistered    = "ALREADY_REGISTERED"
	ErrCodeCustomerNotFound     = "CUSTOMER_NOT_FOUND"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation that is recovered at the request
// boundary and surfaced to the user; it never indicates an infrastructure
// failure and never mutates state.
type DomainError struct {
	Code    string
	Message string
}

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
	ErrInvalidIdentity      = NewDomainError(ErrCodeInvalidFormat, "Identity number must be 6 to 12 digits")
	ErrInvalidDisplayName   = NewDomainError(ErrCodeInvalidFormat, "Name must be 3 to 50 letters and spaces")
	ErrPointsNotANumber     = NewDomainError(ErrCodeNotANumber, "Points to use must be a whole number")
	ErrNegativePoints       = NewDomainError(ErrCodeNegativePoints, "Points to use cannot be negative")
	ErrInsufficientBalance  = NewDomainError(ErrCodeInsufficientBalance, "Not enough points available")
	ErrDiscountExceedsPrice = NewDomainError(ErrCodeDiscountExceedsPrice, "Discount cannot exceed the product price")
	ErrAlreadyRegistered    = NewDomainError(ErrCodeAlreadyRegistered, "Identity number is already registered")
	ErrCustomerNotFound     = NewDomainError(ErrCodeCustomerNotFound, "Customer not found")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
)
