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
	ErrNotFound             = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists        = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput         = NewDomainError("INVALID_INPUT", "Datos inválidos")
	ErrUnauthorized         = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden            = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidCredentials   = NewDomainError("INVALID_CREDENTIALS", "Correo o contraseña incorrectos")
	ErrProductUnavailable   = NewDomainError("PRODUCT_UNAVAILABLE", "Producto no disponible")
	ErrLineNotFound         = NewDomainError("LINE_NOT_FOUND", "Item no encontrado")
	ErrTooManyDistinctItems = NewDomainError("TOO_MANY_DISTINCT_ITEMS", "Límite de 50 productos diferentes alcanzado")
	ErrEmailTaken           = NewDomainError("EMAIL_TAKEN", "El correo ya está registrado")
	ErrInvalidResetToken    = NewDomainError("INVALID_RESET_TOKEN", "Token inválido o expirado")
)
