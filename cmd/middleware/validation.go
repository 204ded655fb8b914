package middleware

import "context"

// ValidationMiddleware handles additional flag validation checks.
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new ValidationMiddleware.
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// Execute runs the validation middleware and then calls the next handler.
func (m *ValidationMiddleware) Execute(ctx context.Context, next func(context.Context) error) error {
	// Additional validation would be added here.
	return next(ctx)
}
