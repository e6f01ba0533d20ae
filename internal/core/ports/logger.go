package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs a message with optional key/value attributes.
	Info(msg string, attrs ...any)
	// Warn logs a warning with optional key/value attributes.
	Warn(msg string, attrs ...any)
	// Error logs an error and its cause chain.
	Error(err error)
}
