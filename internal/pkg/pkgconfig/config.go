package pkgconfig

// Config is the read-only configuration surface used across the application.
type Config interface {
	// GetBool returns the value for key as bool.
	GetBool(key string) bool
	// GetString returns the value for key as string.
	GetString(key string) string
	// Close releases any resources held by the implementation.
	Close() error
}
