package i

// Logger is the levelled logger handed to services and the environment.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
