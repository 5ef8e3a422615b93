package i

// Logger is the leveled logger consumed by services and wiring code.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
