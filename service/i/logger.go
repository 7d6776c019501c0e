package i

// Logger is the component logger services write to.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
