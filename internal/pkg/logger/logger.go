package logger

// Logger is the leveled logger shared by the signer services, repositories
// and commands. Arguments are joined like fmt.Sprint unless the first one is
// a format string.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}
