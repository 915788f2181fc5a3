package log

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects which messages reach the sink
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// backendLevels maps each Level to its go-logging counterpart
var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

func (l Level) String() string {
	if backendLevel, ok := backendLevels[l]; ok {
		return backendLevel.String()
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

var (
	format = logging.MustStringFormatter(
		`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
	)
	backend      logging.LeveledBackend
	currentLevel = Notice
)

// Logger is a leveled logger bound to a module name
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Notice(v ...interface{})
	Noticef(format string, v ...interface{})
	Warning(v ...interface{})
	Warningf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})

	// Printf logs at info level, which lets the logger stand in for core.Logger
	Printf(format string, v ...interface{})
}

type moduleLogger struct {
	*logging.Logger
}

func (l moduleLogger) Printf(format string, v ...interface{}) {
	l.Infof(format, v...)
}

// New returns a logger that tags its messages with module
func New(module string) Logger {
	return moduleLogger{logging.MustGetLogger(module)}
}

// SetSink redirects all loggers to w, keeping the current level
func SetSink(w io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	logging.SetBackend(backend)
	SetLevel(currentLevel)
}

// SetLevel hides messages below level for every module. Unknown levels
// fall back to Notice.
func SetLevel(level Level) {
	backendLevel, ok := backendLevels[level]
	if !ok {
		level, backendLevel = Notice, logging.NOTICE
	}
	currentLevel = level
	backend.SetLevel(backendLevel, "")
}

func init() {
	SetSink(os.Stdout)
}
