package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is an alias so callers don't need to import logrus directly.
type Fields = logrus.Fields

// Logger wraps a logrus logger shared by every frrconf package.
type Logger struct {
	*logrus.Logger
}

var (
	log  *Logger
	once sync.Once
)

// EnvLevel is read once at startup. Logging stays silent when it is unset.
const EnvLevel = "FRRCONF_LOG"

func initialize() {
	once.Do(func() {
		log = &Logger{Logger: logrus.New()}
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		if level := os.Getenv(EnvLevel); level != "" {
			SetLevel(level)
		}
	})
}

// GetLogger returns the shared logger, initialising it on first use.
func GetLogger() *Logger {
	initialize()
	return log
}

// SetLevel enables output to stderr at the named level. An empty name
// silences the logger again; unknown names fall back to debug.
func SetLevel(level string) {
	initialize()
	if level == "" {
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		return
	}
	log.SetOutput(os.Stderr)
	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithField("level", log.GetLevel()).Debug("logging enabled")
}

// SetOutput redirects log output, mostly useful in tests.
func SetOutput(w io.Writer) {
	initialize()
	log.Logger.SetOutput(w)
}

func init() {
	initialize()
}
