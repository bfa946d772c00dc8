package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance. It defaults to stderr so tests and
// tooling work without calling Initialize.
var Log = logrus.New()

var once sync.Once

// Initialize configures the global logger for a service. When filename is
// non-empty output goes to a size-rotated file, otherwise to stdout.
func Initialize(service, level, filename string) {
	once.Do(func() {
		var out io.Writer = os.Stdout
		if filename != "" {
			out = &lumberjack.Logger{
				Filename:   filename,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		Log.SetOutput(out)
		Log.SetFormatter(&logrus.JSONFormatter{})
		Log.AddHook(&serviceHook{service})

		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		Log.SetLevel(lvl)

		Log.WithField("level", lvl.String()).Info("logger initialized")
	})
}

// serviceHook stamps every entry with the service name.
type serviceHook struct {
	service string
}

func (h *serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = h.service
	return nil
}
