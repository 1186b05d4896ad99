package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type appNameHook struct {
	appName string
}

func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// InitLogger LOG_LEVEL'e göre seviyeyi ayarlar ve mesajlara uygulama adını ekler
func InitLogger(appName, level string) {
	Log.SetOutput(os.Stdout)

	level = strings.ToLower(level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		Log.Warnf("Invalid LOG_LEVEL '%s', defaulting to INFO", level)
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	Log.AddHook(&appNameHook{appName})
}

func Infof(format string, v ...interface{}) {
	Log.Infof(format, v...)
}

func Warnf(format string, v ...interface{}) {
	Log.Warnf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	Log.Errorf(format, v...)
}

func Debugf(format string, v ...interface{}) {
	Log.Debugf(format, v...)
}

func Fatalf(format string, v ...interface{}) {
	Log.Fatalf(format, v...)
}

// WithFields yapılandırılmış log kaydı için
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}
