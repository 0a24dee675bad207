package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func InitLogger() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}

// SetLogLevel adjusts the info logger; unknown names keep the current level.
func SetLogLevel(name string) {
	if name == "" {
		return
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		ErrorLogger.Printf("invalid LOG_LEVEL %q: %v", name, err)
		return
	}
	InfoLogger.SetLevel(level)
}
