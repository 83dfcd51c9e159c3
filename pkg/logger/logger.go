package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New создает logrus-логгер с указанными уровнем и форматом (json|text)
func New(logLevel, format string) *logrus.Logger {
	log := logrus.New()

	switch strings.ToLower(format) {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
