package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New создаёт логгер, пишущий в stdout
func New(logLevel, format string) *logrus.Logger {
	return NewWithOutput(os.Stdout, logLevel, format)
}

// NewWithOutput создаёт логгер с заданным приёмником. Формат "text" включает
// текстовый вывод для консоли, любое другое значение - JSON.
func NewWithOutput(out io.Writer, logLevel, format string) *logrus.Logger {
	log := logrus.New()

	if strings.EqualFold(format, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
