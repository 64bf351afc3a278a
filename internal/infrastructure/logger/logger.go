package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
	once sync.Once
)

// Get returns the process logger, creating a JSON/info logger on first use.
func Get() *logrus.Logger {
	once.Do(func() {
		if logg == nil {
			logg = New("info", "json", os.Stdout)
		}
	})
	return logg
}

// Configure replaces the process logger.
func Configure(level, format string) *logrus.Logger {
	l := New(level, format, os.Stdout)
	once.Do(func() {})
	logg = l
	return l
}

func New(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	if strings.EqualFold(format, "text") {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

func LogError(logger logrus.FieldLogger, moduleName string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
