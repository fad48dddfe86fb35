package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LogComponent tags log entries with the part of the system that wrote them.
type LogComponent string

const (
	ComponentHTTP    LogComponent = "HTTP"
	ComponentServer  LogComponent = "Server"
	ComponentMetrics LogComponent = "Metrics"
	ComponentSystem  LogComponent = "System"
)

// Logger wraps logrus.Logger
type Logger struct {
	*logrus.Logger
	file *os.File
}

// NewLogger는 애플리케이션의 중앙 로거를 생성합니다.
// An unknown level falls back to info. A non-empty logFile is created along
// with its directory and replaces stdout as the output.
func NewLogger(level string, logFile string) (*Logger, error) {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetOutput(os.Stdout)

	l := &Logger{Logger: logger}
	if logFile == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}
	logger.SetOutput(file)
	l.file = file

	return l, nil
}

// Component returns an entry tagged with the given component.
func (l *Logger) Component(component LogComponent) *logrus.Entry {
	return l.WithField("component", string(component))
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
