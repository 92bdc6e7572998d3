package loggers

import (
	"github.com/sirupsen/logrus"
)

const (
	App            = "app"
	Executor       = "executor"
	Storage        = "storage"
	SystemContract = "system_contract"
)

var w = &LoggerWrapper{
	loggers: map[string]*logrus.Entry{
		App:            newWithModule(App),
		Executor:       newWithModule(Executor),
		Storage:        newWithModule(Storage),
		SystemContract: newWithModule(SystemContract),
	},
}

type LoggerWrapper struct {
	loggers map[string]*logrus.Entry
}

func newWithModule(name string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000",
	})
	return logger.WithField("module", name)
}

// Initialize sets the log level of every module logger.
func Initialize(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	for _, entry := range w.loggers {
		entry.Logger.SetLevel(lvl)
	}
	return nil
}

func Logger(name string) logrus.FieldLogger {
	return w.loggers[name]
}
