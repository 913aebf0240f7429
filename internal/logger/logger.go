package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	log  *zap.SugaredLogger
	once sync.Once
)

// Init builds the global logger. Production config (JSON, info level) when
// ENV=production, development config otherwise.
func Init() {
	once.Do(func() {
		var (
			zl  *zap.Logger
			err error
		)
		if os.Getenv("ENV") == "production" {
			zl, err = zap.NewProduction()
		} else {
			zl, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		log = zl.Sugar()
	})
}

func L() *zap.SugaredLogger {
	if log == nil {
		Init()
	}
	return log
}

// Sync flushes buffered log entries. Call it on shutdown.
func Sync() {
	_ = L().Sync()
}

func Debug(msg string, keysAndValues ...any) {
	L().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	L().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	L().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	L().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	L().Fatalw(msg, keysAndValues...)
}
