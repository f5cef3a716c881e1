package logger

import (
	"os"

	"go.uber.org/zap"
)

// Log is the process-wide logger. It is a no-op logger until Init is called.
var Log *zap.Logger = zap.NewNop()

// Init builds the package logger. GOPHERFX_ENV=production selects the JSON
// production encoder, anything else the human readable development one.
func Init() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("GOPHERFX_ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		// Keep whatever logger we had; nothing else can report this.
		return
	}
	Log = l
}

// Sync flushes buffered log entries. Safe to call on the no-op logger.
func Sync() {
	_ = Log.Sync()
}
