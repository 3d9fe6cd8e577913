// Package logger provides adapters for popular logger libraries to work with shiftset's Logger interface.
//
// The adapters allow you to use your existing logger with shiftset without writing boilerplate.
// Note that the standard library's slog.Logger already implements shiftset.Logger directly.
//
// Example with zap:
//
//	import (
//	    "shiftset"
//	    "shiftset/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    set := shiftset.New[int64](shiftset.WithLogger(logger.NewZap(zapLogger)))
//	    if err := set.Check(); err != nil {
//	        panic(err)
//	    }
//	}
package logger
