// Package logger provides structured logging for itkit using zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers with structured fields. The peekable adapters
// accept a *Logger to trace producer pulls and slot transitions.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("ingest").WithComponent("parser")
//	log.Debug("token pulled", logger.Fields("end", "front"))
package logger
