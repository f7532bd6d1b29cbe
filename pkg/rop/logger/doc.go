// Package logger provides structured logging for flowless using zerolog.
//
// The pipeline runner and the curry engine log at debug level only, so the
// default global logger (info, console, stderr) keeps them quiet.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	logger.Init(cfg.Logging)
//	log := logger.WithComponent("compose")
//	log.Debug("switched to deferred mode", logger.Fields("step", 2))
package logger
