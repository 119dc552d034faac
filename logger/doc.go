// Package logger is the public API of nlogd: the dispatcher that routes
// leveled log records to named sinks.
//
// A Logger holds a handler registry and a processor chain. Each record
// is resolved to text, enriched by every processor in registration
// order, stamped with metadata (_pid, _date, _time, _level, _formatted
// and friends) and then handed to each sink registered at its level:
//
//	log := logger.NewBuilder().
//	    WithHandler("console", console, logger.LevelsAtOrAbove(logger.NoticeLevel)...).
//	    WithProcessor("request", processor.UUID("request_id")).
//	    Build()
//
//	log.Error("disk {disk} is full", logger.F(logger.String("disk", "sda1")))
//
// Dispatch is synchronous and guarded against recursion: a sink that
// logs through the same Logger while it is being invoked has that
// record dropped. The guard is shared by all goroutines, so concurrent
// Log calls made during a fan-out are dropped as well.
//
// The package-level functions delegate to a default Logger installed
// with SetDefault. Nothing is constructed implicitly; until a default is
// installed they do nothing:
//
//	logger.SetDefault(log)
//	logger.Info("ready", logger.F(logger.Int("port", 8080)))
package logger
