package logger_test

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/nlogd/core"
	"github.com/philipp01105/nlogd/formatter"
	"github.com/philipp01105/nlogd/handler"
	"github.com/philipp01105/nlogd/handler/consolehandler"
	"github.com/philipp01105/nlogd/logger"
	"github.com/philipp01105/nlogd/processor"
)

// Install a default logger and use the package-level functions.
func Example() {
	sink := handler.SinkFunc(func(message string, ctx core.Context) error {
		fmt.Println(ctx[core.KeyLevelString], ctx[core.KeyFormatted])
		return nil
	})
	logger.SetDefault(logger.NewBuilder().WithHandler("print", sink).Build())
	defer logger.SetDefault(nil)

	logger.Info("Application started")
	logger.Info("User {username} logged in", logger.F(
		logger.String("username", "alice"),
		logger.Int("user_id", 123),
	))
	// Output:
	// info Application started
	// info User alice logged in
}

// Create a custom Logger with the Builder pattern.
func ExampleNewBuilder() {
	ch := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{IncludeHandler: true}),
	})

	log := logger.NewBuilder().
		WithClock(core.FixedClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))).
		WithUTC(true).
		WithHandler("console", ch, logger.LevelsAtOrAbove(logger.InfoLevel)...).
		WithProcessor("service", processor.Static(core.Context{"service": "api"})).
		Build()
	defer log.Close()

	log.Info("listening on {port}", logger.F(logger.Int("port", 8080)))
	// Output: 2026-01-15T12:00:00Z [INFO] <console> listening on 8080 port=8080 service=api
}

// Use With to create a child logger with persistent context fields.
func ExampleLogger_With() {
	sink := handler.SinkFunc(func(message string, ctx core.Context) error {
		fmt.Println(ctx[core.KeyFormatted], ctx["request_id"])
		return nil
	})

	log := logger.NewBuilder().WithHandler("print", sink).Build()

	reqLog := log.With(logger.String("request_id", "req-12345"))
	reqLog.Notice("processing {path}", logger.F(logger.String("path", "/api/users")))
	// Output: processing /api/users req-12345
}

// Dump the routing table of a logger.
func ExampleLogger_DumpConfig() {
	log := logger.NewBuilder().
		WithHandler("errors", handler.SinkFunc(func(string, core.Context) error { return nil }), logger.ErrorLevel).
		Build()

	fmt.Print(log.DumpConfig())
	// Output:
	// Currently sending   : no
	// UTC Logging         : no
	// Handler at emergency: None
	// Handler at alert    : None
	// Handler at critical : None
	// Handler at error    : handler.SinkFunc
	// Handler at warning  : None
	// Handler at notice   : None
	// Handler at info     : None
	// Handler at debug    : None
}
