// Command server exposes the text and math utilities over a small fasthttp
// JSON API. The library itself performs no I/O; this binary is the wrapping
// layer that validates requests and maps errors to HTTP status codes.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	textutils "github.com/baditaflorin/go_text_utils"
	"github.com/baditaflorin/go_text_utils/internal/config"
	"github.com/baditaflorin/go_text_utils/pkg/caseconv"
	"github.com/baditaflorin/go_text_utils/pkg/palindrome"
	"github.com/baditaflorin/go_text_utils/pkg/sequence"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

var (
	converter *caseconv.Converter
	checker   *palindrome.Checker
	seq       *sequence.Sequence

	logger l.Logger
)

// TextRequest carries a single text payload.
type TextRequest struct {
	Text string `json:"text"`
}

// TextResponse carries a transformed text result.
type TextResponse struct {
	Result string `json:"result"`
}

// CheckResponse carries a palindrome verdict.
type CheckResponse struct {
	Palindrome bool `json:"palindrome"`
	Length     int  `json:"length"`
}

// IntRequest carries a single integer payload.
type IntRequest struct {
	N int `json:"n"`
}

// IntResponse carries an integer result.
type IntResponse struct {
	Result int `json:"result"`
}

// BoolResponse carries a boolean result.
type BoolResponse struct {
	Result bool `json:"result"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	configPath := flag.String("config", "", "TOML config file path")
	bind := flag.String("bind", "", "listen address (overrides config)")
	logFile := flag.String("log-file", "", "log file path (overrides config, empty = stdout)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *bind != "" {
		cfg.Server.Bind = *bind
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	logger, err = createLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting textutils HTTP server",
		"bind", cfg.Server.Bind,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
	)

	initUtilities(cfg.Server.WarmUp)

	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", cfg.Server.Bind)
	if err := server.ListenAndServe(cfg.Server.Bind); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// createLogger builds the process logger from the log config.
func createLogger(cfg config.Log) (l.Logger, error) {
	output := os.Stdout
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}

	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
}

// initUtilities initializes the library front ends shared by all handlers.
func initUtilities(warmUp bool) {
	var err error

	opts := []caseconv.ConverterOption{caseconv.WithLogger(logger)}
	if warmUp {
		opts = append(opts, caseconv.WithWarmUp(true))
	}
	converter, err = caseconv.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize case converter", "error", err)
		os.Exit(1)
	}

	checker, err = palindrome.New(palindrome.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize palindrome checker", "error", err)
		os.Exit(1)
	}

	seq, err = sequence.New(sequence.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize sequence calculator", "error", err)
		os.Exit(1)
	}

	logger.Info("Utilities initialized successfully", "warm_up", warmUp)
}

// requestHandler is the main fasthttp request handler.
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "TextUtilsServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/case/snake":
		handleText(ctx, converter.Snake)
	case "/case/camel":
		handleText(ctx, converter.Camel)
	case "/text/unpunct":
		handleText(ctx, textutils.RemovePunctuation)
	case "/text/palindrome":
		handlePalindrome(ctx)
	case "/math/fibonacci":
		handleInt(ctx, seq.Fibonacci)
	case "/math/factorial":
		handleInt(ctx, seq.Factorial)
	case "/math/prime":
		handlePrime(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleText serves the endpoints that transform one text into another.
func handleText(ctx *fasthttp.RequestCtx, transform func(string) string) {
	req, ok := parseTextRequest(ctx)
	if !ok {
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, TextResponse{Result: transform(req.Text)})
}

func handlePalindrome(ctx *fasthttp.RequestCtx) {
	req, ok := parseTextRequest(ctx)
	if !ok {
		return
	}

	result := checker.Check(context.Background(), req.Text)

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, CheckResponse{
		Palindrome: result.Match,
		Length:     result.Length,
	})
}

// handleInt serves the endpoints computing an integer from an integer.
// Negative input maps to 400 with the library error message.
func handleInt(ctx *fasthttp.RequestCtx, compute func(int) (int, error)) {
	req, ok := parseIntRequest(ctx)
	if !ok {
		return
	}

	result, err := compute(req.N)
	if err != nil {
		if errors.Is(err, sequence.ErrNegativeInput) {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
		} else {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		}
		writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, IntResponse{Result: result})
}

func handlePrime(ctx *fasthttp.RequestCtx) {
	req, ok := parseIntRequest(ctx)
	if !ok {
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, BoolResponse{Result: seq.IsPrime(req.N)})
}

func parseTextRequest(ctx *fasthttp.RequestCtx) (TextRequest, bool) {
	var req TextRequest
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return req, false
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid JSON request")
		return req, false
	}
	return req, true
}

func parseIntRequest(ctx *fasthttp.RequestCtx) (IntRequest, bool) {
	var req IntRequest
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return req, false
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid JSON request")
		return req, false
	}
	return req, true
}

func writeJSONResponse(ctx *fasthttp.RequestCtx, response interface{}) {
	data, err := json.Marshal(response)
	if err != nil {
		logger.Error("Failed to marshal response", "error", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, "Internal server error")
		return
	}
	ctx.SetBody(data)
}

func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	data, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetBodyString(`{"error":"internal server error"}`)
		return
	}
	ctx.SetBody(data)
}
