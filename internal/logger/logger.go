package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger levels
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Context keys
type contextKey string

const (
	RequestIDKey     contextKey = "request_id"
	CorrelationIDKey contextKey = "correlation_id"
	ComponentKey     contextKey = "component"
	StageKey         contextKey = "stage"
	RouteKey         contextKey = "route"
	BackendKey       contextKey = "backend"
)

// Global logger instance
var Logger *slog.Logger

// Service configuration
var (
	ServiceName = "prompt-router"
	Environment = "development"
)

var initMu sync.Mutex

// Config controls how the global logger is built
type Config struct {
	Level       slog.Level
	Format      string // "json" or "text"
	Output      string // "stdout", "stderr", or file path
	TimeFormat  string
	ServiceName string
	Environment string
}

// DefaultConfig is used when nothing else has initialized the logger
var DefaultConfig = Config{
	Level:       LevelInfo,
	Format:      "json",
	Output:      "stdout",
	TimeFormat:  time.RFC3339,
	ServiceName: "prompt-router",
	Environment: "development",
}

// StructuredLogEntry is the JSON line written for every record
type StructuredLogEntry struct {
	Timestamp   string                 `json:"timestamp"`
	Level       string                 `json:"level"`
	Message     string                 `json:"message"`
	Service     string                 `json:"service"`
	Environment string                 `json:"environment"`
	Component   string                 `json:"component,omitempty"`
	Stage       string                 `json:"stage,omitempty"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
	Request     map[string]interface{} `json:"request,omitempty"`
	Response    map[string]interface{} `json:"response,omitempty"`
	Error       map[string]interface{} `json:"error,omitempty"`
}

// Init builds the global logger from config
func Init(config Config) error {
	var output io.Writer

	switch config.Output {
	case "stdout", "":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", config.Output, err)
		}
		output = file
	}

	if config.TimeFormat == "" {
		config.TimeFormat = time.RFC3339
	}

	var handler slog.Handler
	switch config.Format {
	case "json", "":
		handler = NewStructuredJSONHandler(output, config.Level, config.ServiceName, config.Environment)
	default:
		handler = slog.NewTextHandler(output, &slog.HandlerOptions{
			Level: config.Level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.TimeKey:
					return slog.String("timestamp", a.Value.Time().Format(config.TimeFormat))
				case slog.MessageKey:
					return slog.String("message", a.Value.String())
				}
				return a
			},
		})
	}

	initMu.Lock()
	defer initMu.Unlock()
	ServiceName = config.ServiceName
	Environment = config.Environment
	Logger = slog.New(handler)
	return nil
}

// InitFromEnv initializes the global logger from LOG_* and service variables
func InitFromEnv() error {
	config := DefaultConfig

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = ParseLevel(level, config.Level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		config.Output = output
	}
	if serviceName := os.Getenv("SERVICE_NAME"); serviceName != "" {
		config.ServiceName = serviceName
	}
	if environment := os.Getenv("ENVIRONMENT"); environment != "" {
		config.Environment = environment
	} else if env := os.Getenv("ENV"); env != "" {
		config.Environment = env
	}

	return Init(config)
}

// ParseLevel maps a level name to a slog level, falling back to def
func ParseLevel(level string, def slog.Level) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return def
	}
}

// StructuredJSONHandler writes one StructuredLogEntry per record
type StructuredJSONHandler struct {
	writer      io.Writer
	level       slog.Leveler
	serviceName string
	environment string
	attrs       []slog.Attr
	mu          *sync.Mutex
}

// NewStructuredJSONHandler creates a handler writing JSON lines to w
func NewStructuredJSONHandler(w io.Writer, level slog.Leveler, serviceName, environment string) *StructuredJSONHandler {
	if level == nil {
		level = LevelInfo
	}
	return &StructuredJSONHandler{
		writer:      w,
		level:       level,
		serviceName: serviceName,
		environment: environment,
		mu:          &sync.Mutex{},
	}
}

func (h *StructuredJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *StructuredJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *StructuredJSONHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *StructuredJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	entry := StructuredLogEntry{
		Timestamp:   r.Time.UTC().Format(time.RFC3339),
		Level:       r.Level.String(),
		Message:     r.Message,
		Service:     h.serviceName,
		Environment: h.environment,
		Attributes:  make(map[string]interface{}),
		Request:     make(map[string]interface{}),
		Response:    make(map[string]interface{}),
		Error:       make(map[string]interface{}),
	}

	if ctx != nil {
		if v, ok := ctx.Value(ComponentKey).(string); ok {
			entry.Component = v
		}
		if v, ok := ctx.Value(StageKey).(string); ok {
			entry.Stage = v
		}
		if v := ctx.Value(RequestIDKey); v != nil {
			entry.Request["request_id"] = v
		}
		if v := ctx.Value(CorrelationIDKey); v != nil {
			entry.Request["correlation_id"] = v
		}
		if v := ctx.Value(RouteKey); v != nil {
			entry.Attributes["route"] = v
		}
		if v := ctx.Value(BackendKey); v != nil {
			entry.Attributes["backend"] = v
		}
	}

	route := func(a slog.Attr) bool {
		entry.place(a.Key, a.Value.Resolve().Any())
		return true
	}
	for _, a := range h.attrs {
		route(a)
	}
	r.Attrs(route)

	entry.compact()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.writer.Write(append(data, '\n'))
	return err
}

// place routes an attribute to its section of the entry
func (e *StructuredLogEntry) place(key string, value interface{}) {
	switch {
	case key == "request" || key == "response":
		section := e.Request
		if key == "response" {
			section = e.Response
		}
		if m, ok := value.(map[string]interface{}); ok {
			for k, v := range m {
				section[k] = v
			}
			return
		}
		section["value"] = value
	case key == "error":
		if err, ok := value.(error); ok {
			e.Error["message"] = err.Error()
			e.Error["type"] = fmt.Sprintf("%T", err)
		} else if value != nil {
			e.Error["message"] = fmt.Sprintf("%v", value)
		}
	case key == "component":
		e.Component = fmt.Sprintf("%v", value)
	case key == "stage":
		e.Stage = fmt.Sprintf("%v", value)
	case strings.HasPrefix(key, "request_"):
		e.Request[strings.TrimPrefix(key, "request_")] = value
	case strings.HasPrefix(key, "response_"):
		e.Response[strings.TrimPrefix(key, "response_")] = value
	case strings.HasPrefix(key, "error_"):
		e.Error[strings.TrimPrefix(key, "error_")] = value
	default:
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		e.Attributes[key] = value
	}
}

func (e *StructuredLogEntry) compact() {
	if len(e.Attributes) == 0 {
		e.Attributes = nil
	}
	if len(e.Request) == 0 {
		e.Request = nil
	}
	if len(e.Response) == 0 {
		e.Response = nil
	}
	if len(e.Error) == 0 {
		e.Error = nil
	}
}

// WithComponent tags the context with the emitting component
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, ComponentKey, component)
}

// WithStage tags the context with the current processing stage
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, StageKey, stage)
}

// WithRoute tags the context with the route path being served
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, RouteKey, route)
}

// WithBackend tags the context with the backend handling the prompt
func WithBackend(ctx context.Context, backend string) context.Context {
	return context.WithValue(ctx, BackendKey, backend)
}

// RequestIDFromContext returns the request id set by the correlation middleware
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func get() *slog.Logger {
	initMu.Lock()
	l := Logger
	initMu.Unlock()
	if l != nil {
		return l
	}
	if err := Init(DefaultConfig); err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LevelDebug}))
	}
	initMu.Lock()
	defer initMu.Unlock()
	return Logger
}

func ensureCtx(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func Debug(ctx context.Context, msg string, args ...any) {
	get().DebugContext(ensureCtx(ctx), msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	get().InfoContext(ensureCtx(ctx), msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	get().WarnContext(ensureCtx(ctx), msg, args...)
}

// Error logs at error level; err may be nil
func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	get().ErrorContext(ensureCtx(ctx), msg, args...)
}
