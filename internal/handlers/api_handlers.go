package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/invopop/jsonschema"
	"golang.org/x/sync/errgroup"

	"github.com/aashari/go-prompt-router/internal/chain"
	"github.com/aashari/go-prompt-router/internal/database"
	"github.com/aashari/go-prompt-router/internal/errors"
	"github.com/aashari/go-prompt-router/internal/logger"
	"github.com/aashari/go-prompt-router/internal/monitoring"
	"github.com/aashari/go-prompt-router/internal/utils"
	"github.com/aashari/go-prompt-router/internal/validator"
)

// DefaultBatchConcurrency bounds parallel runs inside one batch request
const DefaultBatchConcurrency = 4

// Options carries the optional collaborators of PromptHandlers
type Options struct {
	Metrics          *monitoring.Metrics
	Recorder         *database.UsageRecorder
	BatchConcurrency int
}

// PromptHandlers serves one runnable under one route path
type PromptHandlers struct {
	Path     string
	Runnable chain.Runnable

	metrics          *monitoring.Metrics
	recorder         *database.UsageRecorder
	batchConcurrency int
	inputSchema      *jsonschema.Schema
	outputSchema     *jsonschema.Schema
}

// NewPromptHandlers creates handlers for runnable mounted at path
func NewPromptHandlers(path string, runnable chain.Runnable, opts Options) *PromptHandlers {
	if opts.BatchConcurrency <= 0 {
		opts.BatchConcurrency = DefaultBatchConcurrency
	}
	return &PromptHandlers{
		Path:             path,
		Runnable:         runnable,
		metrics:          opts.Metrics,
		recorder:         opts.Recorder,
		batchConcurrency: opts.BatchConcurrency,
		inputSchema:      InputSchema(),
		outputSchema:     OutputSchema(runnable.Kind()),
	}
}

func (h *PromptHandlers) context(r *http.Request) context.Context {
	ctx := logger.WithRoute(r.Context(), h.Path)
	return logger.WithComponent(ctx, logger.ComponentNames.Handler)
}

// TopicHandler handles POST {path} with a bare {"topic": ...} body and
// returns the runnable's output unwrapped.
// @Summary      Run a prompt route
// @Description  /openai sends the topic as-is and /essay wraps it in an essay prompt, both on Azure OpenAI. /poem wraps it in a poem prompt on Ollama and answers with a plain string.
// @Tags         runnable
// @Accept       json
// @Produce      json
// @Param        request  body      TopicInput            true  "Topic to send"
// @Success      200      {object}  chain.AIMessage       "Assistant message (a JSON string on /poem)"
// @Failure      422      {object}  errors.ErrorResponse  "Invalid request body"
// @Failure      500      {object}  errors.ErrorResponse  "Backend failure"
// @Router       /openai [post]
// @Router       /essay [post]
// @Router       /poem [post]
func (h *PromptHandlers) TopicHandler(w http.ResponseWriter, r *http.Request) {
	ctx := h.context(r)

	var input TopicInput
	if apiErr := validator.DecodeAndValidate(r.Body, &input); apiErr != nil {
		errors.HandleError(ctx, w, apiErr, http.StatusUnprocessableEntity)
		return
	}

	result, err := h.run(ctx, input.chainInput(), utils.GenerateRunID())
	if err != nil {
		errors.HandleError(ctx, w, errors.NewInternalError(err.Error()), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result.Output)
}

// InvokeHandler handles POST {path}/invoke
// @Summary      Invoke a prompt route
// @Description  Runs one input and wraps the output with its run id
// @Tags         runnable
// @Accept       json
// @Produce      json
// @Param        request  body      InvokeRequest         true  "Single input"
// @Success      200      {object}  InvokeResponse        "Wrapped output"
// @Failure      422      {object}  errors.ErrorResponse  "Invalid request body"
// @Failure      500      {object}  errors.ErrorResponse  "Backend failure"
// @Router       /openai/invoke [post]
// @Router       /essay/invoke [post]
// @Router       /poem/invoke [post]
func (h *PromptHandlers) InvokeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := h.context(r)

	var req InvokeRequest
	if apiErr := validator.DecodeAndValidate(r.Body, &req); apiErr != nil {
		errors.HandleError(ctx, w, apiErr, http.StatusUnprocessableEntity)
		return
	}

	runID := utils.GenerateRunID()
	result, err := h.run(ctx, req.Input.chainInput(), runID)
	if err != nil {
		errors.HandleError(ctx, w, errors.NewInternalError(err.Error()), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, InvokeResponse{
		Output:   result.Output,
		Metadata: InvokeMetadata{RunID: runID},
	})
}

// BatchHandler handles POST {path}/batch. Runs execute concurrently up to
// the configured limit; the first failure fails the whole batch.
// @Summary      Batch a prompt route
// @Description  Runs every input concurrently. Outputs keep input order and any failure fails the batch.
// @Tags         runnable
// @Accept       json
// @Produce      json
// @Param        request  body      BatchRequest          true  "Inputs to run"
// @Success      200      {object}  BatchResponse         "Outputs in input order"
// @Failure      422      {object}  errors.ErrorResponse  "Invalid request body"
// @Failure      500      {object}  errors.ErrorResponse  "Backend failure"
// @Router       /openai/batch [post]
// @Router       /essay/batch [post]
// @Router       /poem/batch [post]
func (h *PromptHandlers) BatchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := h.context(r)

	var req BatchRequest
	if apiErr := validator.DecodeAndValidate(r.Body, &req); apiErr != nil {
		errors.HandleError(ctx, w, apiErr, http.StatusUnprocessableEntity)
		return
	}

	logger.Debug(logger.WithStage(ctx, logger.LogStages.Batch), "Batch started",
		"size", len(req.Inputs),
		"concurrency", h.batchConcurrency,
	)

	outputs := make([]interface{}, len(req.Inputs))
	runIDs := make([]string, len(req.Inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.batchConcurrency)
	for i, input := range req.Inputs {
		runIDs[i] = utils.GenerateRunID()
		g.Go(func() error {
			result, err := h.run(gctx, input.chainInput(), runIDs[i])
			if err != nil {
				return fmt.Errorf("batch input %d: %w", i, err)
			}
			outputs[i] = result.Output
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errors.HandleError(ctx, w, errors.NewInternalError(err.Error()), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, BatchResponse{
		Output:   outputs,
		Metadata: BatchMetadata{RunIDs: runIDs},
	})
}

// InputSchemaHandler handles GET {path}/input_schema
// @Summary      Input schema
// @Description  JSON Schema of the body accepted by the route
// @Tags         schema
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "JSON Schema document"
// @Router       /openai/input_schema [get]
// @Router       /essay/input_schema [get]
// @Router       /poem/input_schema [get]
func (h *PromptHandlers) InputSchemaHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.context(r), w, http.StatusOK, h.inputSchema)
}

// OutputSchemaHandler handles GET {path}/output_schema
// @Summary      Output schema
// @Description  JSON Schema of the route output
// @Tags         schema
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "JSON Schema document"
// @Router       /openai/output_schema [get]
// @Router       /essay/output_schema [get]
// @Router       /poem/output_schema [get]
func (h *PromptHandlers) OutputSchemaHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.context(r), w, http.StatusOK, h.outputSchema)
}

// run invokes the runnable once and records metrics and usage
func (h *PromptHandlers) run(ctx context.Context, in chain.Input, runID string) (*chain.Result, error) {
	backend := h.Runnable.BackendName()
	ctx = logger.WithBackend(ctx, backend)

	start := time.Now()
	result, err := h.Runnable.Invoke(ctx, in)
	finished := time.Now()

	if h.metrics != nil {
		h.metrics.RecordBackendCall(backend, err)
	}

	if err != nil {
		logger.Error(logger.WithStage(ctx, logger.LogStages.BackendError), "Runnable failed", err,
			"run_id", runID,
			"duration_ms", finished.Sub(start).Milliseconds(),
		)
	} else {
		logger.Info(logger.WithStage(ctx, logger.LogStages.BackendResponse), "Runnable completed",
			"run_id", runID,
			"model", result.Completion.Model,
			"duration_ms", finished.Sub(start).Milliseconds(),
		)
	}

	h.recordUsage(ctx, runID, in, result, err, start, finished)
	return result, err
}

func (h *PromptHandlers) recordUsage(ctx context.Context, runID string, in chain.Input, result *chain.Result, err error, start, finished time.Time) {
	if !h.recorder.Enabled() {
		return
	}

	usage := &database.PromptUsage{
		RunID:       runID,
		RequestID:   logger.RequestIDFromContext(ctx),
		Route:       h.Path,
		Backend:     h.Runnable.BackendName(),
		Topic:       in.Topic,
		Success:     err == nil,
		RequestedAt: start.UTC(),
		RespondedAt: finished.UTC(),
		DurationMs:  finished.Sub(start).Milliseconds(),
	}
	if correlationID, ok := ctx.Value(logger.CorrelationIDKey).(string); ok {
		usage.CorrelationID = correlationID
	}
	if err != nil {
		usage.ErrorMessage = err.Error()
	}
	if result != nil {
		usage.Prompt = result.Prompt
		if c := result.Completion; c != nil {
			usage.Model = c.Model
			usage.Completion = c.Content
			usage.FinishReason = c.FinishReason
			usage.PromptTokens = c.PromptTokens
			usage.CompletionTokens = c.CompletionTokens
			usage.TotalTokens = c.TotalTokens
		}
	}

	h.recorder.Record(ctx, usage)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error(ctx, "Failed to marshal response", err)
		errors.HandleError(ctx, w, errors.NewInternalError("failed to encode response"), http.StatusInternalServerError)
		return
	}

	w.Header().Set(utils.HeaderContentType, utils.ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Error(ctx, "Failed to write response", err, "response_size", len(body))
	}
}
