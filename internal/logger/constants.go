package logger

// LogStages defines standardized stage names for consistent logging
var LogStages = struct {
	// Request lifecycle
	RequestReceived  string
	RequestValidated string
	RequestCompleted string
	RequestFailed    string

	// Prompt handling
	PromptRendering string
	BackendRequest  string
	BackendResponse string
	BackendError    string
	Batch           string

	// System operations
	Initialization    string
	Configuration     string
	DatabaseOperation string

	// Health check stages
	HealthCheck        string
	HealthCheckFailed  string
	HealthCheckWarning string

	// Correlation and tracking
	TrackingSetup string
}{
	RequestReceived:  "RequestReceived",
	RequestValidated: "RequestValidated",
	RequestCompleted: "RequestCompleted",
	RequestFailed:    "RequestFailed",

	PromptRendering: "PromptRendering",
	BackendRequest:  "BackendRequest",
	BackendResponse: "BackendResponse",
	BackendError:    "BackendError",
	Batch:           "Batch",

	Initialization:    "Initialization",
	Configuration:     "Configuration",
	DatabaseOperation: "DatabaseOperation",

	HealthCheck:        "HealthCheck",
	HealthCheckFailed:  "HealthCheckFailed",
	HealthCheckWarning: "HealthCheckWarning",

	TrackingSetup: "TrackingSetup",
}

// ComponentNames defines standardized component names
var ComponentNames = struct {
	App        string
	Router     string
	Middleware string
	Handler    string
	Chain      string
	Config     string
	Database   string
	Monitoring string
	Health     string

	AzureClient  string
	OllamaClient string
}{
	App:        "App",
	Router:     "Router",
	Middleware: "Middleware",
	Handler:    "Handler",
	Chain:      "Chain",
	Config:     "Config",
	Database:   "Database",
	Monitoring: "Monitoring",
	Health:     "Health",

	AzureClient:  "AzureChatClient",
	OllamaClient: "OllamaClient",
}
