package backends

import (
	"github.com/aashari/go-prompt-router/internal/config"
	"github.com/aashari/go-prompt-router/internal/httpclient"
)

// Set holds the two model backends the router talks to
type Set struct {
	Azure  *AzureChat
	Ollama *Ollama
}

// NewSet builds both backends from configuration, sharing one client factory
func NewSet(cfg *config.Config, factory *httpclient.Factory) *Set {
	if factory == nil {
		factory = httpclient.NewFactory(httpclient.Options{})
	}
	return &Set{
		Azure:  NewAzureChat(cfg.Azure, factory.CreateClient(httpclient.Options{Timeout: cfg.Azure.Timeout})),
		Ollama: NewOllama(cfg.Ollama, factory.CreateClient(httpclient.Options{Timeout: cfg.Ollama.Timeout})),
	}
}
