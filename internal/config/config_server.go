package config

import "fmt"

// ServerConfig is the plan server view of [StructuredConfig].
type ServerConfig struct {
	Storage    Storage
	Server     Server
	Generation Generation
}

// GetServerConfig loads the merged configuration and returns the validated
// server view. The generation API key is checked later, when the generation
// client is constructed.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// ServerView maps the structured config onto [ServerConfig].
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		Storage:    cfg.Storage,
		Server:     cfg.Server,
		Generation: cfg.Generation,
	}
}
