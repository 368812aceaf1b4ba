package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, populated from environment
// variables (optionally via a .env file).
type Config struct {
	MCPHttpPort  string `env:"MCP_HTTP_PORT" envDefault:"9090"`
	APIRestPort  string `env:"API_REST_PORT" envDefault:"8080"`
	DocumentExt  string `env:"DOCUMENT_EXT" envDefault:".txt"`
	ChunkSize    int    `env:"CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap int    `env:"CHUNK_OVERLAP" envDefault:"500"`
}

// Load reads a .env file if present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
