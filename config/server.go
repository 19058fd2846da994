package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPort           = "8080"
	defaultWorkerPoolSize = 120
)

type ServerConfig struct {
	Port           string
	WorkerPoolSize int
	MockAI         bool
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	workerPoolSize := defaultWorkerPoolSize
	if rawSize := os.Getenv("WORKER_POOL_SIZE"); rawSize != "" {
		parsed, err := strconv.Atoi(rawSize)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("WORKER_POOL_SIZE must be a positive integer, got %q", rawSize)
		}
		workerPoolSize = parsed
	}

	mockAI := os.Getenv("MOCK_AI") == "true"

	return &ServerConfig{
		Port:           port,
		WorkerPoolSize: workerPoolSize,
		MockAI:         mockAI,
	}, nil
}
