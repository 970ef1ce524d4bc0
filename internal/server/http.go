package server

import (
	"time"

	"resumeforge/internal/config"
	forgeErrors "resumeforge/internal/errors"
	"resumeforge/internal/history"
	"resumeforge/internal/types"
)

// RenderRequest represents the request body for the render endpoint
type RenderRequest struct {
	Fields   types.ResumeFields `json:"fields"`
	Template string             `json:"template"`
	DarkMode bool               `json:"darkMode"`
}

// EnhanceRequest represents the request body for the enhance endpoint
type EnhanceRequest struct {
	Content string `json:"content"`
	JobRole string `json:"jobRole,omitempty"`
	UseAI   bool   `json:"useAI,omitempty"`
}

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// KeywordsRequest represents the request body for the keywords endpoint
type KeywordsRequest struct {
	JobDescription string `json:"jobDescription"`
}

// SuggestRequest represents the request body for the suggest endpoint
type SuggestRequest struct {
	JobRole         string `json:"jobRole"`
	Company         string `json:"company,omitempty"`
	YearsExperience int    `json:"yearsExperience,omitempty"`
	BulletCount     int    `json:"bulletCount,omitempty"`
}

// RenderResponse is returned by the render endpoint
type RenderResponse struct {
	ResumeText string `json:"resumeText"`
	Template   string `json:"template"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate hot reload
	certReloader *certReloader

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Resume history log
	History *history.Log

	// Logger
	Logger *forgeErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *forgeErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		History:        history.NewLog(appCfg.History, logger),
		Logger:         logger,
	}
}
