package ai

import (
	"testing"
	"time"

	"resumeforge/internal/config"
)

func breakerConfig(maxRequests uint32, interval, timeout time.Duration, minRequests uint32, threshold float64) *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      maxRequests,
			Interval:         interval,
			Timeout:          timeout,
			MinRequests:      minRequests,
			FailureThreshold: threshold,
		},
	}
}

func TestIndependentCircuitBreakerConfigurations(t *testing.T) {
	enhanceCB := NewAICircuitBreaker("Enhance", breakerConfig(3, 60*time.Second, 60*time.Second, 3, 0.6), nil)
	keywordsCB := NewAICircuitBreaker("Keywords", breakerConfig(5, 30*time.Second, 45*time.Second, 2, 0.7), nil)
	suggestCB := NewAICircuitBreaker("Suggest", breakerConfig(4, 90*time.Second, 75*time.Second, 5, 0.5), nil)

	tests := []struct {
		name     string
		cb       *AICircuitBreaker
		wantName string
	}{
		{"enhance breaker", enhanceCB, "AI-Enhance"},
		{"keywords breaker", keywordsCB, "AI-Keywords"},
		{"suggest breaker", suggestCB, "AI-Suggest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := tt.cb.GetStats()

			name, ok := stats["name"].(string)
			if !ok {
				t.Fatal("Circuit breaker name not found")
			}
			if name != tt.wantName {
				t.Errorf("Expected circuit breaker name '%s', got '%s'", tt.wantName, name)
			}

			state, ok := stats["state"].(string)
			if !ok {
				t.Fatal("Circuit breaker state not found")
			}
			if state != "closed" {
				t.Errorf("Expected initial state 'closed', got '%s'", state)
			}

			if !tt.cb.IsHealthy() {
				t.Error("Circuit breaker should be healthy initially")
			}
		})
	}

	t.Run("IndependentInstances", func(t *testing.T) {
		if enhanceCB == keywordsCB || enhanceCB == suggestCB || keywordsCB == suggestCB {
			t.Error("Each operation should get its own circuit breaker instance")
		}
	})
}

func TestCircuitBreakerDisabled(t *testing.T) {
	disabledConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled: false,
		},
	}

	cb := NewAICircuitBreaker("Disabled", disabledConfig, nil)
	if cb != nil {
		t.Fatal("Circuit breaker should be nil when disabled")
	}

	// A nil breaker reports healthy and executes calls directly
	if !cb.IsHealthy() {
		t.Error("Disabled circuit breaker should report healthy")
	}

	stats := cb.GetStats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Error("Disabled circuit breaker stats should report enabled=false")
	}
}
