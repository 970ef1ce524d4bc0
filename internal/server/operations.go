package server

import (
	"net/http"
	"strings"

	"resumeforge/internal/ai"
	"resumeforge/internal/ats"
	"resumeforge/internal/config"
	"resumeforge/internal/enhance"
	"resumeforge/internal/keywords"
	"resumeforge/internal/observability"
	"resumeforge/internal/suggest"
	"resumeforge/internal/templates"
	"resumeforge/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// aiProvider builds the AI provider for one operation. A missing key or
// provider failure returns nil; callers hand nil to the operation packages,
// which fall back to their deterministic paths.
func (s *Server) aiProvider(opCfg config.OperationAIConfig, operation string) ai.AIProvider {
	service, err := ai.NewService(&opCfg, operation, s.Logger)
	if err != nil {
		s.Logger.Debug("AI unavailable, operation will use fallback",
			"operation", operation, "error", err)
		return nil
	}
	return service.Provider
}

// createRenderHandler wraps the render handler with observability
func (s *Server) createRenderHandler(om *observability.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.render")
		defer span.End()

		var req RenderRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		templateName := req.Template
		if templateName == "" {
			templateName = "modern"
		}

		span.SetAttributes(
			attribute.String("template", templateName),
			attribute.Bool("dark_mode", req.DarkMode),
			attribute.String("operation", "render"),
		)

		resumeText, err := templates.Render(templateName, req.Fields, req.DarkMode)
		if err != nil {
			span.RecordError(err)
			metrics := om.GetMetrics()
			metrics.RecordOperation(ctx, metrics.ResumesRendered, false)
			writeErrorResponse(w, "Failed to render resume", err.Error(), http.StatusInternalServerError)
			return
		}

		s.History.Append(req.Fields, templateName, resumeText)

		metrics := om.GetMetrics()
		metrics.RecordOperation(ctx, metrics.ResumesRendered, true,
			attribute.String("template", templateName))
		span.SetAttributes(attribute.Bool("success", true))

		writeJSONResponse(w, RenderResponse{ResumeText: resumeText, Template: templateName})
	}
}

// createEnhanceHandler wraps the enhance handler with observability
func (s *Server) createEnhanceHandler(om *observability.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.enhance")
		defer span.End()

		var req EnhanceRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Content) == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing content", "content field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.content_length", len(req.Content)),
			attribute.Bool("use_ai", req.UseAI),
			attribute.String("operation", "enhance"),
		)

		var provider enhance.Provider
		if req.UseAI {
			provider = s.aiProvider(s.AppConfig.GetEnhanceConfig(), "enhance")
		}

		result := enhance.NewEnhancer(provider, s.Logger).Run(ctx, req.Content, req.JobRole, req.UseAI)

		metrics := om.GetMetrics()
		metrics.RecordOperation(ctx, metrics.TextsEnhanced, true,
			attribute.Bool("ai_used", result.AIUsed))
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Bool("ai_used", result.AIUsed),
			attribute.Int("corrections", len(result.Corrections)),
			attribute.Int("enhancements", len(result.Enhancements)),
		)

		writeJSONResponse(w, result)
	}
}

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.ResumeText) == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		var jobKeywords []string
		if strings.TrimSpace(req.JobDescription) != "" {
			jobKeywords = keywords.ExtractHeuristic(req.JobDescription)
		}

		report := ats.Score(req.ResumeText, jobKeywords)

		metrics := om.GetMetrics()
		metrics.RecordOperation(ctx, metrics.ResumesScored, true,
			attribute.Int("score", report.Overall))
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.overall", report.Overall),
			attribute.Bool("keywords_provided", jobKeywords != nil),
		)

		writeJSONResponse(w, report)
	}
}

// createKeywordsHandler wraps the keywords handler with observability
func (s *Server) createKeywordsHandler(om *observability.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.keywords")
		defer span.End()

		var req KeywordsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "keywords"),
		)

		var provider keywords.Provider
		if p := s.aiProvider(s.AppConfig.GetKeywordsConfig(), "keywords"); p != nil {
			provider = p
		}
		extracted := keywords.NewExtractor(provider, s.Logger).Extract(ctx, req.JobDescription)

		metrics := om.GetMetrics()
		metrics.RecordOperation(ctx, metrics.KeywordsExtracted, true,
			attribute.Int("keyword_count", len(extracted)))
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("keyword_count", len(extracted)),
		)

		writeJSONResponse(w, types.SuggestKeywordsOutput{Keywords: extracted})
	}
}

// createSuggestHandler wraps the suggest handler with observability
func (s *Server) createSuggestHandler(om *observability.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeforge.api")
		ctx, span := tracer.Start(ctx, "api.suggest")
		defer span.End()

		var req SuggestRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobRole) == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job role", "jobRole field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("job_role", req.JobRole),
			attribute.String("operation", "suggest"),
		)

		var provider suggest.Provider
		if p := s.aiProvider(s.AppConfig.GetSuggestConfig(), "suggest"); p != nil {
			provider = p
		}
		output := suggest.NewSuggester(provider, s.Logger).Suggest(ctx, types.SuggestContentInput{
			JobRole:         req.JobRole,
			Company:         req.Company,
			YearsExperience: req.YearsExperience,
			BulletCount:     req.BulletCount,
		})

		metrics := om.GetMetrics()
		metrics.RecordOperation(ctx, metrics.SuggestionsServed, true,
			attribute.String("job_role", req.JobRole))
		span.SetAttributes(attribute.Bool("success", true))

		writeJSONResponse(w, output)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.Manager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordOperation(r.Context(), metrics.RateLimitHits, true,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
