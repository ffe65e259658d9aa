package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Skufu/GoSymptom/internal/diagnosis"
	"github.com/Skufu/GoSymptom/internal/knowledge"
	"github.com/Skufu/GoSymptom/internal/store"
)

const (
	recordTimeout    = 2 * time.Second
	defaultStatsDays = 7
	maxStatsDays     = 365
	statsLimit       = 10
)

type DiagnoseRequest struct {
	Symptoms       []string `json:"symptoms" binding:"required,min=1,dive,nonblank"`
	Duration       string   `json:"duration" binding:"required,duration_bucket"`
	Severity       *int     `json:"severity" binding:"required,min=1,max=10"`
	AdditionalInfo string   `json:"additionalInfo"`
}

type DiagnoseResponse struct {
	*diagnosis.Result
	RequestID string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type handlers struct {
	engine    *diagnosis.Engine
	kb        *knowledge.Base
	recorder  store.Recorder
	dbEnabled bool
	log       *zap.Logger
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerValidations(v)
	}
}

func registerValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("duration_bucket", func(fl validator.FieldLevel) bool {
		_, ok := diagnosis.ParseDuration(fl.Field().String())
		return ok
	})
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"message":    "Symptom checker API is running",
		"conditions": h.kb.Len(),
		"timestamp":  time.Now().UTC(),
	})
}

func (h *handlers) ready(c *gin.Context) {
	if !h.dbEnabled {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.recorder.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

func (h *handlers) listSymptoms(c *gin.Context) {
	symptoms := h.kb.Symptoms()
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"symptoms": symptoms,
		"count":    len(symptoms),
	})
}

func (h *handlers) listDiseases(c *gin.Context) {
	diseases := h.kb.Summaries()
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"diseases": diseases,
		"count":    len(diseases),
	})
}

func (h *handlers) getDisease(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Disease id must be numeric"})
		return
	}

	disease, err := h.kb.ByID(id)
	if errors.Is(err, knowledge.ErrConditionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Disease not found"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "disease": disease})
}

func (h *handlers) diagnose(c *gin.Context) {
	var req DiagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "validation_failed",
				"details": validationMessages(verrs),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	duration, _ := diagnosis.ParseDuration(req.Duration)
	result, err := h.engine.Diagnose(diagnosis.Query{
		Symptoms: req.Symptoms,
		Duration: duration,
		Severity: *req.Severity,
		Note:     req.AdditionalInfo,
	})
	if errors.Is(err, diagnosis.ErrNoSymptoms) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No symptoms provided"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error during diagnosis"})
		return
	}

	requestID := c.GetString(requestIDKey)
	flags := redFlagKinds(result.Results.RedFlags)
	h.log.Info("diagnosis completed",
		zap.String("request_id", requestID),
		zap.Int("symptoms", result.InputData.SymptomCount),
		zap.Int("matches", result.Results.TotalMatches),
		zap.Strings("red_flags", flags),
	)

	h.record(c.Request.Context(), requestID, result, flags)

	c.JSON(http.StatusOK, DiagnoseResponse{
		Result:    result,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	})
}

// record stores an audit entry. Failures are logged and never reach the client.
func (h *handlers) record(ctx context.Context, requestID string, result *diagnosis.Result, flags []string) {
	if !h.dbEnabled {
		return
	}

	entry := store.Entry{
		Symptoms:   result.InputData.Symptoms,
		Duration:   string(result.InputData.Duration),
		Severity:   result.InputData.Severity,
		RedFlags:   flags,
		MatchCount: result.Results.TotalMatches,
	}
	if top := result.Results.PrimaryDiagnoses; len(top) > 0 {
		entry.TopCondition = top[0].Name
		entry.TopConfidence = top[0].Confidence
	}

	ctx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	if err := h.recorder.Record(ctx, entry); err != nil {
		h.log.Warn("failed to record diagnosis",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (h *handlers) stats(c *gin.Context) {
	days := defaultStatsDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxStatsDays {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   fmt.Sprintf("days must be between 1 and %d", maxStatsDays),
			})
			return
		}
		days = n
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	counts, err := h.recorder.TopConditions(c.Request.Context(), since, statsLimit)
	if errors.Is(err, store.ErrDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Statistics require ENABLE_DB=true"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}
	if counts == nil {
		counts = []store.ConditionCount{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"days":          days,
		"topConditions": counts,
	})
}

func validationMessages(verrs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, validationMessage(fe))
	}
	return msgs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Field() == "symptoms" {
			return "symptoms must not be empty"
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "nonblank":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "duration_bucket":
		return fmt.Sprintf("duration must be one of %s", durationChoices())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func durationChoices() string {
	labels := make([]string, 0, len(diagnosis.Durations()))
	for _, d := range diagnosis.Durations() {
		labels = append(labels, fmt.Sprintf("%q", d))
	}
	return strings.Join(labels, ", ")
}

func redFlagKinds(flags []diagnosis.RedFlag) []string {
	kinds := make([]string, 0, len(flags))
	for _, f := range flags {
		kinds = append(kinds, string(f.Type))
	}
	return kinds
}
