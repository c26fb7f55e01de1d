// Package handler exposes the analytics API over HTTP. The envelope
// shapes differ per entity and are kept exactly as documented: the
// anomaly and plant endpoints wrap records in "data", the pattern and
// insight endpoints use a named list plus pagination echo fields.
package handler

import (
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/zhar97/solar-om-analytics/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// statusFor maps a domain error to its HTTP status. Failures still
// carry the envelope body so clients read one shape everywhere.
func statusFor(err error) int {
	switch {
	case domain.IsNotFound(err):
		return consts.StatusNotFound
	case domain.IsInvalidInput(err):
		return consts.StatusBadRequest
	case domain.IsNoData(err):
		return consts.StatusOK
	default:
		return consts.StatusInternalServerError
	}
}

// userMessage extracts the client-safe message from an error.
func userMessage(err error) string {
	if de, ok := err.(*domain.DomainError); ok {
		return de.UserMessage()
	}
	return "an error occurred"
}

// pageParams reads and clamps skip/limit. Values outside the allowed
// ranges are rejected rather than silently fixed, matching the
// validation the API has always had.
func pageParams(c *app.RequestContext) (skip, limit int, err error) {
	skip, err = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return 0, 0, domain.NewInvalidInputError("skip must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, domain.NewInvalidInputError("limit must be between 1 and 1000")
	}

	return skip, limit, nil
}

// minConfidenceParam reads min_confidence, accepting 0-100.
func minConfidenceParam(c *app.RequestContext) (int, error) {
	raw := c.DefaultQuery("min_confidence", "0")
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || v > 100 {
		return 0, domain.NewInvalidInputError("min_confidence must be between 0 and 100")
	}
	return v, nil
}

type anomalyEnvelope struct {
	Success   bool             `json:"success"`
	Data      []domain.Anomaly `json:"data"`
	Total     int              `json:"total,omitempty"`
	Error     string           `json:"error,omitempty"`
	ErrorCode string           `json:"error_code,omitempty"`
}

func anomalySuccess(c *app.RequestContext, anomalies []domain.Anomaly, total int) {
	if anomalies == nil {
		anomalies = []domain.Anomaly{}
	}
	c.JSON(consts.StatusOK, anomalyEnvelope{Success: true, Data: anomalies, Total: total})
}

func anomalyFailure(c *app.RequestContext, err error) {
	c.JSON(statusFor(err), anomalyEnvelope{
		Success:   false,
		Data:      []domain.Anomaly{},
		Error:     userMessage(err),
		ErrorCode: domain.Code(err),
	})
}

type patternEnvelope struct {
	Success   bool             `json:"success"`
	Patterns  []domain.Pattern `json:"patterns"`
	Total     int              `json:"total"`
	Skip      int              `json:"skip,omitempty"`
	Limit     int              `json:"limit,omitempty"`
	Error     string           `json:"error,omitempty"`
	ErrorCode string           `json:"error_code,omitempty"`
}

func patternSuccess(c *app.RequestContext, patterns []domain.Pattern, total, skip, limit int) {
	if patterns == nil {
		patterns = []domain.Pattern{}
	}
	c.JSON(consts.StatusOK, patternEnvelope{
		Success:  true,
		Patterns: patterns,
		Total:    total,
		Skip:     skip,
		Limit:    limit,
	})
}

func patternFailure(c *app.RequestContext, err error) {
	c.JSON(statusFor(err), patternEnvelope{
		Success:   false,
		Patterns:  []domain.Pattern{},
		Error:     userMessage(err),
		ErrorCode: domain.Code(err),
	})
}

type insightEnvelope struct {
	Success   bool             `json:"success"`
	Insights  []domain.Insight `json:"insights"`
	Total     int              `json:"total"`
	Skip      int              `json:"skip,omitempty"`
	Limit     int              `json:"limit,omitempty"`
	Error     string           `json:"error,omitempty"`
	ErrorCode string           `json:"error_code,omitempty"`
}

func insightSuccess(c *app.RequestContext, insights []domain.Insight, total, skip, limit int) {
	if insights == nil {
		insights = []domain.Insight{}
	}
	c.JSON(consts.StatusOK, insightEnvelope{
		Success:  true,
		Insights: insights,
		Total:    total,
		Skip:     skip,
		Limit:    limit,
	})
}

func insightFailure(c *app.RequestContext, err error) {
	c.JSON(statusFor(err), insightEnvelope{
		Success:   false,
		Insights:  []domain.Insight{},
		Error:     userMessage(err),
		ErrorCode: domain.Code(err),
	})
}

type plantEnvelope struct {
	Success   bool           `json:"success"`
	Data      []domain.Plant `json:"data"`
	Error     string         `json:"error,omitempty"`
	ErrorCode string         `json:"error_code,omitempty"`
}

func plantSuccess(c *app.RequestContext, plants []domain.Plant) {
	if plants == nil {
		plants = []domain.Plant{}
	}
	c.JSON(consts.StatusOK, plantEnvelope{Success: true, Data: plants})
}

func plantFailure(c *app.RequestContext, err error) {
	c.JSON(statusFor(err), plantEnvelope{
		Success:   false,
		Data:      []domain.Plant{},
		Error:     userMessage(err),
		ErrorCode: domain.Code(err),
	})
}
