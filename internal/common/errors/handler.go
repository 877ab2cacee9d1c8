// internal/common/errors/handler.go
package errors

import (
	"sync"
	"time"
)

// Logger is the minimal logging surface the collector needs.
type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Collector accumulates non-fatal errors raised during a scan so they can
// be surfaced as response warnings. Pipeline stages run concurrently, so
// it is safe for use from multiple goroutines.
type Collector struct {
	logger Logger

	mu       sync.Mutex
	warnings []*StandardError
}

func NewCollector(logger Logger) *Collector {
	return &Collector{logger: logger}
}

// Collect normalizes err, logs it, and records it as a scan warning.
func (c *Collector) Collect(err error) {
	stdErr := c.normalizeError(err)
	c.logError(stdErr)

	c.mu.Lock()
	c.warnings = append(c.warnings, stdErr)
	c.mu.Unlock()
}

// Warnings returns the collected errors in arrival order.
func (c *Collector) Warnings() []*StandardError {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*StandardError, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Messages renders the collected errors as response warning strings.
func (c *Collector) Messages() []string {
	warnings := c.Warnings()
	msgs := make([]string, 0, len(warnings))
	for _, w := range warnings {
		msg := string(w.Code) + ": " + w.Message
		if w.Details != "" {
			msg += " (" + w.Details + ")"
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// HasCode reports whether any collected warning carries the given code.
func (c *Collector) HasCode(code ErrorCode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range c.warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// normalizeError ensures we always have a StandardError
func (c *Collector) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (c *Collector) logError(stdErr *StandardError) {
	fields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
	}
	if stdErr.Retryable {
		c.logger.Error(stdErr.Message, fields)
	} else {
		c.logger.Warn(stdErr.Message, fields)
	}
}
