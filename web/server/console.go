package server

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// ConsoleLog keeps the most recent render messages for /api/console
type ConsoleLog struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
}

// NewConsoleLog creates a console holding at most limit messages
func NewConsoleLog(limit int) *ConsoleLog {
	return &ConsoleLog{limit: max(limit, 1)}
}

// Append adds a message, dropping the oldest when full
func (c *ConsoleLog) Append(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.limit; over > 0 {
		c.messages = append(c.messages[:0], c.messages[over:]...)
	}
}

// Messages returns a copy of the buffered messages, oldest first
func (c *ConsoleLog) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

// WebLogger implements core.Logger by recording messages in a console log
type WebLogger struct {
	renderID string
	console  *ConsoleLog
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, console *ConsoleLog) core.Logger {
	return &WebLogger{
		renderID: renderID,
		console:  console,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to the server log
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	if wl.console != nil {
		wl.console.Append(ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     levelOf(message),
		})
	}
}

// levelOf derives a level from the [INFO]/[WARN]/[ERROR] message prefix
func levelOf(message string) string {
	switch {
	case strings.HasPrefix(message, "[ERROR]"):
		return "error"
	case strings.HasPrefix(message, "[WARN]"):
		return "warning"
	default:
		return "info"
	}
}
