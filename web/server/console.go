package server

import (
	"fmt"
	"time"
)

// ConsoleMessage is a single log line forwarded to the web client.
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// WebLogger mirrors render log output to a console channel so the
// web client can display it alongside the image.
type WebLogger struct {
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger that streams messages to the given channel.
func NewWebLogger(consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{consoleChan: consoleChan}
}

// Printf implements core.Logger. Messages also go to stdout for server logs.
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	fmt.Print(message)

	if wl.consoleChan == nil {
		return
	}

	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
	}:
	default:
		// Channel full, skip rather than block the render
	}
}
