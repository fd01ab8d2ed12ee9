package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipestream/internal/types"
)

// startEventStream sets the event-stream headers and flushes them to the client.
func startEventStream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()
}

// writeEvent writes event as a single "data: <json>" frame and flushes it.
func writeEvent(w gin.ResponseWriter, event types.StreamEvent) error {
	var buf bytes.Buffer
	buf.WriteString("data: ")
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(event); err != nil {
		return err
	}
	// Encode terminates the JSON with one newline; the frame needs two.
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	w.Flush()
	return nil
}
