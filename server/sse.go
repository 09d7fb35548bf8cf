package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"auto_blog_generator/generator"
)

// eventWriter frames events as text/event-stream and flushes each one.
type eventWriter struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func newEventWriter(w http.ResponseWriter) *eventWriter {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream; charset=utf-8")
	h.Set("Cache-Control", "no-cache, no-transform")
	h.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	return &eventWriter{w: w, rc: http.NewResponseController(w)}
}

func (e *eventWriter) Write(ev generator.Event) error {
	frame, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(frame); err != nil {
		return err
	}
	if err := e.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	return nil
}

// encodeEvent renders "event: <name>\ndata: <json>\n\n"; data fragments have no event line.
func encodeEvent(ev generator.Event) ([]byte, error) {
	var payload bytes.Buffer
	enc := json.NewEncoder(&payload)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ev.Data); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if ev.Name != "" {
		b.WriteString("event: ")
		b.WriteString(ev.Name)
		b.WriteByte('\n')
	}
	b.WriteString("data: ")
	b.Write(bytes.TrimRight(payload.Bytes(), "\n"))
	b.WriteString("\n\n")
	return b.Bytes(), nil
}
