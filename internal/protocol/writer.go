package protocol

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Writer receives every message the connector produces.
type Writer interface {
	Write(ctx context.Context, msg Message) error
}

// JSONWriter writes one JSON document per line.
type JSONWriter struct {
	enc   *json.Encoder
	flush func()
}

func NewJSONWriter(w io.Writer) *JSONWriter {
	jw := &JSONWriter{enc: json.NewEncoder(w)}
	jw.enc.SetEscapeHTML(false)
	if f, ok := w.(http.Flusher); ok {
		jw.flush = f.Flush
	}
	return jw
}

func (w *JSONWriter) Write(_ context.Context, msg Message) error {
	if err := w.enc.Encode(msg); err != nil {
		return fmt.Errorf("failed to encode %s message: %w", msg.Type, err)
	}
	if w.flush != nil {
		w.flush()
	}
	return nil
}

// MultiWriter fans every message out to all writers, stopping at the first error.
type MultiWriter []Writer

func (m MultiWriter) Write(ctx context.Context, msg Message) error {
	for _, w := range m {
		if err := w.Write(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

// BestEffort wraps an optional sink. A failed write is logged and swallowed
// so the primary output keeps flowing.
type BestEffort struct {
	Name   string
	Writer Writer
}

func (b BestEffort) Write(ctx context.Context, msg Message) error {
	if err := b.Writer.Write(ctx, msg); err != nil {
		log.Printf("⚠️ %s write failed, continuing: %v", b.Name, err)
	}
	return nil
}

// Recorder keeps messages in memory.
type Recorder struct {
	Messages []Message
}

func (r *Recorder) Write(_ context.Context, msg Message) error {
	r.Messages = append(r.Messages, msg)
	return nil
}

// Records returns the data of every record written to stream, in order.
func (r *Recorder) Records(stream string) []any {
	var out []any
	for _, m := range r.Messages {
		if m.Type == TypeRecord && m.Record.Stream == stream {
			out = append(out, m.Record.Data)
		}
	}
	return out
}

// States returns the stream names of every checkpoint, in order.
func (r *Recorder) States() []string {
	var out []string
	for _, m := range r.Messages {
		if m.Type == TypeState {
			out = append(out, m.State.Stream.StreamDescriptor.Name)
		}
	}
	return out
}
