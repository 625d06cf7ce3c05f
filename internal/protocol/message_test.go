package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriterWritesOneLinePerMessage(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	at := time.Date(2026, 1, 2, 3, 4, 5, 600, time.UTC)

	require.NoError(t, w.Write(context.Background(), NewRecord(StreamJobRoles, map[string]string{"title": "Go <Developer>"}, at)))
	require.NoError(t, w.Write(context.Background(), NewState(StreamJobRoles)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.JSONEq(t, `{"type":"RECORD","record":{"stream":"job_roles","data":{"title":"Go <Developer>"},"emitted_at":1767323045000}}`, lines[0])
	assert.JSONEq(t, `{"type":"STATE","state":{"type":"STREAM","stream":{"stream_descriptor":{"name":"job_roles"}}}}`, lines[1])
}

func TestConnectionStatus(t *testing.T) {
	data, err := json.Marshal(NewConnectionStatus(true, ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"CONNECTION_STATUS","connectionStatus":{"status":"SUCCEEDED"}}`, string(data))
}

func TestDiscoverCatalogHasFourStreams(t *testing.T) {
	catalog := DiscoverCatalog()
	var names []string
	for _, s := range catalog.Streams {
		names = append(names, s.Name)
		assert.Equal(t, []string{"full_refresh"}, s.SupportedSyncModes)
	}
	assert.ElementsMatch(t, Streams, names)
}

type failingWriter struct{}

func (failingWriter) Write(context.Context, Message) error { return errors.New("closed") }

func TestMultiWriterStopsAtFirstError(t *testing.T) {
	rec := &Recorder{}
	m := MultiWriter{rec, failingWriter{}, rec}

	err := m.Write(context.Background(), NewState(StreamCompanies))
	assert.EqualError(t, err, "closed")
	assert.Len(t, rec.Messages, 1)
	assert.Equal(t, []string{StreamCompanies}, rec.States())
}

func TestBestEffortMirrorFailureDoesNotStopOutput(t *testing.T) {
	out := &Recorder{}
	m := MultiWriter{out, BestEffort{Name: "mirror", Writer: failingWriter{}}}

	ctx := context.Background()
	require.NoError(t, m.Write(ctx, NewRecord(StreamCompanies, map[string]string{"name": "acme"}, time.Unix(0, 0))))
	for _, s := range Streams {
		require.NoError(t, m.Write(ctx, NewState(s)))
	}

	assert.Len(t, out.Records(StreamCompanies), 1)
	assert.Equal(t, Streams, out.States())
}
