// Package protocol holds the messages of the ingestion protocol. Each
// message is one JSON object per line on stdout.
package protocol

import (
	"time"
)

type Type string

const (
	TypeRecord           Type = "RECORD"
	TypeState            Type = "STATE"
	TypeCatalog          Type = "CATALOG"
	TypeConnectionStatus Type = "CONNECTION_STATUS"
	TypeSpec             Type = "SPEC"
)

const (
	StreamJobRoles         = "job_roles"
	StreamCompanies        = "companies"
	StreamJobOpenings      = "job_openings"
	StreamRecruiterDetails = "recruiter_details"
)

// Streams lists every stream in the order checkpoints are written.
var Streams = []string{
	StreamCompanies,
	StreamJobOpenings,
	StreamRecruiterDetails,
	StreamJobRoles,
}

type Message struct {
	Type             Type              `json:"type"`
	Record           *Record           `json:"record,omitempty"`
	State            *State            `json:"state,omitempty"`
	Catalog          *Catalog          `json:"catalog,omitempty"`
	ConnectionStatus *ConnectionStatus `json:"connectionStatus,omitempty"`
	Spec             *Spec             `json:"spec,omitempty"`
}

type Record struct {
	Stream    string `json:"stream"`
	Data      any    `json:"data"`
	EmittedAt int64  `json:"emitted_at"`
}

type StreamDescriptor struct {
	Name string `json:"name"`
}

type StreamState struct {
	StreamDescriptor StreamDescriptor `json:"stream_descriptor"`
}

type State struct {
	Type   string       `json:"type"`
	Stream *StreamState `json:"stream,omitempty"`
}

type ConnectionStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// EmittedAt converts t to the protocol timestamp: whole seconds in milliseconds.
func EmittedAt(t time.Time) int64 {
	return t.Unix() * 1000
}

func NewRecord(stream string, data any, at time.Time) Message {
	return Message{
		Type: TypeRecord,
		Record: &Record{
			Stream:    stream,
			Data:      data,
			EmittedAt: EmittedAt(at),
		},
	}
}

// NewState builds a stream-scoped checkpoint. It carries no cursor.
func NewState(stream string) Message {
	return Message{
		Type: TypeState,
		State: &State{
			Type: "STREAM",
			Stream: &StreamState{
				StreamDescriptor: StreamDescriptor{Name: stream},
			},
		},
	}
}

func NewConnectionStatus(ok bool, msg string) Message {
	status := "SUCCEEDED"
	if !ok {
		status = "FAILED"
	}
	return Message{
		Type:             TypeConnectionStatus,
		ConnectionStatus: &ConnectionStatus{Status: status, Message: msg},
	}
}
