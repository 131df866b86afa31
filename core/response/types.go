package response

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
)

// DataType selects how the body is produced.
type DataType string

const (
	DataRaw   DataType = "raw"
	DataJSON  DataType = "json"
	DataError DataType = "error"
)

// Kind classifies the route that produced a response. It only affects the
// inferred Content-Type of raw bodies.
type Kind uint8

const (
	KindAPI Kind = iota
	KindWeb
)

func (k Kind) String() string {
	if k == KindWeb {
		return "web"
	}
	return "api"
}

// Transfer tells the transport how to deliver the prepared response.
type Transfer string

const (
	TransferNone   Transfer = "none"
	TransferFile   Transfer = "file"
	TransferStream Transfer = "stream"
	TransferSocket Transfer = "socket"
)

// SocketHandler runs a WebSocket session after the transport upgraded the
// connection. The context is the request context.
type SocketHandler func(ctx context.Context, conn *websocket.Conn) error

// ErrorDetail is the structured form accepted by SetError.
type ErrorDetail struct {
	Code      string     `json:"code,omitempty"`
	Message   string     `json:"message,omitempty"`
	Data      any        `json:"data,omitempty"`
	Timestamp *time.Time `json:"timeStamp,omitempty"`
}
