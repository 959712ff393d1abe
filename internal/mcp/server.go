package mcp

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/JTruax/BOIM-WP-MCP/internal/registry"
)

// Server owns the transport side: it frames JSON-RPC messages on a
// duplex byte stream and routes each one through the Handler. The
// registry must be frozen before Serve is called.
type Server struct {
	registry *registry.Registry
	handler  *Handler
}

func NewServer(reg *registry.Registry) *Server {
	return &Server{
		registry: reg,
		handler:  NewHandler(reg),
	}
}

// HandleRequest dispatches a single request without a transport,
// used by tests and library callers.
func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	return s.handler.Handle(ctx, req)
}

func (s *Server) Registry() *registry.Registry {
	return s.registry
}

// ServeStdio serves newline-delimited JSON-RPC on stdin/stdout until
// the stream closes or the context is cancelled. Logging goes to
// stderr; stdout carries protocol bytes only.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, &stdioPipe{in: os.Stdin, out: os.Stdout})
}

// Serve runs the protocol loop over an arbitrary duplex stream.
// Requests are handled asynchronously so a slow provider does not
// stall the read loop; response correlation by JSON-RPC id is the
// connection's job.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.PlainObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.AsyncHandler(&connHandler{server: s}))

	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.DisconnectNotify()
		return ctx.Err()
	case <-conn.DisconnectNotify():
		return nil
	}
}

type connHandler struct {
	server *Server
}

func (h *connHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params json.RawMessage
	if req.Params != nil {
		params = *req.Params
	}

	resp := h.server.handler.Handle(ctx, &Request{
		JSONRPC: "2.0",
		Method:  req.Method,
		Params:  params,
	})

	if req.Notif {
		return
	}

	if resp.Error != nil {
		rpcErr := &jsonrpc2.Error{
			Code:    int64(resp.Error.Code),
			Message: resp.Error.Message,
		}
		if err := conn.ReplyWithError(ctx, req.ID, rpcErr); err != nil {
			log.Error("failed to send error response", "method", req.Method, "error", err)
		}
		return
	}

	if err := conn.Reply(ctx, req.ID, resp.Result); err != nil {
		log.Error("failed to send response", "method", req.Method, "error", err)
	}
}

// stdioPipe joins stdin and stdout into the duplex stream jsonrpc2
// expects.
type stdioPipe struct {
	in  io.ReadCloser
	out io.WriteCloser
}

func (p *stdioPipe) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *stdioPipe) Write(b []byte) (int, error) { return p.out.Write(b) }

func (p *stdioPipe) Close() error {
	rerr := p.in.Close()
	werr := p.out.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}
