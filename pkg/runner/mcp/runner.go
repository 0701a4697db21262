package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/store"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Repository *journal.Repository
	Registry   *journal.Registry
	Name       string
	Version    string

	// Persistence, when set, is watched for document changes so the server
	// refreshes its snapshots when the store is written behind its back,
	// for example by the CLI while the server runs.
	Persistence store.Persistence

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
	HTTPServerCert   string
	HTTPServerKey    string
}

// Run starts the Model Context Protocol server using stdio transport.
func Run(ctx context.Context, repo *journal.Repository, reg *journal.Registry) error {
	r := Runner{
		Repository: repo,
		Registry:   reg,
		Name:       "onepct",
		Version:    "dev",
		Transport:  TransportStdio,
	}
	return r.Do(ctx)
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Repository == nil || r.Registry == nil {
		return errors.New("mcp runner requires a repository and registry")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	name := r.Name
	if name == "" {
		name = "onepct"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Record, browse, and reflect on daily journal entries via MCP."),
		server.WithRecovery(),
	)

	svc := NewService(r.Repository, r.Registry)
	registerTools(srv, svc)

	if r.Persistence != nil {
		events, err := r.Persistence.Watch(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mcp: watch store: %v\n", err)
		} else {
			go r.refresh(events)
		}
	}

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

// refresh reloads the in-memory snapshots as store documents change. It
// returns when the event channel closes.
func (r Runner) refresh(events <-chan store.Event) {
	for ev := range events {
		switch ev.Type {
		case store.EventEntriesChanged:
			reload(r.Repository.Initialize, "entries")
		case store.EventTagsChanged:
			reload(r.Registry.Initialize, "tags")
		default:
			reload(r.Repository.Initialize, "entries")
			reload(r.Registry.Initialize, "tags")
		}
	}
}

func reload(initialize func() error, what string) {
	if err := initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "mcp: reload %s: %v\n", what, err)
	}
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (r.HTTPServerCert != "" && r.HTTPServerKey == "") || (r.HTTPServerCert == "" && r.HTTPServerKey != "") {
		return errors.New("both http tls cert and key must be provided")
	}

	handler := server.NewStreamableHTTPServer(srv)

	path := r.HTTPEndpointPath
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	httpSrv := &http.Server{
		Handler: mux,
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(shutdownCtx)
		}()
	}

	if r.HTTPServerCert != "" && r.HTTPServerKey != "" {
		err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
