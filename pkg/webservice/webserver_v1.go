package webservice

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/codegangsta/negroni"
	"github.com/gorilla/mux"

	"github.com/jeremyhahn/go-argon2/pkg/config"
	"github.com/jeremyhahn/go-argon2/pkg/logging"
	"github.com/jeremyhahn/go-argon2/pkg/webservice/v1/rest"

	v1 "github.com/jeremyhahn/go-argon2/pkg/webservice/v1"
)

const (
	BaseURI = "/api/v1"
)

var (
	ErrBindPort = errors.New("webserver: unable to bind to web service port")
)

type WebServerV1 struct {
	config        config.WebService
	endpointList  []string
	httpServer    *http.Server
	listener      net.Listener
	logger        *logging.Logger
	argon2Service rest.Argon2RestServicer
	router        *mux.Router
	mutex         sync.Mutex
}

func NewWebServerV1(
	logger *logging.Logger,
	config config.WebService,
	argon2Service rest.Argon2RestServicer) *WebServerV1 {

	webserver := &WebServerV1{
		config:        config,
		endpointList:  make([]string, 0),
		logger:        logger,
		argon2Service: argon2Service,
		router:        mux.NewRouter().StrictSlash(true),
	}
	webserver.buildRoutes()

	n := negroni.New(negroni.NewRecovery())
	n.UseHandler(webserver.router)

	webserver.httpServer = &http.Server{
		Handler:      n,
		IdleTimeout:  seconds(config.IdleTimeout),
		ReadTimeout:  seconds(config.ReadTimeout),
		WriteTimeout: seconds(config.WriteTimeout),
	}
	return webserver
}

// Returns the http.Handler serving the REST API
func (server *WebServerV1) Handler() http.Handler {
	return server.httpServer.Handler
}

// Returns the registered endpoints, ex: POST /api/v1/hash
func (server *WebServerV1) Endpoints() []string {
	return server.endpointList
}

// Binds the configured address. Separate from Serve so callers learn
// about bind failures before serving.
func (server *WebServerV1) Listen() (net.Addr, error) {
	listener, err := net.Listen("tcp", server.config.Address())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBindPort, server.config.Address(), err)
	}
	server.mutex.Lock()
	server.listener = listener
	server.mutex.Unlock()
	server.logger.Info("webserver: listening", "address", listener.Addr().String())
	return listener.Addr(), nil
}

// Serves requests until ctx is cancelled, then shuts down gracefully
func (server *WebServerV1) Serve(ctx context.Context) error {
	server.mutex.Lock()
	listener := server.listener
	server.mutex.Unlock()
	if listener == nil {
		if _, err := server.Listen(); err != nil {
			return err
		}
		listener = server.listener
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.httpServer.Serve(listener)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	server.logger.Info("webserver: shutting down")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), seconds(server.config.ShutdownTimeout))
	defer cancel()
	if err := server.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (server *WebServerV1) buildRoutes() {
	server.endpointList = v1.NewRouterV1(
		server.logger,
		server.argon2Service,
		server.router).RegisterRoutes(BaseURI)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
