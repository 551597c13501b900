package v1

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/codegangsta/negroni"
	"github.com/gorilla/mux"

	"github.com/jeremyhahn/go-argon2/pkg/logging"
	"github.com/jeremyhahn/go-argon2/pkg/webservice/v1/rest"
)

type RouterV1 struct {
	argon2Service rest.Argon2RestServicer
	logger        *logging.Logger
	router        *mux.Router
	endpointList  []string
}

func NewRouterV1(
	logger *logging.Logger,
	argon2Service rest.Argon2RestServicer,
	router *mux.Router) *RouterV1 {

	return &RouterV1{
		argon2Service: argon2Service,
		logger:        logger,
		router:        router,
		endpointList:  make([]string, 0)}
}

// Registers all REST services beneath baseURI and returns the
// sorted endpoint list
func (v1Router *RouterV1) RegisterRoutes(baseURI string) []string {

	routes := []struct {
		method  string
		path    string
		handler http.HandlerFunc
	}{
		{http.MethodPost, "/hash", v1Router.argon2Service.Hash},
		{http.MethodPost, "/context-hash", v1Router.argon2Service.ContextHash},
		{http.MethodPost, "/verify", v1Router.argon2Service.Verify},
		{http.MethodGet, "/encoded-length", v1Router.argon2Service.EncodedLength},
		{http.MethodGet, "/platform", v1Router.argon2Service.Platform},
	}

	endpointList := make([]string, 0, len(routes))
	for _, route := range routes {
		endpoint := fmt.Sprintf("%s%s", baseURI, route.path)
		v1Router.router.Handle(endpoint, negroni.New(
			negroni.HandlerFunc(v1Router.logRequest),
			negroni.Wrap(route.handler),
		)).Methods(route.method)
		endpointList = append(endpointList, fmt.Sprintf("%s %s", route.method, endpoint))
	}

	endpoints := v1Router.sortAndDeDupe(endpointList)
	v1Router.logger.Debug(strings.Join(endpoints, "\n"))
	v1Router.logger.Debugf("Loaded %d REST endpoints", len(endpoints))
	v1Router.endpointList = endpoints

	return endpoints
}

func (v1Router *RouterV1) sortAndDeDupe(endpointList []string) []string {
	uniqueList := make(map[string]bool, len(endpointList))
	for _, endpoint := range endpointList {
		uniqueList[endpoint] = true
	}
	endpoints := make([]string, 0, len(uniqueList))
	for k := range uniqueList {
		endpoints = append(endpoints, k)
	}
	sort.Strings(endpoints)
	return endpoints
}

func (v1Router *RouterV1) logRequest(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(w, r)
	v1Router.logger.Debug("handled request",
		"method", r.Method,
		"url", r.URL.Path,
		"duration", time.Since(start).String())
}
