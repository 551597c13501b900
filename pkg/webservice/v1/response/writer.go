package response

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/jeremyhahn/go-argon2/pkg/logging"
	"github.com/jeremyhahn/go-argon2/pkg/serializer"
)

type HttpWriter interface {
	Write(w http.ResponseWriter, r *http.Request, status int, response interface{})
	Success200(w http.ResponseWriter, r *http.Request, payload interface{})
	Error400(w http.ResponseWriter, r *http.Request, err error)
	Error404(w http.ResponseWriter, r *http.Request, err error)
	Error422(w http.ResponseWriter, r *http.Request, err error, payload interface{})
	Error500(w http.ResponseWriter, r *http.Request, err error)
}

type WebServiceResponse struct {
	Code    int         `yaml:"code" json:"code"`
	Error   string      `yaml:"error" json:"error"`
	Success bool        `yaml:"success" json:"success"`
	Payload interface{} `yaml:"payload" json:"payload"`
}

type ResponseWriter struct {
	logger *logging.Logger
}

func NewResponseWriter(logger *logging.Logger) HttpWriter {
	return &ResponseWriter{logger: logger}
}

// Writes a response to the http client using the client accept header to
// determine whether to use a JSON or YAML serializer and content-type
// header. Default is JSON if a valid header can not be found.
func (writer *ResponseWriter) Write(w http.ResponseWriter, r *http.Request, status int, response interface{}) {
	serializerType := serializer.SERIALIZER_JSON
	switch strings.ToLower(r.Header.Get("accept")) {
	case "application/yaml", "text/yaml", "application/x-yaml":
		serializerType = serializer.SERIALIZER_YAML
	}
	writer.write(w, serializerType, status, response)
}

func (writer *ResponseWriter) write(
	w http.ResponseWriter,
	serializerType serializer.SerializerType,
	status int,
	response interface{}) {

	s, err := serializer.NewSerializer[interface{}](serializerType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	body, err := s.Serialize(response)
	if err != nil {
		errResponse := WebServiceResponse{
			Code:  http.StatusInternalServerError,
			Error: fmt.Sprintf("ResponseWriter failed to marshal response entity %s", reflect.TypeOf(response))}
		errBytes, _ := s.Serialize(errResponse)
		http.Error(w, string(errBytes), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType(serializerType))
	w.WriteHeader(status)
	w.Write(body)

	writer.logger.Debug("response",
		"status", status,
		"content-type", contentType(serializerType))
}

func (writer *ResponseWriter) Success200(w http.ResponseWriter, r *http.Request, payload interface{}) {
	writer.logRequest(r)
	writer.Write(w, r, http.StatusOK, WebServiceResponse{
		Code:    http.StatusOK,
		Success: true,
		Payload: payload})
}

func (writer *ResponseWriter) Error400(w http.ResponseWriter, r *http.Request, err error) {
	writer.logError(r, err)
	writer.Write(w, r, http.StatusBadRequest, WebServiceResponse{
		Code:    http.StatusBadRequest,
		Error:   err.Error(),
		Success: false,
		Payload: nil})
}

func (writer *ResponseWriter) Error404(w http.ResponseWriter, r *http.Request, err error) {
	writer.logError(r, err)
	writer.Write(w, r, http.StatusNotFound, WebServiceResponse{
		Code:    http.StatusNotFound,
		Error:   err.Error(),
		Success: false,
		Payload: nil})
}

// Writes a native library failure along with its result payload
func (writer *ResponseWriter) Error422(w http.ResponseWriter, r *http.Request, err error, payload interface{}) {
	writer.logError(r, err)
	writer.Write(w, r, http.StatusUnprocessableEntity, WebServiceResponse{
		Code:    http.StatusUnprocessableEntity,
		Error:   err.Error(),
		Success: false,
		Payload: payload})
}

func (writer *ResponseWriter) Error500(w http.ResponseWriter, r *http.Request, err error) {
	writer.logError(r, err)
	writer.Write(w, r, http.StatusInternalServerError, WebServiceResponse{
		Code:    http.StatusInternalServerError,
		Error:   err.Error(),
		Success: false,
		Payload: nil})
}

func (writer *ResponseWriter) logRequest(r *http.Request) {
	writer.logger.Debug("request",
		"url", r.URL.Path,
		"method", r.Method,
		"remoteAddress", r.RemoteAddr)
}

func (writer *ResponseWriter) logError(r *http.Request, err error) {
	writer.logger.Debug("request failed",
		"url", r.URL.Path,
		"method", r.Method,
		"remoteAddress", r.RemoteAddr,
		"error", err.Error())
}

func contentType(serializerType serializer.SerializerType) string {
	if serializerType == serializer.SERIALIZER_YAML {
		return "application/yaml"
	}
	return "application/json"
}
