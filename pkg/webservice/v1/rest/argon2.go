package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jeremyhahn/go-argon2/pkg/app"
	"github.com/jeremyhahn/go-argon2/pkg/argon2"
	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
	"github.com/jeremyhahn/go-argon2/pkg/logging"
	"github.com/jeremyhahn/go-argon2/pkg/webservice/v1/response"
)

type Argon2RestServicer interface {
	Hash(w http.ResponseWriter, r *http.Request)
	ContextHash(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	EncodedLength(w http.ResponseWriter, r *http.Request)
	Platform(w http.ResponseWriter, r *http.Request)
}

type Argon2RestService struct {
	hasher     *argon2.Argon2
	platform   func() (app.PlatformInfo, error)
	httpWriter response.HttpWriter
	logger     *logging.Logger
}

func NewArgon2RestService(
	hasher *argon2.Argon2,
	platform func() (app.PlatformInfo, error),
	httpWriter response.HttpWriter,
	logger *logging.Logger) Argon2RestServicer {

	return &Argon2RestService{
		hasher:     hasher,
		platform:   platform,
		httpWriter: httpWriter,
		logger:     logger}
}

// Hashes the password, writing the encoded hash or the raw digest
func (restService *Argon2RestService) Hash(w http.ResponseWriter, r *http.Request) {
	var request HashRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		restService.httpWriter.Error400(w, r, err)
		return
	}
	ctx, err := restService.context(request.ContextRequest)
	if err != nil {
		restService.httpWriter.Error400(w, r, err)
		return
	}
	mode := argon2.EncodedOutput
	if request.Raw {
		mode = argon2.RawOutput
	}
	result, err := restService.hasher.HashString(request.Password, request.Salt, &ctx, mode)
	restService.writeHashResult(w, r, result, err)
}

// Hashes the password with optional secret and associated data
func (restService *Argon2RestService) ContextHash(w http.ResponseWriter, r *http.Request) {
	var request ContextHashRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		restService.httpWriter.Error400(w, r, err)
		return
	}
	ctx, err := restService.context(request.ContextRequest)
	if err != nil {
		restService.httpWriter.Error400(w, r, err)
		return
	}
	if request.Secret != "" {
		ctx.Secret = []byte(request.Secret)
	}
	if request.AssociatedData != "" {
		ctx.AssociatedData = []byte(request.AssociatedData)
	}
	result, err := restService.hasher.ContextHash(
		[]byte(request.Password), []byte(request.Salt), &ctx)
	restService.writeHashResult(w, r, result, err)
}

// Verifies a password against an encoded hash. A mismatch is a
// successful request with a false verification result.
func (restService *Argon2RestService) Verify(w http.ResponseWriter, r *http.Request) {
	var request VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		restService.httpWriter.Error400(w, r, err)
		return
	}
	variant := restService.hasher.Defaults().Type
	if request.Type != "" {
		t, err := native.ParseType(request.Type)
		if err != nil {
			restService.httpWriter.Error400(w, r, err)
			return
		}
		variant = t
	}
	result, err := restService.hasher.VerifyString(request.Password, request.Encoded, variant)
	if err != nil {
		restService.httpWriter.Error400(w, r, err)
		return
	}
	if result.Error != "" {
		restService.httpWriter.Error422(w, r,
			&argon2.NativeError{Result: result.Status}, result)
		return
	}
	restService.httpWriter.Success200(w, r, result)
}

// Writes the encoded hash buffer length for the query parameters
// t, m, p, salt_len, hash_len and type
func (restService *Argon2RestService) EncodedLength(w http.ResponseWriter, r *http.Request) {
	defaults := restService.hasher.Defaults()
	query := r.URL.Query()

	params := []struct {
		name  string
		value *uint32
	}{
		{"t", &defaults.TimeCost},
		{"m", &defaults.MemoryCost},
		{"p", &defaults.Parallelism},
		{"salt_len", &defaults.SaltLength},
		{"hash_len", &defaults.HashLength},
	}
	for _, param := range params {
		v := query.Get(param.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			restService.httpWriter.Error400(w, r,
				fmt.Errorf("%w: %s: %w", argon2.ErrInvalidArgument, param.name, err))
			return
		}
		*param.value = uint32(n)
	}
	if name := query.Get("type"); name != "" {
		t, err := native.ParseType(name)
		if err != nil {
			restService.httpWriter.Error400(w, r, err)
			return
		}
		defaults.Type = t
	}

	length := restService.hasher.EncodedLength(
		defaults.TimeCost,
		defaults.MemoryCost,
		defaults.Parallelism,
		defaults.SaltLength,
		defaults.HashLength,
		defaults.Type)
	if length == 0 {
		restService.httpWriter.Error400(w, r,
			&argon2.NativeError{Result: native.ResultIncorrectType})
		return
	}
	restService.httpWriter.Success200(w, r, EncodedLengthResponse{Length: uint64(length)})
}

// Writes the resolved platform, binary path and bound library
func (restService *Argon2RestService) Platform(w http.ResponseWriter, r *http.Request) {
	info, err := restService.platform()
	if err != nil {
		restService.httpWriter.Error500(w, r, err)
		return
	}
	restService.httpWriter.Success200(w, r, info)
}

// Merges the request parameters over the server defaults
func (restService *Argon2RestService) context(request ContextRequest) (argon2.Context, error) {
	ctx := restService.hasher.Defaults()
	if request.TimeCost > 0 {
		ctx.TimeCost = request.TimeCost
	}
	if request.MemoryCost > 0 {
		ctx.MemoryCost = request.MemoryCost
	}
	if request.Parallelism > 0 {
		ctx.Parallelism = request.Parallelism
	}
	if request.SaltLength > 0 {
		ctx.SaltLength = request.SaltLength
	}
	if request.HashLength > 0 {
		ctx.HashLength = request.HashLength
	}
	if request.Version > 0 {
		ctx.Version = argon2.Version(request.Version)
	}
	if request.Type != "" {
		t, err := native.ParseType(request.Type)
		if err != nil {
			return argon2.Context{}, err
		}
		ctx.Type = t
	}
	return ctx, nil
}

func (restService *Argon2RestService) writeHashResult(
	w http.ResponseWriter,
	r *http.Request,
	result argon2.HashResult,
	err error) {

	if err != nil {
		restService.httpWriter.Error400(w, r, err)
		return
	}
	if !result.OK() {
		restService.httpWriter.Error422(w, r, result.Err(), NewHashResponse(result))
		return
	}
	restService.httpWriter.Success200(w, r, NewHashResponse(result))
}
