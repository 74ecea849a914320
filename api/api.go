package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/DE-labtory/coinmatch"
	"github.com/DE-labtory/coinmatch/option"
	kitendpoint "github.com/go-kit/kit/endpoint"
	kitlog "github.com/go-kit/kit/log"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
)

type ErrIllegalArgument struct {
	Reason string
}

func (e ErrIllegalArgument) Error() string {
	return fmt.Sprintf("err illegal argument: %s", e.Reason)
}

type endpoint struct {
	logger kitlog.Logger
}

func NewApiHandler(logger kitlog.Logger) http.Handler {
	e := &endpoint{logger: logger}
	r := mux.NewRouter()

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(encodeError),
	}

	r.Methods("GET").Path("/healthz").HandlerFunc(func(w http.ResponseWriter, request *http.Request) {
		logger.Log("method", "GET", "endpoint", "healthz")
		w.Write([]byte("up"))
	})

	r.Methods("GET").Path("/coins/{coin}/value").Handler(kithttp.NewServer(
		e.logged("valueInCents", makeValueInCentsEndpoint()),
		decodeValueInCentsRequest,
		encodeResponse,
		opts...,
	))

	r.Methods("POST").Path("/plus-one").Handler(kithttp.NewServer(
		e.logged("plusOne", makePlusOneEndpoint()),
		decodePlusOneRequest,
		encodeResponse,
		opts...,
	))

	r.Methods("POST").Path("/sort").Handler(kithttp.NewServer(
		e.logged("sort", makeSortEndpoint()),
		decodeSortRequest,
		encodeResponse,
		opts...,
	))
	return r
}

func (e *endpoint) logged(name string, next kitendpoint.Endpoint) kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		e.logger.Log("endpoint", name)

		response, err := next(ctx, request)
		if err != nil {
			e.logger.Log("endpoint", name, "err", err.Error())
		}
		return response, err
	}
}

type ValueInCentsRequest struct {
	Coin coinmatch.Coin
}

type ValueInCentsResponse struct {
	Coin  string `json:"coin"`
	Cents uint32 `json:"cents"`
}

func makeValueInCentsEndpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(ValueInCentsRequest)
		return ValueInCentsResponse{
			Coin:  req.Coin.String(),
			Cents: coinmatch.ValueInCents(req.Coin),
		}, nil
	}
}

func decodeValueInCentsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	c, err := coinmatch.ParseCoin(mux.Vars(r)["coin"])
	if err != nil {
		return nil, ErrIllegalArgument{err.Error()}
	}
	return ValueInCentsRequest{Coin: c}, nil
}

type PlusOneRequest struct {
	Value option.Option[int32] `json:"value"`
}

type PlusOneResponse struct {
	Value option.Option[int32] `json:"value"`
}

func makePlusOneEndpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(PlusOneRequest)
		return PlusOneResponse{Value: coinmatch.PlusOne(req.Value)}, nil
	}
}

func decodePlusOneRequest(_ context.Context, r *http.Request) (interface{}, error) {
	body := PlusOneRequest{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, ErrIllegalArgument{err.Error()}
	}
	return body, nil
}

type SortRequest struct {
	Coins []coinmatch.Coin
}

func makeSortEndpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(SortRequest)

		tracer := coinmatch.NewMemCacheTracer()
		sorter := coinmatch.NewSorter(tracer)
		sorter.SortAll(req.Coins)
		tracer.Trace()

		return sorter.Tally(), nil
	}
}

func decodeSortRequest(_ context.Context, r *http.Request) (interface{}, error) {
	body := struct {
		Coins []string `json:"coins"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, ErrIllegalArgument{err.Error()}
	}
	if len(body.Coins) == 0 {
		return nil, ErrIllegalArgument{"coins are empty"}
	}

	coins := make([]coinmatch.Coin, 0, len(body.Coins))
	for _, s := range body.Coins {
		c, err := coinmatch.ParseCoin(s)
		if err != nil {
			return nil, ErrIllegalArgument{err.Error()}
		}
		coins = append(coins, c)
	}
	return SortRequest{Coins: coins}, nil
}

func encodeResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

// encode errors from business-logic
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	var illegal ErrIllegalArgument
	switch {
	case errors.As(err, &illegal):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
