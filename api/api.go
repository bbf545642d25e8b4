// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ChainSafe/bridge-connector/connector/route"
	"github.com/ChainSafe/bridge-connector/store"
	"github.com/ChainSafe/bridge-connector/types"
	ethav "github.com/KOREAN139/ethereum-address-validator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Bridger interface {
	Bridge(req *types.BridgeRequest) (*common.Hash, error)
	Routes() []route.Route
	LocalChainID() uint64
}

type OperationStorer interface {
	StoreOperation(op *store.Operation) error
	Operation(id uuid.UUID) (*store.Operation, error)
}

// BridgeRequest is the JSON body of POST /bridge. Amounts are decimal or
// 0x prefixed hex strings.
type BridgeRequest struct {
	Protocol           types.Protocol        `json:"protocol"`
	DestinationChainID uint64                `json:"destinationChainId"`
	Asset              string                `json:"asset"`
	AmountIn           *math.HexOrDecimal256 `json:"amountIn"`
	MinAmountOut       *math.HexOrDecimal256 `json:"minAmountOut"`
	Recipient          string                `json:"recipient"`
	Data               hexutil.Bytes         `json:"data"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type RoutesResponse struct {
	LocalChainID uint64        `json:"localChainId"`
	Routes       []route.Route `json:"routes"`
}

type Handler struct {
	connector Bridger
	store     OperationStorer
}

func NewHandler(connector Bridger, store OperationStorer) *Handler {
	return &Handler{
		connector: connector,
		store:     store,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/bridge", h.Bridge)
	r.Get("/operations/{id}", h.Operation)
	r.Get("/routes", h.Routes)
	return r
}

// Bridge dispatches a single bridge request and records its outcome as an operation
func (h *Handler) Bridge(w http.ResponseWriter, r *http.Request) {
	var body BridgeRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		responseJSON(w, &ErrorResponse{Status: "error", Message: "Cannot unmarshal input JSON"}, http.StatusBadRequest)
		return
	}

	if err := validateAddress(body.Asset); err != nil {
		responseJSON(w, &ErrorResponse{Status: "error", Field: "asset", Message: err.Error()}, http.StatusBadRequest)
		return
	}
	if err := validateAddress(body.Recipient); err != nil {
		responseJSON(w, &ErrorResponse{Status: "error", Field: "recipient", Message: err.Error()}, http.StatusBadRequest)
		return
	}
	if body.AmountIn == nil {
		responseJSON(w, &ErrorResponse{Status: "error", Field: "amountIn", Message: "amountIn must be provided"}, http.StatusBadRequest)
		return
	}

	req := &types.BridgeRequest{
		Protocol:           body.Protocol,
		DestinationChainID: body.DestinationChainID,
		Asset:              common.HexToAddress(body.Asset),
		AmountIn:           toBigInt(body.AmountIn),
		MinAmountOut:       toBigInt(body.MinAmountOut),
		Recipient:          common.HexToAddress(body.Recipient),
		Data:               body.Data,
	}

	op := store.NewOperation(req)
	if err := h.store.StoreOperation(op); err != nil {
		log.Error().Err(err).Msgf("Failed storing operation %s", op.ID)
		responseJSON(w, &ErrorResponse{Status: "error", Message: "Cannot store operation"}, http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	txHash, err := h.connector.Bridge(req)
	if err != nil {
		op.Failed(err)
		status = errorStatus(err)
	} else {
		op.Submitted(txHash)
	}

	if err := h.store.StoreOperation(op); err != nil {
		log.Error().Err(err).Msgf("Failed updating operation %s", op.ID)
	}
	responseJSON(w, op, status)
}

func (h *Handler) Operation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		responseJSON(w, &ErrorResponse{Status: "error", Field: "id", Message: "Invalid operation id"}, http.StatusBadRequest)
		return
	}

	op, err := h.store.Operation(id)
	if errors.Is(err, store.ErrOperationMissing) {
		responseJSON(w, &ErrorResponse{Status: "error", Message: err.Error()}, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Msgf("Failed reading operation %s", id)
		responseJSON(w, &ErrorResponse{Status: "error", Message: "Cannot read operation"}, http.StatusInternalServerError)
		return
	}
	responseJSON(w, op, http.StatusOK)
}

func (h *Handler) Routes(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, &RoutesResponse{
		LocalChainID: h.connector.LocalChainID(),
		Routes:       h.connector.Routes(),
	}, http.StatusOK)
}

// Serve serves handler on port until ctx is done
func Serve(ctx context.Context, port uint16, handler http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChn := make(chan error, 1)
	go func() {
		log.Info().Msgf("Started API server on port %d", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChn <- err
		}
		close(errChn)
	}()

	select {
	case err := <-errChn:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func toBigInt(v *math.HexOrDecimal256) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set((*big.Int)(v))
}

func validateAddress(address string) error {
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid address %s", address)
	}
	return ethav.Validate(common.HexToAddress(address).Hex())
}

// errorStatus maps connector rejections to client errors and
// failures of the external bridge call to a gateway error
func errorStatus(err error) int {
	var bridgeErr *types.BridgeError
	if !errors.As(err, &bridgeErr) {
		return http.StatusBadGateway
	}
	if errors.Is(err, types.ErrInsufficientCustody) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func responseJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn().Err(err).Msg("Failed writing response")
	}
}
