// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ChainSafe/bridge-connector/api"
	mock_api "github.com/ChainSafe/bridge-connector/api/mock"
	"github.com/ChainSafe/bridge-connector/connector/route"
	"github.com/ChainSafe/bridge-connector/store"
	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	usdc      = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	recipient = "0xf584f8728b874a6a5c7a8d4d387c9aae9172d621"
)

type HandlerTestSuite struct {
	suite.Suite
	mockBridger *mock_api.MockBridger
	mockStore   *mock_api.MockOperationStorer
	router      http.Handler
}

func TestRunHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockBridger = mock_api.NewMockBridger(ctrl)
	s.mockStore = mock_api.NewMockOperationStorer(ctrl)
	s.router = api.NewHandler(s.mockBridger, s.mockStore).Router()
}

func (s *HandlerTestSuite) request(method string, path string, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	resp := make(map[string]interface{})
	s.Nil(json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func bridgeBody(amountIn string, to string) string {
	return fmt.Sprintf(`{
		"protocol": "hop",
		"destinationChainId": 10,
		"asset": "%s",
		"amountIn": "%s",
		"minAmountOut": "291000000",
		"recipient": "%s",
		"data": "0x"
	}`, usdc, amountIn, to)
}

func (s *HandlerTestSuite) Test_Bridge_Submitted() {
	txHash := common.HexToHash("0xabcd")
	s.mockStore.EXPECT().StoreOperation(gomock.Any()).Return(nil).Times(2)
	s.mockBridger.EXPECT().Bridge(gomock.Any()).DoAndReturn(func(req *types.BridgeRequest) (*common.Hash, error) {
		s.Equal(types.Hop, req.Protocol)
		s.Equal(uint64(10), req.DestinationChainID)
		s.Equal(common.HexToAddress(usdc), req.Asset)
		s.Equal("300000000", req.AmountIn.String())
		s.Equal("291000000", req.MinAmountOut.String())
		s.Equal(common.HexToAddress(recipient), req.Recipient)
		s.Len(req.Data, 0)
		return &txHash, nil
	})

	rec, resp := s.request(http.MethodPost, "/bridge", bridgeBody("300000000", recipient))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(string(store.SubmittedOperation), resp["status"])
	s.Equal(txHash.Hex(), resp["txHash"])
	s.Equal("HOP", resp["protocol"])
}

func (s *HandlerTestSuite) Test_Bridge_HexAmount() {
	s.mockStore.EXPECT().StoreOperation(gomock.Any()).Return(nil).Times(2)
	s.mockBridger.EXPECT().Bridge(gomock.Any()).DoAndReturn(func(req *types.BridgeRequest) (*common.Hash, error) {
		s.Equal("256", req.AmountIn.String())
		return &common.Hash{}, nil
	})

	rec, _ := s.request(http.MethodPost, "/bridge", bridgeBody("0x100", recipient))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) Test_Bridge_Rejected() {
	var stored []store.Operation
	s.mockStore.EXPECT().StoreOperation(gomock.Any()).DoAndReturn(func(op *store.Operation) error {
		stored = append(stored, *op)
		return nil
	}).Times(2)
	s.mockBridger.EXPECT().Bridge(gomock.Any()).Return(nil, types.UnsupportedRoute(types.Hop))

	rec, resp := s.request(http.MethodPost, "/bridge", bridgeBody("300000000", recipient))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(store.FailedOperation), resp["status"])
	s.Equal("HOP_BRIDGE_OP_NOT_SUPPORTED", resp["code"])
	s.Equal(store.PendingOperation, stored[0].Status)
	s.Equal(store.FailedOperation, stored[1].Status)
	s.Equal(stored[0].ID, stored[1].ID)
}

func (s *HandlerTestSuite) Test_Bridge_InsufficientCustody() {
	s.mockStore.EXPECT().StoreOperation(gomock.Any()).Return(nil).Times(2)
	s.mockBridger.EXPECT().Bridge(gomock.Any()).Return(nil, types.InsufficientCustody())

	rec, resp := s.request(http.MethodPost, "/bridge", bridgeBody("300000000", recipient))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal(types.InsufficientBalanceCode, resp["code"])
}

func (s *HandlerTestSuite) Test_Bridge_ExternalFailure() {
	s.mockStore.EXPECT().StoreOperation(gomock.Any()).Return(nil).Times(2)
	s.mockBridger.EXPECT().Bridge(gomock.Any()).Return(nil, errors.New("execution reverted"))

	rec, resp := s.request(http.MethodPost, "/bridge", bridgeBody("300000000", recipient))

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("execution reverted", resp["error"])
	s.Nil(resp["code"])
}

func (s *HandlerTestSuite) Test_Bridge_StoreFailure() {
	s.mockStore.EXPECT().StoreOperation(gomock.Any()).Return(errors.New("disk full"))

	rec, _ := s.request(http.MethodPost, "/bridge", bridgeBody("300000000", recipient))

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *HandlerTestSuite) Test_Bridge_InvalidJSON() {
	rec, resp := s.request(http.MethodPost, "/bridge", `{"protocol": `)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("error", resp["status"])
}

func (s *HandlerTestSuite) Test_Bridge_UnknownProtocolName() {
	rec, _ := s.request(http.MethodPost, "/bridge", strings.Replace(bridgeBody("1", recipient), `"hop"`, `"wormhole"`, 1))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) Test_Bridge_InvalidRecipient() {
	rec, resp := s.request(http.MethodPost, "/bridge", bridgeBody("300000000", "0x1234"))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("recipient", resp["field"])
}

func (s *HandlerTestSuite) Test_Bridge_MissingAmount() {
	body := fmt.Sprintf(`{"protocol": "hop", "destinationChainId": 10, "asset": "%s", "recipient": "%s"}`, usdc, recipient)

	rec, resp := s.request(http.MethodPost, "/bridge", body)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("amountIn", resp["field"])
}

func (s *HandlerTestSuite) Test_Operation_Found() {
	id := uuid.New()
	s.mockStore.EXPECT().Operation(id).Return(&store.Operation{ID: id, Status: store.PendingOperation}, nil)

	rec, resp := s.request(http.MethodGet, "/operations/"+id.String(), "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(id.String(), resp["id"])
	s.Equal("pending", resp["status"])
}

func (s *HandlerTestSuite) Test_Operation_Missing() {
	id := uuid.New()
	s.mockStore.EXPECT().Operation(id).Return(nil, store.ErrOperationMissing)

	rec, _ := s.request(http.MethodGet, "/operations/"+id.String(), "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) Test_Operation_InvalidID() {
	rec, resp := s.request(http.MethodGet, "/operations/not-a-uuid", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("id", resp["field"])
}

func (s *HandlerTestSuite) Test_Routes() {
	s.mockBridger.EXPECT().LocalChainID().Return(types.MainnetChainID)
	s.mockBridger.EXPECT().Routes().Return([]route.Route{
		{Protocol: types.Hop, AssetKind: types.NativeAsset, DestinationChainID: 10},
	})

	rec, resp := s.request(http.MethodGet, "/routes", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(1), resp["localChainId"])
	routes := resp["routes"].([]interface{})
	s.Len(routes, 1)
	s.Equal("HOP", routes[0].(map[string]interface{})["protocol"])
}
