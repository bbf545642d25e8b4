// Copyright 2021 ChainSafe Systems
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ChainSafe/bridge-connector/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
)

type OperationStatus string

var (
	KEY                                 = "operation:%s"
	PendingOperation    OperationStatus = "pending"
	SubmittedOperation  OperationStatus = "submitted"
	FailedOperation     OperationStatus = "failed"
	ErrOperationMissing                 = errors.New("operation not found")
)

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

// Operation is the record of a single bridge request submitted to the connector
type Operation struct {
	ID                 uuid.UUID       `json:"id"`
	Protocol           types.Protocol  `json:"protocol"`
	DestinationChainID uint64          `json:"destinationChainId"`
	Asset              common.Address  `json:"asset"`
	AmountIn           *big.Int        `json:"amountIn"`
	MinAmountOut       *big.Int        `json:"minAmountOut"`
	Recipient          common.Address  `json:"recipient"`
	Status             OperationStatus `json:"status"`
	TxHash             *common.Hash    `json:"txHash,omitempty"`
	Code               string          `json:"code,omitempty"`
	Error              string          `json:"error,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// NewOperation creates a pending operation for req
func NewOperation(req *types.BridgeRequest) *Operation {
	return &Operation{
		ID:                 uuid.New(),
		Protocol:           req.Protocol,
		DestinationChainID: req.DestinationChainID,
		Asset:              req.Asset,
		AmountIn:           req.AmountIn,
		MinAmountOut:       req.MinAmountOut,
		Recipient:          req.Recipient,
		Status:             PendingOperation,
		CreatedAt:          time.Now().UTC(),
	}
}

// Submitted marks the operation as sent to the external bridge in tx h
func (o *Operation) Submitted(h *common.Hash) {
	o.Status = SubmittedOperation
	o.TxHash = h
}

func (o *Operation) Failed(err error) {
	o.Status = FailedOperation
	o.Code = types.ErrorCode(err)
	o.Error = err.Error()
}

type OperationStore struct {
	db KeyValueReaderWriter
}

func NewOperationStore(db KeyValueReaderWriter) *OperationStore {
	return &OperationStore{
		db: db,
	}
}

// StoreOperation stores op under its id, replacing the previous record
func (s *OperationStore) StoreOperation(op *Operation) error {
	value, err := json.Marshal(op)
	if err != nil {
		return err
	}

	return s.db.SetByKey(operationKey(op.ID), value)
}

func (s *OperationStore) Operation(id uuid.UUID) (*Operation, error) {
	v, err := s.db.GetByKey(operationKey(id))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrOperationMissing
		}
		return nil, err
	}

	op := &Operation{}
	err = json.Unmarshal(v, op)
	if err != nil {
		return nil, err
	}
	return op, nil
}

func operationKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf(KEY, id.String()))
}
