// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
)

var (
	ErrSameChainOperation  = errors.New("same chain operation")
	ErrUnsupportedRoute    = errors.New("unsupported route")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrUnknownProtocol     = errors.New("unknown protocol")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInsufficientCustody = errors.New("insufficient custody balance")
)

const (
	SameChainOperationCode  = "BRIDGE_CONNECTOR_SAME_CHAIN_OP"
	UnknownProtocolCode     = "BRIDGE_CONNECTOR_UNKNOWN_PROTOCOL"
	AmountInZeroCode        = "BRIDGE_CONNECTOR_AMOUNT_IN_ZERO"
	RecipientZeroCode       = "BRIDGE_CONNECTOR_RECIPIENT_ZERO"
	InsufficientBalanceCode = "BRIDGE_CONNECTOR_INSUFFICIENT_BALANCE"
)

// BridgeError carries the stable error code surfaced to integrators.
// Error() returns the code verbatim.
type BridgeError struct {
	Code string
	Kind error
}

func (e *BridgeError) Error() string {
	return e.Code
}

func (e *BridgeError) Unwrap() error {
	return e.Kind
}

func NewBridgeError(kind error, code string) *BridgeError {
	return &BridgeError{Code: code, Kind: kind}
}

func SameChainOperation() error {
	return NewBridgeError(ErrSameChainOperation, SameChainOperationCode)
}

func UnknownProtocol() error {
	return NewBridgeError(ErrUnknownProtocol, UnknownProtocolCode)
}

func UnsupportedRoute(p Protocol) error {
	return NewBridgeError(ErrUnsupportedRoute, fmt.Sprintf("%s_BRIDGE_OP_NOT_SUPPORTED", p))
}

func InvalidPayload(code string) error {
	return NewBridgeError(ErrInvalidPayload, code)
}

func InvalidRequest(code string) error {
	return NewBridgeError(ErrInvalidRequest, code)
}

func InsufficientCustody() error {
	return NewBridgeError(ErrInsufficientCustody, InsufficientBalanceCode)
}

// ErrorCode returns the stable code of err or an empty string when err
// did not originate from the connector.
func ErrorCode(err error) string {
	var bridgeErr *BridgeError
	if errors.As(err, &bridgeErr) {
		return bridgeErr.Code
	}
	return ""
}
