// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmgaspricer

import (
	"context"
	"math/big"
)

type GasPricerOpts struct {
	UpperLimitFeePerGas *big.Int
	GasPriceFactor      *big.Float
}

type GasPriceClient interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	BaseFee() (*big.Int, error)
}

// StaticGasPriceDeterminant prices legacy transactions from the node suggestion
type StaticGasPriceDeterminant struct {
	client GasPriceClient
	opts   *GasPricerOpts
}

func NewStaticGasPriceDeterminant(client GasPriceClient, opts *GasPricerOpts) *StaticGasPriceDeterminant {
	return &StaticGasPriceDeterminant{client: client, opts: opts}
}

func (gasPricer *StaticGasPriceDeterminant) GasPrice(priority *uint8) ([]*big.Int, error) {
	gp, err := gasPricer.client.SuggestGasPrice(context.TODO())
	if err != nil {
		return nil, err
	}
	gp = multiplyGasPrice(gp, gasPricer.opts)
	gp = capGasPrice(gp, gasPricer.opts)
	return []*big.Int{gp}, nil
}

// LondonGasPriceDeterminant prices dynamic fee transactions and falls back
// to static pricing on chains without a base fee
type LondonGasPriceDeterminant struct {
	client GasPriceClient
	opts   *GasPricerOpts
}

func NewLondonGasPriceClient(client GasPriceClient, opts *GasPricerOpts) *LondonGasPriceDeterminant {
	return &LondonGasPriceDeterminant{client: client, opts: opts}
}

func (gasPricer *LondonGasPriceDeterminant) GasPrice(priority *uint8) ([]*big.Int, error) {
	baseFee, err := gasPricer.client.BaseFee()
	if err != nil {
		return nil, err
	}
	if baseFee == nil {
		return NewStaticGasPriceDeterminant(gasPricer.client, gasPricer.opts).GasPrice(priority)
	}

	tip, err := gasPricer.client.SuggestGasTipCap(context.TODO())
	if err != nil {
		return nil, err
	}
	tip = multiplyGasPrice(tip, gasPricer.opts)

	// fee cap covers two consecutive full blocks
	maxFee := new(big.Int).Add(tip, new(big.Int).Mul(baseFee, big.NewInt(2)))
	if gasPricer.opts != nil && gasPricer.opts.UpperLimitFeePerGas != nil &&
		gasPricer.opts.UpperLimitFeePerGas.Sign() > 0 &&
		maxFee.Cmp(gasPricer.opts.UpperLimitFeePerGas) == 1 {
		maxFee = new(big.Int).Set(gasPricer.opts.UpperLimitFeePerGas)
		if tip.Cmp(maxFee) == 1 {
			tip = new(big.Int).Set(maxFee)
		}
	}
	return []*big.Int{maxFee, tip}, nil
}

func multiplyGasPrice(gasPrice *big.Int, opts *GasPricerOpts) *big.Int {
	if opts == nil || opts.GasPriceFactor == nil {
		return gasPrice
	}
	result := new(big.Float).Mul(new(big.Float).SetInt(gasPrice), opts.GasPriceFactor)
	res, _ := result.Int(nil)
	return res
}

func capGasPrice(gasPrice *big.Int, opts *GasPricerOpts) *big.Int {
	if opts == nil || opts.UpperLimitFeePerGas == nil || opts.UpperLimitFeePerGas.Sign() == 0 {
		return gasPrice
	}
	if gasPrice.Cmp(opts.UpperLimitFeePerGas) == 1 {
		return new(big.Int).Set(opts.UpperLimitFeePerGas)
	}
	return gasPrice
}
