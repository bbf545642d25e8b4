// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmclient

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrTxReverted = errors.New("transaction reverted")

	receiptRetryInterval = time.Second * 5
	receiptRetries       = 50
)

// EVMClient signs and sends transactions on behalf of a single custody key
type EVMClient struct {
	*ethclient.Client
	rpClient   *rpc.Client
	privateKey *ecdsa.PrivateKey
	from       common.Address
	nonce      *big.Int
	nonceLock  sync.Mutex
}

func NewEVMClient(url string, privateKey string) (*EVMClient, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}

	rpcClient, err := rpc.DialContext(context.TODO(), url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed dialing %s", url)
	}

	return &EVMClient{
		Client:     ethclient.NewClient(rpcClient),
		rpClient:   rpcClient,
		privateKey: key,
		from:       crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (c *EVMClient) From() common.Address {
	return c.from
}

// CallContract executes a read only call against the latest block
func (c *EVMClient) CallContract(ctx context.Context, callArgs ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return c.Client.CallContract(ctx, callArgs, blockNumber)
}

func (c *EVMClient) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.privateKey)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed signing transaction")
	}

	err = c.SendTransaction(ctx, signedTx)
	if err != nil {
		return common.Hash{}, err
	}
	return signedTx.Hash(), nil
}

// WaitAndReturnTxReceipt polls for the receipt of h and fails if the transaction reverted
func (c *EVMClient) WaitAndReturnTxReceipt(h common.Hash) (*types.Receipt, error) {
	retry := receiptRetries
	for retry > 0 {
		receipt, err := c.TransactionReceipt(context.Background(), h)
		if err != nil {
			log.Debug().Err(err).Str("txHash", h.Hex()).Msgf("Receipt not found, %d retries left", retry-1)
			retry--
			time.Sleep(receiptRetryInterval)
			continue
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			return receipt, errors.Wrapf(ErrTxReverted, "tx %s", h.Hex())
		}
		return receipt, nil
	}
	return nil, errors.Errorf("tx %s not mined after %d retries", h.Hex(), receiptRetries)
}

func (c *EVMClient) LockNonce() {
	c.nonceLock.Lock()
}

func (c *EVMClient) UnlockNonce() {
	c.nonceLock.Unlock()
}

// UnsafeNonce returns the nonce of the next transaction. Must be called with the nonce lock held.
func (c *EVMClient) UnsafeNonce() (*big.Int, error) {
	if c.nonce == nil {
		n, err := c.PendingNonceAt(context.Background(), c.from)
		if err != nil {
			return nil, err
		}
		c.nonce = new(big.Int).SetUint64(n)
	}
	return new(big.Int).Set(c.nonce), nil
}

func (c *EVMClient) UnsafeIncreaseNonce() error {
	nonce, err := c.UnsafeNonce()
	if err != nil {
		return err
	}
	c.nonce = nonce.Add(nonce, big.NewInt(1))
	return nil
}

// BaseFee returns the base fee of the latest block or nil for pre London chains
func (c *EVMClient) BaseFee() (*big.Int, error) {
	head, err := c.HeaderByNumber(context.TODO(), nil)
	if err != nil {
		return nil, err
	}
	return head.BaseFee, nil
}

func (c *EVMClient) Close() {
	c.rpClient.Close()
}
