package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	"github.com/cometbft/cometbft/mempool"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	ctypes "github.com/cometbft/cometbft/rpc/core/types"
	cmttypes "github.com/cometbft/cometbft/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

const (
	assetsQueryPath = "/assets/"
	defaultTimeout  = 10 * time.Second
)

// RPC is the subset of the CometBFT RPC client used here.
type RPC interface {
	Status(ctx context.Context) (*ctypes.ResultStatus, error)
	BroadcastTxSync(ctx context.Context, tx cmttypes.Tx) (*ctypes.ResultBroadcastTx, error)
	Tx(ctx context.Context, hash []byte, prove bool) (*ctypes.ResultTx, error)
	ABCIQuery(ctx context.Context, path string, data cmtbytes.HexBytes) (*ctypes.ResultABCIQuery, error)
}

// CometClient reads the chain height as the current slot and submits
// transactions through BroadcastTxSync.
type CometClient struct {
	rpc     RPC
	timeout time.Duration
}

var _ Client = &CometClient{}

func NewCometClient(cfg models.LedgerConfig) (*CometClient, error) {
	timeout := time.Duration(cfg.RPCTimeoutMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rpc, err := rpchttp.NewWithTimeout(cfg.RPCURL, "/websocket", uint(timeout.Seconds()+0.5))
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger rpc client: %w", err)
	}
	return NewCometClientWithRPC(rpc, timeout), nil
}

func NewCometClientWithRPC(rpc RPC, timeout time.Duration) *CometClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &CometClient{rpc: rpc, timeout: timeout}
}

func (c *CometClient) CurrentSlot(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status, err := c.rpc.Status(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: status: %s", common.ErrNetwork, err.Error())
	}
	height := status.SyncInfo.LatestBlockHeight
	if height < 0 {
		return 0, fmt.Errorf("%w: negative height %d", common.ErrNetwork, height)
	}
	return uint64(height), nil
}

// SubmitTx broadcasts raw and returns its id. A transaction the node has
// already seen returns its id with common.ErrDuplicateTransaction.
func (c *CometClient) SubmitTx(ctx context.Context, raw []byte) (string, error) {
	txID := TxID(raw)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.rpc.BroadcastTxSync(ctx, cmttypes.Tx(raw))
	if err != nil {
		if strings.Contains(err.Error(), mempool.ErrTxInCache.Error()) {
			return txID, fmt.Errorf("%w: %s", common.ErrDuplicateTransaction, txID)
		}
		return "", fmt.Errorf("%w: broadcast: %s", common.ErrNetwork, err.Error())
	}

	if res.Code != 0 {
		if res.Codespace == sdkerrors.RootCodespace && res.Code == sdkerrors.ErrTxInMempoolCache.ABCICode() {
			return txID, fmt.Errorf("%w: %s", common.ErrDuplicateTransaction, txID)
		}
		log.WithField("tx_id", txID).WithField("code", res.Code).Debug("[LEDGER] Transaction rejected: ", res.Log)
		return "", fmt.Errorf("%w: code %d: %s", common.ErrSubmissionRejected, res.Code, res.Log)
	}

	return txID, nil
}

func (c *CometClient) GetTx(ctx context.Context, txID string) (*TxResult, error) {
	hash, err := common.BytesFromHex(txID)
	if err != nil {
		return nil, fmt.Errorf("invalid tx id %q: %w", txID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.rpc.Tx(ctx, hash, false)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: tx: %s", common.ErrNetwork, err.Error())
	}

	return &TxResult{
		TxID:   txID,
		Height: res.Height,
		Code:   res.TxResult.Code,
		Log:    res.TxResult.Log,
	}, nil
}

func (c *CometClient) Assets(ctx context.Context, address string) ([]models.HeldAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.rpc.ABCIQuery(ctx, assetsQueryPath+address, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: abci query: %s", common.ErrNetwork, err.Error())
	}
	if res.Response.Code != 0 {
		return nil, errors.New("assets query failed: " + res.Response.Log)
	}

	assets := []models.HeldAsset{}
	if len(res.Response.Value) == 0 {
		return assets, nil
	}
	if err := json.Unmarshal(res.Response.Value, &assets); err != nil {
		return nil, fmt.Errorf("failed to decode assets: %w", err)
	}
	return assets, nil
}

// TxID is the lower-case hex sha256 of the raw transaction bytes.
func TxID(raw []byte) string {
	return common.HexFromBytes(cmttypes.Tx(raw).Hash())
}
