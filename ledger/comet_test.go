package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	ctypes "github.com/cometbft/cometbft/rpc/core/types"
	cmttypes "github.com/cometbft/cometbft/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

func init() {
	log.SetOutput(io.Discard)
}

type fakeRPC struct {
	height       int64
	statusErr    error
	broadcast    *ctypes.ResultBroadcastTx
	broadcastErr error
	txs          map[string]*ctypes.ResultTx
	txErr        error
	query        *ctypes.ResultABCIQuery
	queryErr     error
	queryPath    string
}

func (f *fakeRPC) Status(ctx context.Context) (*ctypes.ResultStatus, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &ctypes.ResultStatus{SyncInfo: ctypes.SyncInfo{LatestBlockHeight: f.height}}, nil
}

func (f *fakeRPC) BroadcastTxSync(ctx context.Context, tx cmttypes.Tx) (*ctypes.ResultBroadcastTx, error) {
	if f.broadcastErr != nil {
		return nil, f.broadcastErr
	}
	return f.broadcast, nil
}

func (f *fakeRPC) Tx(ctx context.Context, hash []byte, prove bool) (*ctypes.ResultTx, error) {
	if f.txErr != nil {
		return nil, f.txErr
	}
	res, ok := f.txs[common.HexFromBytes(hash)]
	if !ok {
		return nil, errors.New("RPC error -32603 - Internal error: tx (" + common.HexFromBytes(hash) + ") not found")
	}
	return res, nil
}

func (f *fakeRPC) ABCIQuery(ctx context.Context, path string, data cmtbytes.HexBytes) (*ctypes.ResultABCIQuery, error) {
	f.queryPath = path
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.query, nil
}

func TestCurrentSlot(t *testing.T) {
	t.Run("Latest Height", func(t *testing.T) {
		c := NewCometClientWithRPC(&fakeRPC{height: 1234}, time.Second)

		slot, err := c.CurrentSlot(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, uint64(1234), slot)
	})

	t.Run("Node Down", func(t *testing.T) {
		c := NewCometClientWithRPC(&fakeRPC{statusErr: errors.New("connection refused")}, time.Second)

		_, err := c.CurrentSlot(context.Background())

		assert.ErrorIs(t, err, common.ErrNetwork)
	})
}

func TestSubmitTx(t *testing.T) {
	raw := []byte("signed-tx")

	t.Run("Accepted", func(t *testing.T) {
		c := NewCometClientWithRPC(&fakeRPC{broadcast: &ctypes.ResultBroadcastTx{Code: 0}}, time.Second)

		txID, err := c.SubmitTx(context.Background(), raw)

		assert.Nil(t, err)
		assert.Equal(t, TxID(raw), txID)
		assert.Len(t, txID, 64)
	})

	t.Run("Rejected", func(t *testing.T) {
		c := NewCometClientWithRPC(&fakeRPC{broadcast: &ctypes.ResultBroadcastTx{Code: 5, Codespace: "sdk", Log: "insufficient funds"}}, time.Second)

		_, err := c.SubmitTx(context.Background(), raw)

		assert.ErrorIs(t, err, common.ErrSubmissionRejected)
		assert.Contains(t, err.Error(), "insufficient funds")
	})

	t.Run("Already In Mempool", func(t *testing.T) {
		res := &ctypes.ResultBroadcastTx{
			Code:      sdkerrors.ErrTxInMempoolCache.ABCICode(),
			Codespace: sdkerrors.RootCodespace,
		}
		c := NewCometClientWithRPC(&fakeRPC{broadcast: res}, time.Second)

		txID, err := c.SubmitTx(context.Background(), raw)

		assert.ErrorIs(t, err, common.ErrDuplicateTransaction)
		assert.Equal(t, TxID(raw), txID)
	})

	t.Run("Already In Cache", func(t *testing.T) {
		c := NewCometClientWithRPC(&fakeRPC{broadcastErr: errors.New("RPC error -32603 - Internal error: tx already exists in cache")}, time.Second)

		txID, err := c.SubmitTx(context.Background(), raw)

		assert.ErrorIs(t, err, common.ErrDuplicateTransaction)
		assert.Equal(t, TxID(raw), txID)
	})

	t.Run("Transport Error", func(t *testing.T) {
		c := NewCometClientWithRPC(&fakeRPC{broadcastErr: errors.New("i/o timeout")}, time.Second)

		_, err := c.SubmitTx(context.Background(), raw)

		assert.ErrorIs(t, err, common.ErrNetwork)
		assert.True(t, common.IsTransient(err))
	})
}

func TestGetTx(t *testing.T) {
	raw := []byte("signed-tx")
	txID := TxID(raw)

	t.Run("Included", func(t *testing.T) {
		rpc := &fakeRPC{txs: map[string]*ctypes.ResultTx{
			txID: {Height: 99, TxResult: abci.ExecTxResult{Code: 0}},
		}}
		c := NewCometClientWithRPC(rpc, time.Second)

		res, err := c.GetTx(context.Background(), txID)

		assert.Nil(t, err)
		assert.Equal(t, int64(99), res.Height)
		assert.True(t, res.Succeeded())
	})

	t.Run("Included But Failed", func(t *testing.T) {
		rpc := &fakeRPC{txs: map[string]*ctypes.ResultTx{
			txID: {Height: 99, TxResult: abci.ExecTxResult{Code: 11, Log: "out of gas"}},
		}}
		c := NewCometClientWithRPC(rpc, time.Second)

		res, err := c.GetTx(context.Background(), txID)

		assert.Nil(t, err)
		assert.False(t, res.Succeeded())
		assert.Equal(t, "out of gas", res.Log)
	})

	t.Run("Not Yet Included", func(t *testing.T) {
		c := NewCometClientWithRPC(&fakeRPC{txs: map[string]*ctypes.ResultTx{}}, time.Second)

		res, err := c.GetTx(context.Background(), txID)

		assert.Nil(t, err)
		assert.Nil(t, res)
		assert.False(t, res.Succeeded())
	})

	t.Run("Node Down", func(t *testing.T) {
		c := NewCometClientWithRPC(&fakeRPC{txErr: errors.New("connection refused")}, time.Second)

		_, err := c.GetTx(context.Background(), txID)

		assert.ErrorIs(t, err, common.ErrNetwork)
	})

	t.Run("Invalid Id", func(t *testing.T) {
		c := NewCometClientWithRPC(&fakeRPC{}, time.Second)

		_, err := c.GetTx(context.Background(), "zz")

		assert.NotNil(t, err)
	})
}

func TestAssets(t *testing.T) {
	t.Run("Decodes Assets", func(t *testing.T) {
		held := []models.HeldAsset{{Unit: "abc", Quantity: "1"}}
		value, _ := json.Marshal(held)
		rpc := &fakeRPC{query: &ctypes.ResultABCIQuery{Response: abci.ResponseQuery{Value: value}}}
		c := NewCometClientWithRPC(rpc, time.Second)

		assets, err := c.Assets(context.Background(), "addr_test1xyz")

		assert.Nil(t, err)
		assert.Equal(t, held, assets)
		assert.Equal(t, "/assets/addr_test1xyz", rpc.queryPath)
	})

	t.Run("Empty", func(t *testing.T) {
		rpc := &fakeRPC{query: &ctypes.ResultABCIQuery{}}
		c := NewCometClientWithRPC(rpc, time.Second)

		assets, err := c.Assets(context.Background(), "addr_test1xyz")

		assert.Nil(t, err)
		assert.Empty(t, assets)
	})

	t.Run("Query Failed", func(t *testing.T) {
		rpc := &fakeRPC{query: &ctypes.ResultABCIQuery{Response: abci.ResponseQuery{Code: 1, Log: "unknown path"}}}
		c := NewCometClientWithRPC(rpc, time.Second)

		_, err := c.Assets(context.Background(), "addr_test1xyz")

		assert.NotNil(t, err)
	})
}
