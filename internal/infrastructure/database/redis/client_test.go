package redis

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/turtacn/MolCanvas/pkg/errors"
)

func newTestClient(t *testing.T) (*Client, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	return NewClientWithRDB(rdb, logging.NewNopLogger()), mock
}

func TestClient_Ping(t *testing.T) {
	client, mock := newTestClient(t)
	mock.ExpectPing().SetVal("PONG")

	require.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Ping_Error(t *testing.T) {
	client, mock := newTestClient(t)
	mock.ExpectPing().SetErr(assert.AnError)

	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_GetSetDel(t *testing.T) {
	client, mock := newTestClient(t)
	mock.ExpectSet("k", "v", 0).SetVal("OK")
	mock.ExpectGet("k").SetVal("v")
	mock.ExpectDel("k").SetVal(1)

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "k", "v", 0).Err())

	val, err := client.Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	n, err := client.Del(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_ClosedRejectsCommands(t *testing.T) {
	client, mock := newTestClient(t)
	require.NoError(t, client.Close())

	ctx := context.Background()
	assert.Error(t, client.Get(ctx, "k").Err())
	assert.Error(t, client.Set(ctx, "k", "v", 0).Err())
	assert.Error(t, client.Del(ctx, "k").Err())
	assert.True(t, pkgerrors.IsCode(client.Ping(ctx), pkgerrors.ErrCodeInternal))
	_ = mock
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	client, _ := newTestClient(t)

	require.NoError(t, client.Close())
	assert.NoError(t, client.Close())
}

//Personal.AI order the ending
