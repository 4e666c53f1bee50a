package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/turtacn/MolCanvas/pkg/errors"
)

type cachedDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T, opts ...CacheOption) (Cache, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	client := NewClientWithRDB(rdb, logging.NewNopLogger())
	opts = append([]CacheOption{WithoutTTLJitter()}, opts...)
	return NewRedisCache(client, logging.NewNopLogger(), opts...), mock
}

func TestCache_Get_Hit(t *testing.T) {
	cache, mock := newTestCache(t)
	want := cachedDoc{ID: "doc-1", Name: "ethanol"}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet("molcanvas:molecule:id:doc-1").SetVal(string(data))

	var got cachedDoc
	err = cache.Get(context.Background(), "molecule:id:doc-1", &got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Get_Miss(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectGet("molcanvas:absent").RedisNil()

	var got cachedDoc
	err := cache.Get(context.Background(), "absent", &got)
	require.ErrorIs(t, err, ErrCacheMiss)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Get_NullMarkerIsMiss(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectGet("molcanvas:nulled").SetVal(nullMarker)

	var got cachedDoc
	err := cache.Get(context.Background(), "nulled", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Get_BackendError(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectGet("molcanvas:broken").SetErr(assert.AnError)

	var got cachedDoc
	err := cache.Get(context.Background(), "broken", &got)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeCacheError))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Get_CorruptPayload(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectGet("molcanvas:corrupt").SetVal("{not json")

	var got cachedDoc
	err := cache.Get(context.Background(), "corrupt", &got)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeSerialization))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Set(t *testing.T) {
	cache, mock := newTestCache(t)
	doc := cachedDoc{ID: "doc-2", Name: "benzene"}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	mock.ExpectSet("molcanvas:molecule:id:doc-2", data, 5*time.Minute).SetVal("OK")

	err = cache.Set(context.Background(), "molecule:id:doc-2", doc, 5*time.Minute)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Set_ZeroTTLUsesDefault(t *testing.T) {
	cache, mock := newTestCache(t, WithDefaultTTL(2*time.Minute))
	data, err := json.Marshal("v")
	require.NoError(t, err)

	mock.ExpectSet("molcanvas:k", data, 2*time.Minute).SetVal("OK")

	err = cache.Set(context.Background(), "k", "v", 0)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Delete(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectDel("molcanvas:a", "molcanvas:b").SetVal(2)

	err := cache.Delete(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Delete_NoKeysIsNoop(t *testing.T) {
	cache, mock := newTestCache(t)

	err := cache.Delete(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Exists(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectExists("molcanvas:present").SetVal(1)
	mock.ExpectExists("molcanvas:absent").SetVal(0)

	ok, err := cache.Exists(context.Background(), "present")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.Exists(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetOrSet_MissLoadsAndPopulates(t *testing.T) {
	cache, mock := newTestCache(t)
	want := cachedDoc{ID: "doc-3", Name: "phenol"}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet("molcanvas:molecule:id:doc-3").RedisNil()
	mock.ExpectSet("molcanvas:molecule:id:doc-3", data, time.Minute).SetVal("OK")

	loaded := 0
	var got cachedDoc
	err = cache.GetOrSet(context.Background(), "molecule:id:doc-3", &got, time.Minute,
		func(ctx context.Context) (interface{}, error) {
			loaded++
			return want, nil
		})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, loaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetOrSet_HitSkipsLoader(t *testing.T) {
	cache, mock := newTestCache(t)
	want := cachedDoc{ID: "doc-4", Name: "toluene"}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet("molcanvas:molecule:id:doc-4").SetVal(string(data))

	var got cachedDoc
	err = cache.GetOrSet(context.Background(), "molecule:id:doc-4", &got, time.Minute,
		func(ctx context.Context) (interface{}, error) {
			t.Fatal("loader must not run on a cache hit")
			return nil, nil
		})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetOrSet_LoaderErrorPropagates(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectGet("molcanvas:molecule:id:doc-5").RedisNil()

	loadErr := pkgerrors.New(pkgerrors.ErrCodeMoleculeNotFound, "molecule not found")
	var got cachedDoc
	err := cache.GetOrSet(context.Background(), "molecule:id:doc-5", &got, time.Minute,
		func(ctx context.Context) (interface{}, error) {
			return nil, loadErr
		})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeMoleculeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetOrSet_NilResultCachesNullMarker(t *testing.T) {
	cache, mock := newTestCache(t, WithNullCacheTTL(15*time.Second))
	mock.ExpectGet("molcanvas:void").RedisNil()
	mock.ExpectSet("molcanvas:void", nullMarker, 15*time.Second).SetVal("OK")

	var got cachedDoc
	err := cache.GetOrSet(context.Background(), "void", &got, time.Minute,
		func(ctx context.Context) (interface{}, error) {
			return nil, nil
		})
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_DeleteByPrefix(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectScan(0, "molcanvas:molecule:*", 100).SetVal(
		[]string{"molcanvas:molecule:id:1", "molcanvas:molecule:id:2"}, 0)
	mock.ExpectDel("molcanvas:molecule:id:1", "molcanvas:molecule:id:2").SetVal(2)

	deleted, err := cache.DeleteByPrefix(context.Background(), "molecule:")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_DeleteByPrefix_EmptyScan(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectScan(0, "molcanvas:nothing:*", 100).SetVal(nil, 0)

	deleted, err := cache.DeleteByPrefix(context.Background(), "nothing:")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_ExpireAndTTL(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectExpire("molcanvas:k", time.Minute).SetVal(true)
	mock.ExpectTTL("molcanvas:k").SetVal(42 * time.Second)

	require.NoError(t, cache.Expire(context.Background(), "k", time.Minute))

	ttl, err := cache.TTL(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, 42*time.Second, ttl)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Ping(t *testing.T) {
	cache, mock := newTestCache(t)
	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, cache.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

//Personal.AI order the ending
