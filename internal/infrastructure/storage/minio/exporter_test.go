package minio

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/MolCanvas/internal/config"
	"github.com/turtacn/MolCanvas/internal/domain/element"
	"github.com/turtacn/MolCanvas/internal/domain/graph"
	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/turtacn/MolCanvas/pkg/errors"
	"github.com/turtacn/MolCanvas/pkg/types/chem"
)

type mockAPI struct {
	buckets      map[string]bool
	objects      map[string][]byte
	contentTypes map[string]string
	lifecycleSet bool
	putErr       error
	listErr      error
}

func newMockAPI(buckets ...string) *mockAPI {
	m := &mockAPI{
		buckets:      make(map[string]bool),
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
	for _, b := range buckets {
		m.buckets[b] = true
	}
	return m
}

func (m *mockAPI) ListBuckets(context.Context) ([]miniogo.BucketInfo, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]miniogo.BucketInfo, 0, len(m.buckets))
	for b := range m.buckets {
		out = append(out, miniogo.BucketInfo{Name: b})
	}
	return out, nil
}

func (m *mockAPI) BucketExists(_ context.Context, name string) (bool, error) {
	return m.buckets[name], nil
}

func (m *mockAPI) MakeBucket(_ context.Context, name string, _ miniogo.MakeBucketOptions) error {
	m.buckets[name] = true
	return nil
}

func (m *mockAPI) SetBucketLifecycle(context.Context, string, *lifecycle.Configuration) error {
	m.lifecycleSet = true
	return nil
}

func (m *mockAPI) PutObject(_ context.Context, _, name string, reader io.Reader, size int64, opts miniogo.PutObjectOptions) (miniogo.UploadInfo, error) {
	if m.putErr != nil {
		return miniogo.UploadInfo{}, m.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return miniogo.UploadInfo{}, err
	}
	m.objects[name] = data
	m.contentTypes[name] = opts.ContentType
	return miniogo.UploadInfo{Key: name, Size: size, ETag: "etag-" + name}, nil
}

func (m *mockAPI) RemoveObject(_ context.Context, _, name string, _ miniogo.RemoveObjectOptions) error {
	delete(m.objects, name)
	return nil
}

func (m *mockAPI) StatObject(_ context.Context, _, name string, _ miniogo.StatObjectOptions) (miniogo.ObjectInfo, error) {
	if data, ok := m.objects[name]; ok {
		return miniogo.ObjectInfo{Key: name, Size: int64(len(data))}, nil
	}
	return miniogo.ObjectInfo{}, miniogo.ErrorResponse{Code: "NoSuchKey", Message: "key not found"}
}

func (m *mockAPI) PresignedGetObject(_ context.Context, bucket, name string, _ time.Duration, _ url.Values) (*url.URL, error) {
	return url.Parse("https://storage.local/" + bucket + "/" + name + "?sig=test")
}

func testClientConfig() config.MinIOConfig {
	return config.MinIOConfig{
		Enabled:  true,
		Endpoint: "storage.local:9000",
		Bucket:   "molcanvas-exports",
	}
}

func newTestStore(t *testing.T, api *mockAPI) ExportStore {
	t.Helper()
	client := NewClientWithAPI(api, testClientConfig(), logging.NewNopLogger())
	return NewExportStore(client, 15*time.Minute, logging.NewNopLogger())
}

func aceticAcidDocument(t *testing.T) *molecule.Document {
	t.Helper()

	g := graph.New(element.NewRegistry())
	c1, err := g.AddAtom("C", chem.Point{X: 0, Y: 0})
	require.NoError(t, err)
	c2, err := g.AddAtom("C", chem.Point{X: 1, Y: 0})
	require.NoError(t, err)
	o1, err := g.AddAtom("O", chem.Point{X: 2, Y: 0})
	require.NoError(t, err)
	o2, err := g.AddAtom("O", chem.Point{X: 2, Y: 1})
	require.NoError(t, err)
	require.NoError(t, g.AddOrUpdateBond(c1, c2, chem.BondSingle))
	require.NoError(t, g.AddOrUpdateBond(c2, o1, chem.BondDouble))
	require.NoError(t, g.AddOrUpdateBond(c2, o2, chem.BondSingle))

	doc, err := molecule.NewDocument("acetic acid", g)
	require.NoError(t, err)
	return doc
}

func TestExportStore_PutSMILES(t *testing.T) {
	api := newMockAPI("molcanvas-exports")
	store := newTestStore(t, api)
	doc := aceticAcidDocument(t)

	res, err := store.Put(context.Background(), doc, FormatSMILES)
	require.NoError(t, err)

	wantKey := "exports/" + string(doc.ID) + "/v1.smi"
	assert.Equal(t, wantKey, res.ObjectKey)
	assert.Contains(t, res.DownloadURL, wantKey)
	assert.False(t, res.ExpiresAt.IsZero())

	stored := string(api.objects[wantKey])
	assert.Equal(t, doc.SMILES+"\tacetic acid\n", stored)
	assert.Equal(t, "chemical/x-daylight-smiles", api.contentTypes[wantKey])
}

func TestExportStore_PutJSON(t *testing.T) {
	api := newMockAPI("molcanvas-exports")
	store := newTestStore(t, api)
	doc := aceticAcidDocument(t)

	res, err := store.Put(context.Background(), doc, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", api.contentTypes[res.ObjectKey])

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(api.objects[res.ObjectKey], &decoded))
	assert.Equal(t, "acetic acid", decoded["name"])
	assert.Equal(t, doc.SMILES, decoded["smiles"])
}

func TestExportStore_Put_UnsupportedFormat(t *testing.T) {
	store := newTestStore(t, newMockAPI("molcanvas-exports"))

	_, err := store.Put(context.Background(), aceticAcidDocument(t), ExportFormat("pdf"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeValidation))
}

func TestExportStore_Put_UploadFailure(t *testing.T) {
	api := newMockAPI("molcanvas-exports")
	api.putErr = assert.AnError
	store := newTestStore(t, api)

	_, err := store.Put(context.Background(), aceticAcidDocument(t), FormatSMILES)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStorageError))
}

func TestExportStore_ExistsAndDelete(t *testing.T) {
	api := newMockAPI("molcanvas-exports")
	store := newTestStore(t, api)
	ctx := context.Background()

	res, err := store.Put(ctx, aceticAcidDocument(t), FormatSMILES)
	require.NoError(t, err)

	ok, err := store.Exists(ctx, res.ObjectKey)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, res.ObjectKey))

	ok, err = store.Exists(ctx, res.ObjectKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExportKey_IncludesVersion(t *testing.T) {
	doc := aceticAcidDocument(t)
	doc.Version = 3

	key := exportKey(doc, FormatJSON)
	assert.True(t, strings.HasSuffix(key, "/v3.json"), key)
}

//Personal.AI order the ending
