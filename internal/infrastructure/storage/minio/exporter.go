package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolCanvas/pkg/errors"
)

// ExportFormat selects the artifact rendering.
type ExportFormat string

const (
	// FormatSMILES writes the bare SMILES line, the interchange format most
	// chemistry tools ingest.
	FormatSMILES ExportFormat = "smi"
	// FormatJSON writes the full document snapshot including the graph.
	FormatJSON ExportFormat = "json"
)

var contentTypes = map[ExportFormat]string{
	FormatSMILES: "chemical/x-daylight-smiles",
	FormatJSON:   "application/json",
}

// ExportResult describes a stored artifact.
type ExportResult struct {
	ObjectKey   string
	Size        int64
	ETag        string
	DownloadURL string
	ExpiresAt   time.Time
}

// ExportStore persists molecule export artifacts.
type ExportStore interface {
	Put(ctx context.Context, doc *molecule.Document, format ExportFormat) (*ExportResult, error)
	Exists(ctx context.Context, objectKey string) (bool, error)
	Delete(ctx context.Context, objectKey string) error
	PresignedURL(ctx context.Context, objectKey string) (string, time.Time, error)
}

type exportStore struct {
	client *Client
	expiry time.Duration
	logger logging.Logger
}

var _ ExportStore = (*exportStore)(nil)

// NewExportStore builds a store handing out links valid for expiry.
func NewExportStore(client *Client, expiry time.Duration, log logging.Logger) ExportStore {
	if expiry == 0 {
		expiry = 15 * time.Minute
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &exportStore{client: client, expiry: expiry, logger: log}
}

// Put renders the document in the requested format, uploads it, and returns
// the object key plus a presigned download link.
func (s *exportStore) Put(ctx context.Context, doc *molecule.Document, format ExportFormat) (*ExportResult, error) {
	data, err := renderExport(doc, format)
	if err != nil {
		return nil, err
	}

	key := exportKey(doc, format)
	info, err := s.client.api.PutObject(ctx, s.client.Bucket(), key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentTypes[format]})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeStorageError, "failed to upload export artifact")
	}

	url, expiresAt, err := s.PresignedURL(ctx, key)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export artifact stored",
		logging.String("object_key", key),
		logging.Int64("size", int64(len(data))))

	return &ExportResult{
		ObjectKey:   key,
		Size:        info.Size,
		ETag:        info.ETag,
		DownloadURL: url,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *exportStore) Exists(ctx context.Context, objectKey string) (bool, error) {
	_, err := s.client.api.StatObject(ctx, s.client.Bucket(), objectKey, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, errors.Wrap(err, errors.CodeStorageError, "failed to stat export artifact")
	}
	return true, nil
}

func (s *exportStore) Delete(ctx context.Context, objectKey string) error {
	err := s.client.api.RemoveObject(ctx, s.client.Bucket(), objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to delete export artifact")
	}
	return nil
}

func (s *exportStore) PresignedURL(ctx context.Context, objectKey string) (string, time.Time, error) {
	u, err := s.client.api.PresignedGetObject(ctx, s.client.Bucket(), objectKey, s.expiry, nil)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, errors.CodeStorageError, "failed to presign download URL")
	}
	return u.String(), time.Now().Add(s.expiry), nil
}

// exportKey namespaces artifacts per document and version so re-exports
// never overwrite older links.
func exportKey(doc *molecule.Document, format ExportFormat) string {
	return fmt.Sprintf("exports/%s/v%d.%s", doc.ID, doc.Version, format)
}

func renderExport(doc *molecule.Document, format ExportFormat) ([]byte, error) {
	switch format {
	case FormatSMILES:
		return []byte(doc.SMILES + "\t" + doc.Name + "\n"), nil
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to render export document")
		}
		return data, nil
	default:
		return nil, errors.New(errors.ErrCodeValidation, "unsupported export format").
			WithDetail("format=" + string(format))
	}
}

//Personal.AI order the ending
