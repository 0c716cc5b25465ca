package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"content-platform/core/apperr"
	"content-platform/core/storage"
)

// Object key layout inside the bucket. The hash segment is the stable
// namespace; media objects for a content item live next to its document.
const (
	performerPrefix = "performers/"
	contentPrefix   = "content/"
	metadataFile    = "metadata.json"
)

// PerformerMetadataKey returns the object key of a performer document.
func PerformerMetadataKey(hash string) string {
	return performerPrefix + hash + "/" + metadataFile
}

// ContentMetadataKey returns the object key of a content document.
func ContentMetadataKey(hash string) string {
	return contentPrefix + hash + "/" + metadataFile
}

// Store reads and writes metadata documents in bucket storage.
type Store struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewStore creates a metadata store over the given storage client.
func NewStore(client storage.Client, bucket string, logger *zap.Logger) *Store {
	return &Store{client: client, bucket: bucket, logger: logger}
}

// SavePerformer writes a performer document, overwriting any existing one.
func (s *Store) SavePerformer(ctx context.Context, doc *PerformerDocument) error {
	return s.putDocument(ctx, PerformerMetadataKey(doc.Hash), doc)
}

// SaveContent writes a content document, overwriting any existing one.
func (s *Store) SaveContent(ctx context.Context, doc *ContentDocument) error {
	return s.putDocument(ctx, ContentMetadataKey(doc.Hash), doc)
}

func (s *Store) putDocument(ctx context.Context, key string, doc any) error {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return apperr.ExternalService("failed to write metadata document", err)
	}
	s.logger.Debug("Metadata document written", zap.String("key", key))
	return nil
}

// GetPerformer reads and validates one performer document.
// Returns (nil, nil) when the object does not exist.
func (s *Store) GetPerformer(ctx context.Context, hash string) (*PerformerDocument, error) {
	var doc PerformerDocument
	ok, err := s.getDocument(ctx, PerformerMetadataKey(hash), &doc)
	if err != nil || !ok {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	return &doc, nil
}

// GetContent reads and validates one content document.
// Returns (nil, nil) when the object does not exist.
func (s *Store) GetContent(ctx context.Context, hash string) (*ContentDocument, error) {
	var doc ContentDocument
	ok, err := s.getDocument(ctx, ContentMetadataKey(hash), &doc)
	if err != nil || !ok {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	return &doc, nil
}

// getDocument fetches and decodes one JSON object. Missing objects are
// reported as (false, nil); malformed bodies as a Validation error so the
// caller can skip the entity without aborting a whole enumeration.
func (s *Store) getDocument(ctx context.Context, key string, out any) (bool, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, apperr.ExternalService("failed to read metadata document", err)
	}
	defer obj.Close()

	// The minio client connects lazily; read errors surface here.
	body, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, apperr.ExternalService("failed to read metadata document", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return false, apperr.Validation(fmt.Sprintf("malformed metadata document %s", key))
	}
	return true, nil
}

// ListPerformerHashes enumerates the hash namespaces that carry a
// performer metadata document.
func (s *Store) ListPerformerHashes(ctx context.Context) ([]string, error) {
	return s.listHashes(ctx, performerPrefix)
}

// ListContentHashes enumerates the hash namespaces that carry a content
// metadata document.
func (s *Store) ListContentHashes(ctx context.Context) ([]string, error) {
	return s.listHashes(ctx, contentPrefix)
}

func (s *Store) listHashes(ctx context.Context, prefix string) ([]string, error) {
	ch := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var hashes []string
	for obj := range ch {
		if obj.Err != nil {
			return nil, apperr.ExternalService("failed to list metadata documents", obj.Err)
		}
		rest := strings.TrimPrefix(obj.Key, prefix)
		parts := strings.SplitN(rest, "/", 2)
		if len(parts) != 2 || parts[1] != metadataFile {
			// Media objects share the prefix; only metadata.json marks
			// an entity.
			continue
		}
		hashes = append(hashes, parts[0])
	}
	return hashes, nil
}

// DeletePerformerObjects removes everything under performers/{hash}/.
// Best-effort: failures are logged and counted, never returned as errors.
func (s *Store) DeletePerformerObjects(ctx context.Context, hash string) int {
	return s.deletePrefix(ctx, performerPrefix+hash+"/")
}

// DeleteContentObjects removes everything under content/{hash}/,
// including media files and the metadata document. Best-effort.
func (s *Store) DeleteContentObjects(ctx context.Context, hash string) int {
	return s.deletePrefix(ctx, contentPrefix+hash+"/")
}

func (s *Store) deletePrefix(ctx context.Context, prefix string) int {
	listCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for obj := range listCh {
			if obj.Err != nil {
				s.logger.Warn("Storage listing failed during cleanup",
					zap.String("prefix", prefix), zap.Error(obj.Err))
				return
			}
			objectsCh <- minio.ObjectInfo{Key: obj.Key}
		}
	}()

	failed := 0
	for removeErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed++
		s.logger.Warn("Storage object delete failed",
			zap.String("key", removeErr.ObjectName), zap.Error(removeErr.Err))
	}
	return failed
}
