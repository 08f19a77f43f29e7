package repositories

import (
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MediaRepository stores and serves the binary blobs (videos, audio,
// avatars, covers) that the relational core references by ID.
type MediaRepository interface {
	Upload(filename, contentType string, source io.Reader) (string, error)
	Open(id string) (io.ReadCloser, string, error)
	Delete(id string) error
}

// GridFSMediaRepository implements MediaRepository on a MongoDB GridFS bucket
type GridFSMediaRepository struct {
	bucket *gridfs.Bucket
}

// NewGridFSMediaRepository creates a media repository over the given database
func NewGridFSMediaRepository(db *mongo.Database) (*GridFSMediaRepository, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create GridFS bucket: %w", err)
	}
	return &GridFSMediaRepository{bucket: bucket}, nil
}

// Upload stores a blob and returns its hex reference ID
func (r *GridFSMediaRepository) Upload(filename, contentType string, source io.Reader) (string, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})
	id, err := r.bucket.UploadFromStream(filename, source, opts)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Open returns a read stream for a blob along with its stored content
// type. The caller must close the stream.
func (r *GridFSMediaRepository) Open(id string) (io.ReadCloser, string, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, "", fmt.Errorf("invalid media ID format: %w", err)
	}

	stream, err := r.bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, "", err
	}

	contentType := "application/octet-stream"
	if file := stream.GetFile(); file != nil && file.Metadata != nil {
		var meta struct {
			ContentType string `bson:"content_type"`
		}
		if err := bson.Unmarshal(file.Metadata, &meta); err == nil && meta.ContentType != "" {
			contentType = meta.ContentType
		}
	}
	return stream, contentType, nil
}

// Delete removes a blob
func (r *GridFSMediaRepository) Delete(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid media ID format: %w", err)
	}
	return r.bucket.Delete(objID)
}
