package s3store

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cooperativa/facturabot/internal/config"
	"github.com/cooperativa/facturabot/internal/domain/document"
	ierr "github.com/cooperativa/facturabot/internal/errors"
	"github.com/cooperativa/facturabot/internal/logger"
)

// Store implements document.Repository over an S3 bucket. Folders are
// first-level prefixes inside the bucket; a folder "exists" when at
// least one object lives under its prefix, which matches how the
// billing team provisions them (folders are only created by uploading
// invoices into them).
type Store struct {
	client *s3.Client
	bucket string
	logger *logger.Logger
}

func NewStore(cfg *config.Configuration, log *logger.Logger) (*Store, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(cfg.Drive.Region),
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to load aws config").
			Mark(ierr.ErrHTTPClient)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Drive.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Drive.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		client: client,
		bucket: cfg.Drive.Bucket,
		logger: log,
	}, nil
}

// FindFolderByName implements document.Repository.
func (s *Store) FindFolderByName(ctx context.Context, name string) (*document.Folder, error) {
	prefix := name + "/"

	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to look up invoice folder").
			WithMessagef("bucket:%s, folder:%s", s.bucket, name).
			Mark(ierr.ErrHTTPClient)
	}

	if out.KeyCount == nil || *out.KeyCount == 0 {
		return nil, ierr.NewErrorf("folder %q not found", name).
			Mark(ierr.ErrNotFound)
	}

	return &document.Folder{ID: prefix, Name: name}, nil
}

// ListDocuments implements document.Repository. Only PDF entries are
// returned; provider listing order (lexicographic key order for S3) is
// preserved as-is.
func (s *Store) ListDocuments(ctx context.Context, folder *document.Folder) ([]document.Document, error) {
	var docs []document.Document

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(folder.ID),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("failed to list invoice folder").
				WithMessagef("bucket:%s, folder:%s", s.bucket, folder.Name).
				Mark(ierr.ErrHTTPClient)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			name := path.Base(key)
			if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
				continue
			}
			docs = append(docs, document.Document{ID: key, Name: name})
		}
	}

	return docs, nil
}

// Download implements document.Repository.
func (s *Store) Download(ctx context.Context, doc document.Document) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(doc.ID),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to download invoice document").
			WithMessagef("bucket:%s, key:%s", s.bucket, doc.ID).
			Mark(ierr.ErrHTTPClient)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to read invoice document body").
			Mark(ierr.ErrHTTPClient)
	}

	return data, nil
}
