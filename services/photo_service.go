package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"pgstay-backend/utils"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MaxListingPhotos caps photo uploads per listing request.
const MaxListingPhotos = 4

var ErrTooManyPhotos = fmt.Errorf("a listing can have at most %d photos", MaxListingPhotos)

// PhotoService stores listing photos in MinIO when MINIO_ENDPOINT is set,
// otherwise in the local uploads directory served under /uploads.
type PhotoService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	localDir  string
}

func NewPhotoServiceFromEnv() (*PhotoService, error) {
	endpoint := strings.TrimSpace(os.Getenv("MINIO_ENDPOINT"))
	if endpoint == "" {
		return &PhotoService{localDir: "uploads"}, nil
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("minio access key and secret key are required")
	}
	useSSL := strings.EqualFold(utils.EnvOrDefault("MINIO_USE_SSL", "false"), "true")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &PhotoService{
		client:    client,
		bucket:    utils.EnvOrDefault("MINIO_BUCKET", "pgstay-photos"),
		publicURL: strings.TrimRight(utils.EnvOrDefault("MINIO_PUBLIC_URL", fmt.Sprintf("%s://%s", scheme, endpoint)), "/"),
	}, nil
}

// EnsureBucket makes sure the photo bucket exists. No-op on the local
// fallback.
func (p *PhotoService) EnsureBucket(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{})
}

// UploadListingPhotos stores the uploaded files and returns one photo
// reference per file, in upload order.
func (p *PhotoService) UploadListingPhotos(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}
	if len(files) > MaxListingPhotos {
		return nil, ErrTooManyPhotos
	}

	refs := make([]string, 0, len(files))
	for _, fh := range files {
		ref, err := p.storeOne(ctx, fh)
		if err != nil {
			return nil, fmt.Errorf("store photo %s: %w", fh.Filename, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (p *PhotoService) storeOne(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("listings/%s%s", uuid.NewString(), ext)

	if p.client != nil {
		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if _, err := p.client.PutObject(ctx, p.bucket, key, src, fh.Size, minio.PutObjectOptions{
			ContentType: contentType,
		}); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s/%s/%s", p.publicURL, p.bucket, key), nil
	}

	fullpath := filepath.Join(p.localDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullpath), 0755); err != nil {
		return "", err
	}
	dst, err := os.Create(fullpath)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + key, nil
}
