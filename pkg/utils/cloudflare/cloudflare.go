package cloudflare

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"reisemlak_backend/internal/model"
	"reisemlak_backend/pkg/config"
	"reisemlak_backend/pkg/utils/image"
)

// Uploader ilan fotoğraflarını R2'ye yükler ve CDN adresini döner
type Uploader struct {
	client     *s3.Client
	bucket     string
	cdnBaseURL string
}

func NewUploader(ctx context.Context, cfg config.R2Config) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &Uploader{
		client:     client,
		bucket:     cfg.BucketName,
		cdnBaseURL: strings.TrimSuffix(cfg.CDNBaseURL, "/"),
	}, nil
}

// UploadListingImage fotoğrafı webp'ye çevirip listings/<slug>/images altına koyar
func (u *Uploader) UploadListingImage(ctx context.Context, listing *model.Listing, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("could not open file: %w", err)
	}
	defer src.Close()

	buf, err := image.ProcessImage(src)
	if err != nil {
		return "", err
	}

	objectKey := ObjectKey(listing, time.Now())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(image.WebPContentType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload file to R2: %w", err)
	}

	return u.cdnBaseURL + "/" + objectKey, nil
}

func (u *Uploader) DeleteImage(ctx context.Context, fullURL string) error {
	objectKey, ok := ObjectKeyFromURL(u.cdnBaseURL, fullURL)
	if !ok {
		// CDN dışındaki adresler (eski kayıtlar, dış bağlantılar) bizde değil
		return nil
	}

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("could not delete file from R2: %w", err)
	}

	return nil
}

// ObjectKey listings/<başlık-slug>-<id>/images/<unixnano>-<uuid>.webp
func ObjectKey(listing *model.Listing, now time.Time) string {
	folder := fmt.Sprintf("%s-%d", slug.Make(listing.Title), listing.ID)
	filename := fmt.Sprintf("%d-%s%s", now.UnixNano(), uuid.New().String(), image.WebPExtension)
	return path.Join("listings", folder, "images", filename)
}

// ObjectKeyFromURL CDN adresinden object key'i çıkarır
func ObjectKeyFromURL(cdnBaseURL, fullURL string) (string, bool) {
	prefix := strings.TrimSuffix(cdnBaseURL, "/") + "/"
	key, found := strings.CutPrefix(fullURL, prefix)
	if !found || key == "" {
		return "", false
	}
	return key, true
}
