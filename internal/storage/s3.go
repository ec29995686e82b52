package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	webpQuality   = 80
)

type S3Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// Uploader converts gallery uploads to WebP and stores them in an
// S3-compatible bucket. A nil Uploader is a valid no-op for deployments
// without object storage configured.
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewUploader(cfg S3Config) *Uploader {
	if cfg.Bucket == "" || cfg.AccessKey == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:        s3.New(opts),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// UploadImage decodes a JPEG/PNG upload, downscales oversized images and
// stores the result as WebP under a fresh uuid key. Returns the object
// key and the public URL.
func (u *Uploader) UploadImage(ctx context.Context, establishmentID uint, data []byte) (string, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("establishments/%d/gallery/%s.webp", establishmentID, uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}

	return key, u.publicBaseURL + "/" + key, nil
}

func (u *Uploader) Delete(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	return err
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return img
	}

	height := bounds.Dy() * maxImageWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
