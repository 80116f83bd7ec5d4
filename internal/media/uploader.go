package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/sellbarbers/booking-api/internal/config"
	"github.com/sellbarbers/booking-api/internal/httperr"
)

// ===============================
// CONSTANTS
// ===============================

const (
	// maxWidth bounds gallery images; taller-than-wide photos are
	// scaled by the same factor.
	maxWidth = 1280

	webpQuality = 80

	contentType = "image/webp"
)

// ===============================
// UPLOADER
// ===============================

// Uploader converts gallery photos to WebP and stores them on S3.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSKeyID, cfg.AWSSecret, "",
		),
	})

	return &Uploader{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimRight(cfg.S3BaseURL, "/"),
	}
}

// Upload decodes, resizes and re-encodes the image, then writes it
// under gallery/<uuid>.webp. Returns the public URL.
func (u *Uploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	out, err := encode(resize(src))
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("gallery/%s.webp", uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(out),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return u.baseURL + "/" + key, nil
}

// Delete removes a previously uploaded object given its public URL.
// URLs outside our base are ignored.
func (u *Uploader) Delete(ctx context.Context, publicURL string) error {
	key, ok := strings.CutPrefix(publicURL, u.baseURL+"/")
	if !ok {
		return nil
	}

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	return err
}

// ===============================
// IMAGE PIPELINE
// ===============================

func resize(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
