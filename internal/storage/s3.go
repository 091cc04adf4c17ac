package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
)

// S3Remote stores objects in S3 (or an S3-compatible endpoint). Image
// thumbnails are scaled locally and stored next to the original; the driver
// cannot extract video frames, so video uploads carry no thumbnail.
type S3Remote struct {
	uploader *manager.Uploader
	bucket   string
	region   string
	endpoint string
}

func NewS3Remote(ctx context.Context, region, bucket, endpoint string) (*S3Remote, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Remote{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		region:   region,
		endpoint: endpoint,
	}, nil
}

func (r *S3Remote) Put(ctx context.Context, key, contentType string, resource Resource, wantThumb bool, body io.Reader, size int64) (*Result, error) {
	if resource == ResourceImage && wantThumb {
		return r.putImage(ctx, key, contentType, body)
	}

	if _, err := r.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}
	return &Result{URL: r.publicURL(key)}, nil
}

func (r *S3Remote) putImage(ctx context.Context, key, contentType string, body io.Reader) (*Result, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if _, err := r.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}
	res := &Result{URL: r.publicURL(key)}

	thumb, err := scaleJPEG(data)
	if err != nil {
		// Undecodable image data; the original is stored, just no thumbnail.
		return res, nil
	}
	thumbKey := key + "_thumb.jpg"
	if _, err := r.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(thumbKey),
		Body:        bytes.NewReader(thumb),
		ContentType: aws.String("image/jpeg"),
	}); err == nil {
		res.ThumbnailURL = r.publicURL(thumbKey)
	}
	return res, nil
}

func (r *S3Remote) publicURL(key string) string {
	escaped := url.PathEscape(key)
	if r.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(r.endpoint, "/"), r.bucket, escaped)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", r.bucket, r.region, escaped)
}

func scaleJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
