package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/linkbi-api/internal/application/ports"
)

var _ ports.MediaStorage = (*S3Store)(nil)

// S3Config parámetros del bucket. Endpoint vacío = AWS; si no, compatible S3 (MinIO, R2) con path-style.
type S3Config struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
	Prefix        string
}

// objectPutter subconjunto de *s3.Client usado por el store.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store aloja las imágenes en un bucket S3.
type S3Store struct {
	client objectPutter
	cfg    S3Config
}

// NewS3Store carga credenciales con la cadena por defecto del SDK (env, perfil, rol IAM).
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Store(client, cfg), nil
}

func newS3Store(client objectPutter, cfg S3Config) *S3Store {
	if cfg.Prefix == "" {
		cfg.Prefix = "prestataires"
	}
	return &S3Store{client: client, cfg: cfg}
}

// Put sube el objeto y devuelve su URL pública.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	objectKey := strings.Trim(s.cfg.Prefix, "/") + "/" + strings.TrimLeft(key, "/")
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	}
	// un SVG abierto en el navegador podría ejecutar scripts: se fuerza la descarga
	if strings.HasPrefix(contentType, "image/svg") {
		in.ContentDisposition = aws.String("attachment")
	}
	_, err := s.client.PutObject(ctx, in)
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", objectKey, err)
	}
	return s.publicURL(objectKey), nil
}

func (s *S3Store) publicURL(objectKey string) string {
	// MEDIA_PUBLIC_BASE_URL relativo ("/uploads") solo tiene sentido para el store local
	if base := strings.TrimRight(s.cfg.PublicBaseURL, "/"); strings.HasPrefix(base, "http") {
		return base + "/" + objectKey
	}
	if s.cfg.Endpoint != "" {
		return strings.TrimRight(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + objectKey
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, objectKey)
}
