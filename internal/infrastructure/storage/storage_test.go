package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Put(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "../../prestataire_1_abc.png", "image/png", strings.NewReader("PNG"), 3)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/prestataire_1_abc.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "prestataire_1_abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "PNG", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no quedan temporales")
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Put(t *testing.T) {
	client := &fakeS3{}
	store := newS3Store(client, S3Config{Bucket: "linkbi-photos", Region: "eu-west-3"})

	url, err := store.Put(context.Background(), "prestataire_1_abc.jpeg", "image/jpeg", strings.NewReader("JPEG"), 4)
	require.NoError(t, err)

	assert.Equal(t, "https://linkbi-photos.s3.eu-west-3.amazonaws.com/prestataires/prestataire_1_abc.jpeg", url)
	assert.Equal(t, "linkbi-photos", aws.ToString(client.input.Bucket))
	assert.Equal(t, "prestataires/prestataire_1_abc.jpeg", aws.ToString(client.input.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(client.input.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(client.input.ContentLength))
	assert.Equal(t, "JPEG", client.body)
	assert.Nil(t, client.input.ContentDisposition)
}

func TestS3Store_PutSVGComoAdjunto(t *testing.T) {
	client := &fakeS3{}
	store := newS3Store(client, S3Config{Bucket: "linkbi-photos", Region: "eu-west-3"})

	_, err := store.Put(context.Background(), "prestataire_1_abc.svg", "image/svg+xml", strings.NewReader("<svg/>"), 6)
	require.NoError(t, err)
	assert.Equal(t, "attachment", aws.ToString(client.input.ContentDisposition))
}

func TestS3Store_PublicURL(t *testing.T) {
	cdn := newS3Store(&fakeS3{}, S3Config{Bucket: "b", Region: "r", PublicBaseURL: "https://cdn.linkbi.fr/"})
	assert.Equal(t, "https://cdn.linkbi.fr/prestataires/k.png", cdn.publicURL("prestataires/k.png"))

	minio := newS3Store(&fakeS3{}, S3Config{Bucket: "b", Region: "r", Endpoint: "http://minio:9000", PublicBaseURL: "/uploads"})
	assert.Equal(t, "http://minio:9000/b/prestataires/k.png", minio.publicURL("prestataires/k.png"))
}
