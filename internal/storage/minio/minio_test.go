package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/novacast/nova-backend/internal/config"
	"github.com/novacast/nova-backend/internal/storage"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — создают бакет для медиа;
// — проверяют:
//    New: успешное подключение и ошибку при отсутствии бакета;
//    MediaUploadURL: выдачу presigned PUT и валидации по типу/размеру;
//    CheckMediaUpload: подтверждение существующего объекта, сбор публичного URL,
//    и ошибки на "чужой" ключ/несуществующий объект.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (*MediaStorage, func(), string) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image     = "docker.io/minio/minio:latest"
		accessKey = "root"
		secretKey = "rootpass"
		bucket    = "nova-media"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     accessKey,
			"MINIO_ROOT_PASSWORD": secretKey,
		},
		Cmd:          []string{"server", "/data", "--console-address", ":9001"},
		ExposedPorts: []string{"9000/tcp", "9001/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting minio container with image=%q", image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
			Secure: false,
		})
		require.NoError(t, err)
		err = admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"})
		require.NoError(t, err)
	}

	cfg := &config.Config{
		S3: config.S3Config{
			Endpoint:      endpoint,
			AccessKey:     accessKey,
			SecretKey:     secretKey,
			Bucket:        bucket,
			PresignTTL:    2 * time.Minute,
			PublicBaseURL: "http://cdn.local",
		},
		Media: config.MediaConfig{
			MaxSizeBytes:        1 << 20, // 1 MiB
			AllowedContentTypes: []string{"audio/mpeg", "image/png"},
		},
	}

	st, newErr := New(ctx, cfg)
	if !createBucket {
		require.Error(t, newErr)
		_ = c.Terminate(context.Background())
		return nil, func() {}, ""
	}
	require.NoError(t, newErr)

	cleanup := func() {
		_ = c.Terminate(context.Background())
	}
	return st, cleanup, endpoint
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	// Без предварительного создания бакета New должен вернуть ошибку.
	_, _, _ = startMinio(t, false)
}

func TestIntegration_MediaUploadURL_And_CheckMediaUpload_OK(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	author := uuid.New()

	const bodySize = 5
	ui, err := st.MediaUploadURL(context.Background(), author, "audio/mpeg", bodySize)
	require.NoError(t, err)
	require.NotEmpty(t, ui.UploadURL)
	require.NotEmpty(t, ui.MediaKey)
	require.Contains(t, ui.MediaKey, "media/"+author.String()+"/")
	require.GreaterOrEqual(t, int(ui.Expires.Seconds()), 60)
	require.Equal(t, "audio/mpeg", ui.RequiredHeader["Content-Type"])
	require.Equal(t, strconv.Itoa(bodySize), ui.RequiredHeader["Content-Length"])

	body := bytes.Repeat([]byte{0x42}, bodySize)
	req, err := http.NewRequest(http.MethodPut, ui.UploadURL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "audio/mpeg")
	req.ContentLength = int64(bodySize)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Less(t, resp.StatusCode, 300, "PUT must succeed")

	public, err := st.CheckMediaUpload(context.Background(), author, ui.MediaKey)
	require.NoError(t, err)
	require.Equal(t, "http://cdn.local/"+ui.MediaKey, public)
}

func TestIntegration_MediaUploadURL_InvalidArgs(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	author := uuid.New()
	// Неверный тип.
	_, err := st.MediaUploadURL(context.Background(), author, "video/mp4", 10)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
	// Неверный размер.
	_, err = st.MediaUploadURL(context.Background(), author, "audio/mpeg", -1)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
	// Превышение лимита.
	_, err = st.MediaUploadURL(context.Background(), author, "audio/mpeg", (1<<20)+1)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_CheckMediaUpload_Errors(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	author := uuid.New()
	other := uuid.New()

	// Ключ с "чужим" префиксом.
	_, err := st.CheckMediaUpload(context.Background(), author, "media/"+other.String()+"/x.mp3")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Не существует.
	_, err = st.CheckMediaUpload(context.Background(), author, "media/"+author.String()+"/missing.mp3")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFoundObject)
}

func TestIntegration_CheckMediaUpload_PublicBase_TrailingSlash_OK(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	author := uuid.New()
	ui, err := st.MediaUploadURL(context.Background(), author, "image/png", 1)
	require.NoError(t, err)

	// PUT 1 байт.
	req, err := http.NewRequest(http.MethodPut, ui.UploadURL, bytes.NewReader([]byte{0x1}))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "image/png")
	req.ContentLength = 1
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Less(t, resp.StatusCode, 300)

	st.cfg.S3.PublicBaseURL = "http://cdn.local/"
	public, err := st.CheckMediaUpload(context.Background(), author, ui.MediaKey)
	require.NoError(t, err)
	require.Equal(t, "http://cdn.local/"+ui.MediaKey, public)
}

func TestIntegration_New_EndpointWithoutScheme_OK(t *testing.T) {
	st, cleanup, endpoint := startMinio(t, true)
	defer cleanup()
	_ = st

	u, err := url.Parse(endpoint)
	require.NoError(t, err)

	cfg2 := &config.Config{
		S3: config.S3Config{
			Endpoint:   u.Host,
			AccessKey:  "root",
			SecretKey:  "rootpass",
			Bucket:     "nova-media",
			PresignTTL: time.Minute,
		},
		Media: config.MediaConfig{
			MaxSizeBytes:        1 << 20,
			AllowedContentTypes: []string{"audio/mpeg"},
		},
	}

	s2, err := New(context.Background(), cfg2)
	require.NoError(t, err)
	_ = s2
}
