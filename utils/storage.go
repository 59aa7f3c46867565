package utils

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/vietwoods/catalog-api/models"
	"google.golang.org/api/option"
)

func NewGCSClient(ctx context.Context) (*storage.Client, string, error) {
	bucket := os.Getenv("GCS_BUCKET")
	credentialsPath := os.Getenv("CREDENTIALS_FILE_LOCATION")
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	client, err := storage.NewClient(ctx, option.WithAuthCredentialsFile(option.ServiceAccount, filepath.Join(wd, credentialsPath)))
	if err != nil {
		return nil, "", err
	}
	return client, bucket, nil
}

// UploadProductImages stores image files for a product and returns the image
// descriptors to append to its record. Objects are keyed by item number with
// "main"/"view-N" names so re-uploads of the same view replace the old file.
// isMain marks the first file when the product has no main image yet;
// display order continues after the existing images.
func UploadProductImages(
	ctx context.Context,
	gcs *storage.Client,
	bucketName string,
	itemNo string,
	existing []models.ProductImage,
	files []*multipart.FileHeader,
) ([]models.ProductImage, error) {

	if len(files) == 0 {
		return nil, fmt.Errorf("no image files provided")
	}

	hasMain := false
	for _, img := range existing {
		if img.IsMain {
			hasMain = true
			break
		}
	}
	nextOrder := len(existing) + 1

	images := make([]models.ProductImage, 0, len(files))

	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if ext == "" {
			ext = ".bin"
		}

		isMain := false
		var objectName string
		if !hasMain {
			isMain = true
			hasMain = true
			objectName = fmt.Sprintf("products/%s/main%s", itemNo, ext)
		} else {
			objectName = fmt.Sprintf("products/%s/view-%d%s", itemNo, nextOrder, ext)
		}

		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}

		w := gcs.Bucket(bucketName).Object(objectName).NewWriter(ctx)

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = mime.TypeByExtension(ext)
			if ct == "" {
				ct = "application/octet-stream"
			}
		}
		w.ContentType = ct
		w.CacheControl = "public, max-age=3600"

		if _, err := io.Copy(w, f); err != nil {
			_ = f.Close()
			_ = w.Close()
			return nil, fmt.Errorf("upload copy: %w", err)
		}
		_ = f.Close()

		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("upload close: %w", err)
		}

		images = append(images, models.ProductImage{
			URL:          fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectName),
			IsMain:       isMain,
			DisplayOrder: nextOrder,
		})
		nextOrder++
	}

	return images, nil
}

func ObjectNameFromGCSPublicURL(bucket string, raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}

	host := strings.ToLower(u.Host)
	path := strings.TrimPrefix(u.Path, "/")

	// style 1: storage.googleapis.com/<bucket>/<object>
	if host == "storage.googleapis.com" {
		prefix := bucket + "/"
		if !strings.HasPrefix(path, prefix) {
			return "", fmt.Errorf("url bucket mismatch")
		}
		return strings.TrimPrefix(path, prefix), nil
	}

	// style 2: <bucket>.storage.googleapis.com/<object>
	if host == strings.ToLower(bucket)+".storage.googleapis.com" {
		if path == "" {
			return "", fmt.Errorf("missing object path")
		}
		return path, nil
	}

	return "", fmt.Errorf("not a gcs public url")
}

func DeleteGCSObjects(ctx context.Context, client *storage.Client, bucket string, objectNames []string) error {
	var firstErr error

	for _, obj := range objectNames {
		if obj == "" {
			continue
		}
		err := client.Bucket(bucket).Object(obj).Delete(ctx)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("delete %s: %w", obj, err)
		}
	}

	return firstErr
}

type FileValidator struct {
	allowedExt  map[string]bool
	allowedMime map[string]bool
	maxSize     int64
}

// NewImageValidator builds the validator for product image uploads from env,
// with sensible defaults when the env vars are unset.
func NewImageValidator() *FileValidator {
	allowedExt := map[string]bool{}
	extList := os.Getenv("ALLOWED_FILE_EXTENSIONS")
	if extList == "" {
		extList = ".jpg,.jpeg,.png,.webp"
	}
	for _, ext := range strings.Split(extList, ",") {
		if ext = strings.TrimSpace(strings.ToLower(ext)); ext != "" {
			allowedExt[ext] = true
		}
	}

	allowedMime := map[string]bool{}
	mimeList := os.Getenv("ALLOWED_FILE_MIME_TYPES")
	if mimeList == "" {
		mimeList = "image/jpeg,image/png,image/webp"
	}
	for _, m := range strings.Split(mimeList, ",") {
		if m = strings.TrimSpace(strings.ToLower(m)); m != "" {
			allowedMime[m] = true
		}
	}

	sizeMB := 5
	if v := os.Getenv("MAX_UPLOAD_SIZE_MB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			sizeMB = parsed
		}
	}

	return &FileValidator{
		allowedExt:  allowedExt,
		allowedMime: allowedMime,
		maxSize:     int64(sizeMB) << 20,
	}
}

func (v *FileValidator) ValidateFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > v.maxSize {
		return "", fmt.Errorf("file too large (max %d MB)", v.maxSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !v.allowedExt[ext] {
		return "", fmt.Errorf("invalid file extension")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	if _, err = file.Read(buffer); err != nil {
		return "", fmt.Errorf("failed to read file header")
	}
	if _, err = file.Seek(0, 0); err != nil {
		return "", fmt.Errorf("failed to reset file reader")
	}

	detectedMime := strings.ToLower(http.DetectContentType(buffer))
	if !v.allowedMime[detectedMime] {
		return "", fmt.Errorf("invalid file type")
	}

	return detectedMime, nil
}
