package utils

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// gcsClient prefers ADC (Cloud Run service account / GOOGLE_APPLICATION_CREDENTIALS).
// Set GCS_CREDENTIALS_JSON to pass explicit JSON, e.g. locally.
func gcsClient(ctx context.Context) (*storage.Client, error) {
	if credJSON := os.Getenv("GCS_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		return storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	}
	return storage.NewClient(ctx)
}

func gcsBucket() (string, error) {
	bucket := strings.TrimSpace(os.Getenv("GCS_BUCKET"))
	if bucket == "" {
		return "", errors.New("GCS_BUCKET is required")
	}
	return bucket, nil
}

func ObjectExistsInGCS(ctx context.Context, objectKey string) (bool, error) {
	client, err := gcsClient(ctx)
	if err != nil {
		return false, err
	}
	defer client.Close()

	bucket, err := gcsBucket()
	if err != nil {
		return false, err
	}

	_, err = client.Bucket(bucket).Object(objectKey).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteObjectFromGCS removes an uploaded object. A missing object is not
// an error; delete flows may run twice.
func DeleteObjectFromGCS(ctx context.Context, objectKey string) error {
	client, err := gcsClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	bucket, err := gcsBucket()
	if err != nil {
		return err
	}

	err = client.Bucket(bucket).Object(objectKey).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return err
	}
	return nil
}

// VerifyAttachmentURL checks that an attachment URL points at a real object.
// URLs in our bucket are checked against storage directly; anything else
// gets a HEAD request.
func VerifyAttachmentURL(ctx context.Context, rawURL string) error {
	if objectKey := ExtractObjectKeyFromURL(rawURL); objectKey != "" {
		ok, err := ObjectExistsInGCS(ctx, objectKey)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("attachment does not exist")
		}
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return errors.New("invalid attachment url")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.New("invalid attachment url")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("attachment does not exist")
	}
	return nil
}
