package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"eshop_back_end/internal/database"

	"github.com/minio/minio-go/v7"
)

// UploadImage pousse un fichier multipart dans le bucket MinIO et retourne
// l'URL publique stockée sur le document (produit, pub, slide).
func UploadImage(folder string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), file.Filename)

	_, err = database.MinIO.PutObject(context.Background(), bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}

	url := fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName)
	return url, nil
}
