package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var MinioClient *minio.Client

// ConnectMinio habilita la subida de imágenes de producto si hay MinIO
// configurado. Sin él, el formulario de admin solo acepta URLs.
func ConnectMinio() {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️  Sin MINIO_ENDPOINT - subida de imágenes desactivada")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️  MinIO no configurado:", err)
		return
	}

	bucket := os.Getenv("MINIO_BUCKET")
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Println("⚠️  Error verificando bucket MinIO:", err)
		return
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️  Error creando bucket MinIO:", err)
			return
		}
		log.Println("🪣 Bucket creado:", bucket)
	}

	MinioClient = client
	log.Println("✅ Conectado a MinIO:", endpoint)
}

// SubirImagen guarda el archivo en el bucket y devuelve su URL pública.
// El nombre lleva un prefijo UUID para no pisar subidas anteriores.
func SubirImagen(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if MinioClient == nil {
		return "", fmt.Errorf("MinIO no inicializado")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objeto := path.Join("productos", uuid.NewString()+"-"+file.Filename)

	_, err = MinioClient.PutObject(ctx, bucket, objeto, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	esquema := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		esquema = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", esquema, os.Getenv("MINIO_ENDPOINT"), bucket, objeto), nil
}
