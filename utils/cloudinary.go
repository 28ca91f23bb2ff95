package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return nil, err
	}
	return cld, nil
}

// UploadToCloudinary uploads a file to Cloudinary and returns the secure URL
func UploadToCloudinary(file interface{}, publicID string, folder string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	uploadParams := uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		Transformation: "c_fill,w_800,h_600",
	}

	resp, err := cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// DeleteFromCloudinary removes a previously uploaded asset by its URL. The
// public ID is the folder plus the file name without version or extension.
func DeleteFromCloudinary(url string) error {
	if url == "" {
		return nil
	}
	cld, err := InitCloudinary()
	if err != nil {
		return err
	}

	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return fmt.Errorf("cannot derive public id from url %q", url)
	}
	file := parts[len(parts)-1]
	folder := parts[len(parts)-2]
	publicID := folder + "/" + strings.TrimSuffix(file, path.Ext(file))

	_, err = cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID})
	return err
}
