package utils

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"digimarket/config"

	"github.com/go-resty/resty/v2"
)

// GenerateProductImage asks the image service for product artwork. The
// service may answer with a ready URL or an inline base64 payload; an
// inline payload is written under public/uploads and served from there.
// Errors leave the caller's draft untouched.
func GenerateProductImage(name, description string) (string, error) {
	cfg := config.AppConfig
	if cfg.ImageApiURL == "" {
		return "", fmt.Errorf("image service is not configured")
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+cfg.ImageApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"prompt": fmt.Sprintf("Product artwork for a digital storefront. Name: %s. Description: %s", name, description),
		}).
		Post(cfg.ImageApiURL)
	if err != nil {
		log.Printf("Failed to reach image service: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Image service error: %s", resp.String())
		return "", fmt.Errorf("image service returned %d", resp.StatusCode())
	}

	var imageResp struct {
		URL   string `json:"url"`
		Image string `json:"image"` // base64 PNG
	}
	if err := json.Unmarshal(resp.Body(), &imageResp); err != nil {
		return "", fmt.Errorf("failed to parse image response: %v", err)
	}

	if imageResp.URL != "" {
		return imageResp.URL, nil
	}
	if imageResp.Image != "" {
		return saveInlineImage(imageResp.Image)
	}
	return "", fmt.Errorf("image service returned no image")
}

func saveInlineImage(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid inline image payload: %v", err)
	}

	destDir := filepath.Join("public", "uploads")
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	filename := time.Now().Format("20060102150405") + ".png"
	if err := os.WriteFile(filepath.Join(destDir, filename), raw, 0644); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

// SaveUploadedImage stores an admin-uploaded product image and returns
// its public URL.
func SaveUploadedImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := filepath.Join("public", "uploads")
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	filename := time.Now().Format("20060102150405") + ext
	dst, err := os.Create(filepath.Join(destDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}
