package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Gergov8/runnalog/internal/config"
)

// GenerateDefaultAvatar génère un avatar par défaut pour un nouvel utilisateur
func GenerateDefaultAvatar(userID, username string) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}

	uploadDir := "uploads/avatars"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	// API DiceBear, style initials : affiche les initiales du pseudo
	avatarURL := fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", username)

	resp, err := http.Get(avatarURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download avatar: status %d", resp.StatusCode)
	}

	filename := userID + ".svg"
	filePath := filepath.Join(uploadDir, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/avatars/%s", cfg.URL, filename), nil
}
