package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
)

// unsafeChars remove tudo fora de [A-Za-z0-9.] do nome original
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// filesystemStore grava blobs no diretório de uploads local e retorna
// um caminho relativo servido estaticamente pela API. Só é elegível em
// modo de desenvolvimento.
type filesystemStore struct {
	uploadDir string
}

func newFilesystemStore(uploadDir string) *filesystemStore {
	return &filesystemStore{uploadDir: uploadDir}
}

func (s *filesystemStore) Store(_ context.Context, blob []byte, meta ports.UploadMetadata) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	fileName := buildFileName(meta.Name)
	if err := os.WriteFile(filepath.Join(s.uploadDir, fileName), blob, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return "/uploads/" + fileName, nil
}

// buildFileName gera um nome resistente a colisões:
// timestamp + sufixo aleatório + nome original sanitizado
func buildFileName(original string) string {
	sanitized := unsafeChars.ReplaceAllString(original, "")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), suffix, sanitized)
}
