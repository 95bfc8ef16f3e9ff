package ports

import (
	"context"
	"errors"
)

// Storage errors
var (
	// ErrInvalidUpload indica blob ausente ou acima do limite configurado
	ErrInvalidUpload = errors.New("error.invalid_upload")
	// ErrStorageUnavailable indica que nenhum backend utilizável está
	// configurado ou que o upload em si falhou
	ErrStorageUnavailable = errors.New("error.storage_unavailable")
)

// UploadMetadata descreve o arquivo sendo enviado
type UploadMetadata struct {
	Name        string
	ContentType string
	SizeBytes   int64
}

// StorageProvider persiste um blob opaco e retorna uma URL durável e
// publicamente acessível. As implementações (S3, filesystem local) são
// selecionadas por configuração: o chamador nunca sabe qual backend
// atendeu o upload.
type StorageProvider interface {
	Store(ctx context.Context, blob []byte, meta UploadMetadata) (string, error)
}
