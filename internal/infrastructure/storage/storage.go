package storage

import (
	"context"
	"fmt"

	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
	"github.com/rafabene/promptdiff-backend/internal/infrastructure/config"
)

// backend descreve um candidato da cadeia de storage: um predicado que
// diz se ele é utilizável com a configuração atual e a implementação em
// si. A cadeia é avaliada em ordem a cada chamada; o primeiro backend
// utilizável atende o upload.
type backend struct {
	name   string
	usable func() bool
	store  ports.StorageProvider
}

// Provider implementa ports.StorageProvider sobre uma cadeia ordenada
// de backends: S3 quando o bucket está configurado, filesystem local em
// modo de desenvolvimento. Sem backend elegível o upload falha — nunca
// gravamos silenciosamente em um filesystem efêmero de produção.
type Provider struct {
	maxBytes int64
	chain    []backend
	logger   ports.Logger
}

// NewProvider monta a cadeia de backends a partir da configuração
func NewProvider(cfg *config.Config, logger ports.Logger) (*Provider, error) {
	p := &Provider{
		maxBytes: cfg.Storage.MaxUploadBytes,
		logger:   logger,
	}

	if cfg.Storage.S3Bucket != "" {
		s3Store, err := newS3Store(&cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize s3 backend: %w", err)
		}
		p.chain = append(p.chain, backend{
			name:   "s3",
			usable: func() bool { return cfg.Storage.S3Bucket != "" },
			store:  s3Store,
		})
	}

	p.chain = append(p.chain, backend{
		name:   "filesystem",
		usable: func() bool { return cfg.IsDevelopment() && cfg.Storage.UploadDir != "" },
		store:  newFilesystemStore(cfg.Storage.UploadDir),
	})

	return p, nil
}

// Store valida o blob e delega ao primeiro backend utilizável
func (p *Provider) Store(ctx context.Context, blob []byte, meta ports.UploadMetadata) (string, error) {
	if len(blob) == 0 {
		return "", ports.ErrInvalidUpload
	}
	if p.maxBytes > 0 && int64(len(blob)) > p.maxBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ports.ErrInvalidUpload, p.maxBytes)
	}

	for _, b := range p.chain {
		if !b.usable() {
			continue
		}

		url, err := b.store.Store(ctx, blob, meta)
		if err != nil {
			p.logger.Error("upload failed",
				"backend", b.name,
				"file", meta.Name,
				"error", err,
			)
			return "", fmt.Errorf("%w: %s", ports.ErrStorageUnavailable, b.name)
		}

		p.logger.Debug("upload stored",
			"backend", b.name,
			"file", meta.Name,
			"url", url,
		)
		return url, nil
	}

	return "", fmt.Errorf("%w: no storage backend configured", ports.ErrStorageUnavailable)
}
