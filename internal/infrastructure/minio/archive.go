package minio

import (
	"bytes"
	"context"
	"sort"

	"github.com/espressoflow/pos-backend/internal/cfg"
	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// Archive хранит копии сгенерированных отчётов в S3-совместимом хранилище
// и отдаёт список последних экспортов.
type Archive struct {
	mc     *minio.Client
	cfg    *cfg.MinIOCfg
	logger logger.Logger
}

func NewArchive(mc *minio.Client, cfg *cfg.MinIOCfg, logger logger.Logger) *Archive {
	return &Archive{
		mc:     mc,
		cfg:    cfg,
		logger: logger,
	}
}

// Store загружает документ под указанным ключом.
func (a *Archive) Store(ctx context.Context, key string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)

	_, err := a.mc.PutObject(ctx, a.cfg.BucketName, key, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	a.logger.Debugf("export archived: %s (%d bytes)", key, len(data))
	return nil
}

// Recent возвращает последние сохранённые экспорты, новые первыми.
func (a *Archive) Recent(ctx context.Context) ([]domain.ExportObject, error) {
	objects := make([]domain.ExportObject, 0, a.cfg.RecentLimit)

	for info := range a.mc.ListObjects(ctx, a.cfg.BucketName, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), info.Err)
		}

		objects = append(objects, domain.ExportObject{
			Key:         info.Key,
			Size:        info.Size,
			GeneratedAt: info.LastModified,
		})
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].GeneratedAt.After(objects[j].GeneratedAt)
	})

	if len(objects) > a.cfg.RecentLimit {
		objects = objects[:a.cfg.RecentLimit]
	}

	return objects, nil
}
