package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/narender/cellar-store/common/telemetry/attributes"
	commontrace "github.com/narender/cellar-store/common/telemetry/trace"
)

// FileDatabase reads JSON documents from a single file.
type FileDatabase struct {
	filePath string
	logger   *slog.Logger
}

func NewFileDatabase(filePath string, logger *slog.Logger) *FileDatabase {
	return &FileDatabase{
		filePath: filePath,
		logger:   logger,
	}
}

// Read decodes the file into dest. Unknown fields are rejected so typos in
// the catalog file surface at load time.
func (db *FileDatabase) Read(ctx context.Context, dest any) (opErr error) {
	ctx, span := commontrace.StartSpan(ctx,
		semconv.DBSystemKey.String("file"),
		semconv.DBOperationNameKey.String("READ"),
		attributes.DBFilePathKey.String(db.filePath),
	)
	defer commontrace.EndSpan(span, &opErr, nil)

	db.logger.DebugContext(ctx, "FileDB: Reading data from file", slog.String("file_path", db.filePath))

	f, err := os.Open(db.filePath)
	if err != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to open data file",
			slog.String("file_path", db.filePath),
			slog.Any("error", err))
		opErr = err
		return opErr
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to decode JSON data",
			slog.String("file_path", db.filePath),
			slog.Any("error", err))
		opErr = fmt.Errorf("decode %s: %w", db.filePath, err)
		return opErr
	}

	db.logger.DebugContext(ctx, "FileDB: Data read and decoded successfully", slog.String("file_path", db.filePath))
	return nil
}

// FilePath returns the path to the database file.
func (db *FileDatabase) FilePath() string {
	return db.filePath
}
