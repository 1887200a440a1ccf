// Package export reads the record files produced by the chat-log parser.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
	"github.com/cognicore/chatstat/pkg/chatstat/internalerr"
)

// maxLineSize bounds one JSONL line; long forwarded messages can exceed
// bufio's default.
const maxLineSize = 4 << 20

// LoadFromJSONL loads records from a JSONL file, one record per line.
// Malformed or invalid lines are logged and skipped.
func LoadFromJSONL(path string, logger *zap.Logger) ([]ingest.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()

	return ReadJSONL(f, path, logger)
}

// ReadJSONL decodes records from r. source names r in log lines and errors.
// Calendar fields missing from a line are derived from its date, if any.
// It fails with internalerr.ErrNoContent when no valid record is found.
func ReadJSONL(r io.Reader, source string, logger *zap.Logger) ([]ingest.Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var records []ingest.Record
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec ingest.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			logger.Warn("skipping malformed JSON",
				zap.String("source", source),
				zap.Int("line", lineNo),
				zap.Error(err))
			skipped++
			continue
		}
		rec.FillCalendar()
		if err := rec.Validate(); err != nil {
			logger.Warn("skipping invalid record",
				zap.String("source", source),
				zap.Int("line", lineNo),
				zap.Error(err))
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no valid records found in %s", internalerr.ErrNoContent, source)
	}

	logger.Debug("records loaded",
		zap.String("source", source),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped))
	return records, nil
}
