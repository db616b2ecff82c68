// Package extract pulls plain text out of uploaded resume files. It
// prefers a remote Apache Tika server for quality and falls back to
// local docconv parsing when Tika is unreachable. Extraction never
// hard-fails the upload: unparseable files come back as text with an
// embedded "Warning:" marker so the API can report partial success.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.sajari.com/docconv"

	httpclient "ats-scanner/pkg/http"
)

// Short timeout so an absent Tika fails fast to the local fallback.
const tikaTimeout = 5 * time.Second

type Extractor struct {
	tikaURL    string
	uploadsDir string
	client     *httpclient.Client
}

func NewExtractor(tikaURL, uploadsDir string) *Extractor {
	return &Extractor{
		tikaURL:    tikaURL,
		uploadsDir: uploadsDir,
		client:     httpclient.NewClient(tikaTimeout),
	}
}

// ExtractText reads the uploaded file, saves it under the uploads dir
// and returns its plain text. The returned error only reflects local
// I/O problems; extraction quality issues surface as "Warning:" text.
func (e *Extractor) ExtractText(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(e.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("creating uploads dir: %w", err)
	}

	path := filepath.Join(e.uploadsDir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(f, &buf), r); err != nil {
		f.Close()
		return "", fmt.Errorf("saving upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}

	if text, ok := e.tryTika(ctx, filename, buf.Bytes()); ok {
		return text, nil
	}

	log.Println("Tika service unavailable, falling back to local parsers")
	return e.localFallback(path, filename), nil
}

// tryTika PUTs the raw bytes to the Tika server and returns its text.
func (e *Extractor) tryTika(ctx context.Context, filename string, content []byte) (string, bool) {
	headers := map[string]string{
		"Accept":                        "text/plain",
		"X-Tika-PDFextractInlineImages": "true",
	}

	contentType := ""
	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		contentType = "application/pdf"
	}

	resp, err := e.client.Put(ctx, e.tikaURL, contentType, bytes.NewReader(content), headers)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", false
	}
	return text, true
}

func (e *Extractor) localFallback(path, filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			log.Printf("[ERROR] Local parsing failed for %s: %v", filename, err)
			return fmt.Sprintf("Warning: local parsing failed: %v", err)
		}
		text := strings.TrimSpace(res.Body)
		if text == "" {
			return "Warning: document produced no extractable text."
		}
		return text
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Sprintf("Warning: reading text file failed: %v", err)
		}
		return string(content)
	default:
		return "Warning: unsupported file format for local fallback. Enable the Tika service."
	}
}

// Ping reports Tika reachability for the status endpoint.
func (e *Extractor) Ping(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := e.client.Get(ctx, e.tikaURL)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
