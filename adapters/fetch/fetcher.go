// Package fetch performs the one-time conditional download of the activity
// log: if the CSV is absent it pulls a zip archive from a fixed URL, extracts
// the CSV member next to the target path and deletes the archive.
package fetch

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stride/domain/core"
)

// Fetcher ensures the source CSV exists locally
type Fetcher struct {
	url      string
	dest     string
	client   *http.Client
	tempName string
}

// NewFetcher creates a fetcher writing to dest from url
func NewFetcher(url, dest string) *Fetcher {
	return &Fetcher{
		url:      url,
		dest:     dest,
		client:   &http.Client{Timeout: 2 * time.Minute},
		tempName: "activity-download.zip",
	}
}

// EnsureSource is a no-op when the destination file already exists.
// Otherwise it downloads the archive, extracts the first CSV member to the
// destination path and removes the archive. Any failure halts the report.
func (f *Fetcher) EnsureSource(ctx context.Context) error {
	if _, err := os.Stat(f.dest); err == nil {
		log.Printf("[Fetcher] Source present: %s", f.dest)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.dest), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	archivePath := filepath.Join(filepath.Dir(f.dest), f.tempName)
	if err := f.download(ctx, archivePath); err != nil {
		return fmt.Errorf("%w: %v", core.ErrSourceUnavailable, err)
	}

	if err := f.extractCSV(archivePath); err != nil {
		return fmt.Errorf("%w: %v", core.ErrSourceUnavailable, err)
	}

	if err := os.Remove(archivePath); err != nil {
		log.Printf("[Fetcher] Warning: failed to remove archive %s: %v", archivePath, err)
	}

	log.Printf("[Fetcher] Source ready: %s", f.dest)
	return nil
}

func (f *Fetcher) download(ctx context.Context, archivePath string) error {
	log.Printf("[Fetcher] Downloading %s", f.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s from %s", resp.Status, f.url)
	}

	out, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer out.Close()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return err
	}
	log.Printf("[Fetcher] Downloaded %d bytes", n)
	return nil
}

func (f *Fetcher) extractCSV(archivePath string) error {
	archive, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer archive.Close()

	for _, member := range archive.File {
		if member.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(member.Name), ".csv") {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return err
		}
		out, err := os.Create(f.dest)
		if err != nil {
			rc.Close()
			return err
		}
		_, err = io.Copy(out, rc)
		rc.Close()
		out.Close()
		if err != nil {
			return err
		}
		log.Printf("[Fetcher] Extracted %s -> %s", member.Name, f.dest)
		return nil
	}
	return fmt.Errorf("no CSV member in archive %s", archivePath)
}
