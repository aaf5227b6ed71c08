// Package source loads context text for vocabulary ingestion from files and web pages.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
	"go.uber.org/zap"
)

var (
	ErrBodyTooLarge     = errors.New("response body exceeds size limit")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrEmptyArticle     = errors.New("no readable text extracted")
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxBodyBytes = 10 << 20
	userAgent           = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

var (
	reRT = regexp.MustCompile(`(?is)<rt[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?is)<rp[^>]*>.*?</rp>`)
)

// Article is the readable text of a fetched page.
type Article struct {
	Title string
	Text  string
}

// Fetcher downloads web pages and extracts their main text.
type Fetcher struct {
	client       *http.Client
	maxBodyBytes int64
	logger       *zap.Logger
}

func NewFetcher(timeout time.Duration, maxBodyBytes int64, logger *zap.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	return &Fetcher{
		client:       &http.Client{Timeout: timeout},
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// FetchURL downloads rawURL and returns its readable article text.
func (f *Fetcher) FetchURL(ctx context.Context, rawURL string) (Article, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Article{}, fmt.Errorf("parse url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return Article{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8,ja;q=0.7")

	resp, err := f.client.Do(req)
	if err != nil {
		return Article{}, fmt.Errorf("fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Article{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if resp.ContentLength > f.maxBodyBytes {
		return Article{}, fmt.Errorf("%w: content length %d", ErrBodyTooLarge, resp.ContentLength)
	}

	// Read one byte past the limit to tell a full body from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return Article{}, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBodyBytes {
		return Article{}, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, f.maxBodyBytes)
	}

	article, err := readability.FromReader(bytes.NewReader(SanitizeRuby(body)), parsed)
	if err != nil {
		return Article{}, fmt.Errorf("extract article: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return Article{}, ErrEmptyArticle
	}

	f.logger.Debug("fetched article",
		zap.String("url", rawURL),
		zap.String("title", article.Title),
		zap.Int("chars", len([]rune(text))),
	)

	return Article{Title: article.Title, Text: text}, nil
}

// ReadFile returns the contents of a local text file, or of stdin when path is "-".
func ReadFile(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}
	return string(data), nil
}

// SanitizeRuby removes ruby annotations (<rt> and <rp>) so that readings
// are not glued onto the annotated characters in the extracted text.
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, nil)
	return reRP.ReplaceAll(cleaned, nil)
}
