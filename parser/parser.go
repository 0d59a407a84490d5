package parser

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"second-brain/internal/logger"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// FetchHTML fetches the raw HTML of a URL over plain HTTP. Pages that
// need client-side rendering go through the renderer package instead.
func FetchHTML(url string) (string, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

// ExtractText extracts the readable article text from an HTML page,
// trying extractors from most to least reliable: readability, then
// trafilatura, then goose. Returns an error only when every extractor
// fails or yields nothing.
func ExtractText(htmlStr string) (string, error) {
	if text, err := extractWithReadability(htmlStr); err == nil && text != "" {
		return text, nil
	} else if err != nil {
		logger.Log.Debugf("readability extraction failed: %v", err)
	}

	if text, err := extractWithTrafilatura(htmlStr); err == nil && text != "" {
		return text, nil
	} else if err != nil {
		logger.Log.Debugf("trafilatura extraction failed: %v", err)
	}

	if text, err := extractWithGoose(htmlStr); err == nil && text != "" {
		return text, nil
	} else if err != nil {
		logger.Log.Debugf("goose extraction failed: %v", err)
	}

	return "", fmt.Errorf("no extractor produced text")
}

func extractWithReadability(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(article.TextContent), nil
}

func extractWithTrafilatura(htmlStr string) (string, error) {
	article, err := trafilatura.Extract(strings.NewReader(htmlStr), trafilatura.Options{})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(article.ContentText), nil
}

func extractWithGoose(htmlStr string) (string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(article.CleanedText), nil
}
