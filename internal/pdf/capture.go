package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// captureScreenshot loads the HTML document in headless Chrome and returns
// a full-page PNG screenshot. The browser is launched fresh per capture;
// exports are infrequent enough that keeping Chrome warm is not worth the
// lifecycle management.
func captureScreenshot(ctx context.Context, htmlPath string) ([]byte, error) {
	l := launcher.New().Headless(true)
	wsURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch chrome: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(wsURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to chrome: %w", err)
	}
	defer browser.Close()

	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve report path: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return nil, fmt.Errorf("failed to open report page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to load report page: %w", err)
	}

	// fullPage=true captures the entire scroll height, not the viewport.
	png, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to capture report page: %w", err)
	}
	return png, nil
}

// writeTempHTML writes the rendered report to a temporary file Chrome can
// load via a file:// URL. The caller removes the file when done.
func writeTempHTML(html []byte) (string, error) {
	f, err := os.CreateTemp("", "wcag-audit-report-*.html")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary report file: %w", err)
	}
	if _, err := f.Write(html); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temporary report file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temporary report file: %w", err)
	}
	return f.Name(), nil
}
