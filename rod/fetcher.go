// Package rod provides live document-tree access using Chrome browser
// automation. Both layout variants are rendered through it: the modern
// surface needs JavaScript, the legacy surface merely tolerates it.
package rod

import (
	"context"
	"fmt"

	"github.com/foragehq/forage"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements forage.Fetcher at compile time.
var _ forage.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered document trees using a headless Chrome
// browser.
type Fetcher struct {
	browser *rod.Browser
	pages   []*rod.Page
}

// NewFetcher creates a new Fetcher that launches a Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(headless bool) (*Fetcher, error) {
	l := launcher.New().Headless(headless)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns the rendered document root.
// The page stays open until Close so the returned Node remains live.
func (f *Fetcher) Fetch(ctx context.Context, url string) (forage.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	f.pages = append(f.pages, page)

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	root, err := page.Element("html")
	if err != nil {
		return nil, err
	}

	return &Node{el: root}, nil
}

// FetchHTML navigates to the URL and returns the rendered page HTML.
// The page is closed before returning; use Fetch when the document tree
// needs to stay live.
func (f *Fetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources, including any pages still open.
func (f *Fetcher) Close() error {
	for _, page := range f.pages {
		_ = page.Close()
	}
	return f.browser.Close()
}
