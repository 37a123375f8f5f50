package transport

import (
	"context"
	"io"
	"net/http"
)

// PixelLoader requests an image resource, the fallback delivery path of
// browsers without a usable scripted HTTP client.
type PixelLoader interface {
	Load(ctx context.Context, url string) error
}

// PixelLoaderFunc adapts a function to PixelLoader.
type PixelLoaderFunc func(ctx context.Context, url string) error

func (f PixelLoaderFunc) Load(ctx context.Context, url string) error { return f(ctx, url) }

// HTTPPixel loads pixels with a plain GET request and discards the image.
type HTTPPixel struct {
	Client HTTPClient
}

func (p HTTPPixel) Load(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "image/avif,image/webp,image/*,*/*;q=0.8")

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
