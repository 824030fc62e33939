package submitter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// ResolveLink resolves href, usually a path like /uploads/compressed/x.jpg,
// against the endpoint the form was posted to.
func ResolveLink(endpoint, href string) (string, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint: %w", err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("invalid link: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

// Download fetches the resource behind a rendered download link and stores it
// in dir under its base name. It returns the written path.
func Download(ctx context.Context, client Doer, endpoint, href, dir string) (string, error) {
	if href == "" {
		return "", errors.New("no download link")
	}
	if client == nil {
		client = http.DefaultClient
	}

	link, err := ResolveLink(endpoint, href)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", link, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download %s: %s", link, resp.Status)
	}

	u, _ := url.Parse(link)
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		return "", fmt.Errorf("cannot derive a file name from %s", link)
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	dst := filepath.Join(dir, name)
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return dst, nil
}
