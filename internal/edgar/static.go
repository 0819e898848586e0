package edgar

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/sharesout/internal/assets"
)

// StaticLoader reads the default dataset from a filesystem or a URL.
type StaticLoader struct {
	fsys       fs.FS
	name       string
	url        string
	httpClient *http.Client
}

// NewStaticLoader picks a source for the default dataset:
// empty source uses the embedded data.json, an http(s) URL is fetched with hc,
// anything else is a path on the local filesystem.
func NewStaticLoader(source string, hc *http.Client) *StaticLoader {
	if hc == nil {
		hc = &http.Client{}
	}
	switch {
	case source == "":
		return &StaticLoader{fsys: assets.FS, name: assets.DataFile}
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return &StaticLoader{url: source, httpClient: hc}
	default:
		return &StaticLoader{fsys: os.DirFS(filepath.Dir(source)), name: filepath.Base(source)}
	}
}

// NewStaticLoaderFS reads name from fsys.
func NewStaticLoaderFS(fsys fs.FS, name string) *StaticLoader {
	return &StaticLoader{fsys: fsys, name: name}
}

// Source describes where Load reads from.
func (l *StaticLoader) Source() string {
	if l.url != "" {
		return l.url
	}
	return l.name
}

// Load returns the raw default dataset. Every failure wraps ErrStaticLoad.
func (l *StaticLoader) Load(ctx context.Context) ([]byte, error) {
	zerolog.Ctx(ctx).Debug().Str("component", "edgar").Str("source", l.Source()).Msg("loading default dataset")

	if l.url != "" {
		return l.loadURL(ctx)
	}
	b, err := fs.ReadFile(l.fsys, l.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStaticLoad, err)
	}
	return b, nil
}

func (l *StaticLoader) loadURL(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStaticLoad, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStaticLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status %d", ErrStaticLoad, resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStaticLoad, err)
	}
	return b, nil
}
