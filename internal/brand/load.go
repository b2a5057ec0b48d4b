package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	httputil "github.com/jmylchreest/brandtint/internal/util/http"
)

// StdinSource is the source name that reads from standard input.
const StdinSource = "-"

// LoadOptions configures how documents and stylesheets are read.
type LoadOptions struct {
	// Timeout bounds remote fetches. Zero uses the HTTP default.
	Timeout time.Duration

	// Stdin is read for StdinSource. Defaults to os.Stdin.
	Stdin io.Reader

	Logger hclog.Logger
}

func (o LoadOptions) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// IsRemote reports whether source is an http or https URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load reads a brand document from a file path, a URL or standard input.
func Load(ctx context.Context, source string, opts LoadOptions) (*Document, error) {
	data, err := readSource(ctx, source, opts)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse brand document %s: %w", source, err)
	}

	opts.logger().Debug("loaded brand document",
		"source", source,
		"semantic", len(doc.Colors.Semantic),
		"properties", len(doc.Colors.CSSVariables),
		"palette", len(doc.Colors.Palette))

	return doc, nil
}

// Decode parses a brand document from JSON.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadStylesheet reads CSS from a file path, a URL or standard input and
// returns its colour-valued custom properties.
func LoadStylesheet(ctx context.Context, source string, opts LoadOptions) (Properties, error) {
	data, err := readSource(ctx, source, opts)
	if err != nil {
		return nil, err
	}

	props := ParseStylesheet(string(data))
	opts.logger().Debug("parsed stylesheet", "source", source, "bytes", len(data), "properties", len(props))

	return props, nil
}

// readSource returns the raw bytes behind a source name.
func readSource(ctx context.Context, source string, opts LoadOptions) ([]byte, error) {
	log := opts.logger()

	switch {
	case source == StdinSource:
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		log.Debug("reading standard input")
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil

	case IsRemote(source):
		log.Debug("fetching", "url", source, "timeout", opts.Timeout)
		data, err := httputil.Fetch(ctx, source, httputil.FetchOptions{Timeout: opts.Timeout})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
		}
		return data, nil

	default:
		log.Debug("reading file", "path", source)
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", source, err)
		}
		return data, nil
	}
}
