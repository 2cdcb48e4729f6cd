package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	encoding string
}

// WithEncoding decodes the file from a legacy encoding before
// unmarshaling. Recognized names: "euc-jp", "shift_jis", "sjis",
// "iso-2022-jp". The default is UTF-8 (no decoding).
func WithEncoding(name string) LoadOption {
	return func(o *loadOptions) {
		o.encoding = name
	}
}

// Load reads a configuration file. The format is chosen by extension:
// .toml is TOML, .yaml and .yml are YAML. A missing file returns the
// default configuration without error; a file that exists but does not
// parse returns a *ParseError.
func Load(path string, opts ...LoadOption) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if data, err = decode(data, o.encoding); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	return parse(path, data)
}

// LoadReader reads a configuration from r, with the format chosen by
// the extension of name.
func LoadReader(name string, r io.Reader, opts ...LoadOption) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if data, err = decode(data, o.encoding); err != nil {
		return nil, &ParseError{Path: name, Message: err.Error(), Err: err}
	}
	return parse(name, data)
}

// parse unmarshals data according to the file extension.
func parse(path string, data []byte) (*Config, error) {
	cfg := Default()

	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, &ParseError{
			Path:    path,
			Message: fmt.Sprintf("unsupported config format %q", ext),
		}
	}
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	return cfg, nil
}

// decode converts data from a legacy encoding to UTF-8.
func decode(data []byte, encoding string) ([]byte, error) {
	var t transform.Transformer
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return data, nil
	case "euc-jp", "eucjp":
		t = japanese.EUCJP.NewDecoder()
	case "shift_jis", "shift-jis", "sjis":
		t = japanese.ShiftJIS.NewDecoder()
	case "iso-2022-jp":
		t = japanese.ISO2022JP.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}

	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", encoding, err)
	}
	return out, nil
}
