package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/iwvelando/production-optimizer/internal/config"
	"github.com/iwvelando/production-optimizer/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address         string               `yaml:"address"`
	MaxUploadSize   string               `yaml:"maxUploadSize"`
	CacheTTL        string               `yaml:"cacheTTL"`
	RateLimit       *float64             `yaml:"rateLimit"`
	RateBurst       int                  `yaml:"rateBurst"`
	MaxCandidates   int                  `yaml:"maxCandidates"`
	Logging         config.LoggingConfig `yaml:"logging"`
	uploadSizeBytes int64
	cacheTTL        time.Duration
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the server configuration used when no file is present.
func DefaultConfig() *Config {
	rateLimit := constants.DefaultRateLimit
	return &Config{
		Address:         constants.DefaultServerAddress,
		MaxUploadSize:   fmt.Sprintf("%d", constants.DefaultMaxUploadSizeBytes),
		CacheTTL:        constants.DefaultCacheTTL.String(),
		RateLimit:       &rateLimit,
		RateBurst:       constants.DefaultRateBurst,
		MaxCandidates:   constants.DefaultResponseCandidates,
		Logging:         config.LoggingConfig{},
		uploadSizeBytes: constants.DefaultMaxUploadSizeBytes,
		cacheTTL:        constants.DefaultCacheTTL,
	}
}

// CacheTTLDuration returns how long optimization results stay cached. Zero
// disables the cache.
func (c *Config) CacheTTLDuration() time.Duration {
	return c.cacheTTL
}

// RequestsPerSecond returns the sustained request rate. Zero disables limiting.
func (c *Config) RequestsPerSecond() float64 {
	if c.RateLimit == nil {
		return constants.DefaultRateLimit
	}
	return *c.RateLimit
}

// UploadSizeBytes returns the configured upload size in bytes.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadSizeBytes
}

// SetUploadSizeBytes overrides the configured upload size.
func (c *Config) SetUploadSizeBytes(size int64) {
	if size > 0 {
		c.uploadSizeBytes = size
		c.MaxUploadSize = fmt.Sprintf("%d", size)
	}
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	if err := c.normalizeCache(); err != nil {
		return err
	}
	if c.RateLimit != nil && *c.RateLimit < 0 {
		return fmt.Errorf("rateLimit must not be negative, got %v", *c.RateLimit)
	}
	if c.RateBurst <= 0 {
		c.RateBurst = constants.DefaultRateBurst
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = constants.DefaultResponseCandidates
	}

	sizeStr := strings.TrimSpace(c.MaxUploadSize)
	if sizeStr == "" {
		c.uploadSizeBytes = constants.DefaultMaxUploadSizeBytes
		c.MaxUploadSize = fmt.Sprintf("%d", constants.DefaultMaxUploadSizeBytes)
		return nil
	}

	bytes, err := ParseSize(sizeStr)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxUploadSizeBytes
	}
	c.uploadSizeBytes = bytes
	return nil
}

func (c *Config) normalizeCache() error {
	ttl := strings.TrimSpace(c.CacheTTL)
	if ttl == "" {
		c.cacheTTL = constants.DefaultCacheTTL
		c.CacheTTL = c.cacheTTL.String()
		return nil
	}
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return fmt.Errorf("invalid cacheTTL %q: %w", c.CacheTTL, err)
	}
	if d < 0 {
		return fmt.Errorf("cacheTTL must not be negative, got %s", c.CacheTTL)
	}
	c.cacheTTL = d
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	if numPart == "" {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
