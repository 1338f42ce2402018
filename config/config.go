package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultDirectionsTimeout = 15 * time.Second
	defaultReadyTimeout      = 5 * time.Second
	defaultRetryAttempts     = 5
	defaultRetryDelay        = 400 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Directions configuration for the indoor directions backend
	Directions *DirectionsConfig `json:"directions" yaml:"directions"`

	// Renderer configuration for the embedded rendering surface bridge
	Renderer *RendererConfig `json:"renderer" yaml:"renderer"`

	// FloorPlans configuration for floor-plan document storage
	FloorPlans *FloorPlansConfig `json:"floorPlans" yaml:"floorPlans"`

	// Share configuration for navigation hand-off QR codes
	Share *ShareConfig `json:"share" yaml:"share"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DirectionsConfig defines the indoor directions backend endpoint
type DirectionsConfig struct {
	// Base URL of the directions backend, e.g. https://nav.example.edu
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Per-request timeout for all directions calls
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RendererConfig defines the rendering-surface bridge timings
type RendererConfig struct {
	// How long to wait for the surface's readiness signal before
	// force-promoting it to ready
	ReadyTimeout time.Duration `json:"readyTimeout" yaml:"readyTimeout"`

	// How many times a pending command is retried while the surface loads
	RetryAttempts int `json:"retryAttempts" yaml:"retryAttempts"`

	// Fixed delay between pending-command retries
	RetryDelay time.Duration `json:"retryDelay" yaml:"retryDelay"`

	// Outbound frame buffer size of the command channel
	CommandBuffer int `json:"commandBuffer" yaml:"commandBuffer"`
}

// FloorPlansConfig defines where floor-plan documents are stored
type FloorPlansConfig struct {
	// Bucket URL understood by gocloud blob, e.g. file:///var/plans or
	// gs://campus-floorplans
	Source string `json:"source" yaml:"source"`
}

// ShareConfig defines navigation hand-off QR code generation
type ShareConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: DIRECTIONS_BASEURL -> directions.baseUrl (not directions.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Directions != nil && cfg.Directions.Timeout <= 0 {
		cfg.Directions.Timeout = defaultDirectionsTimeout
	}

	cfg.Renderer = normalizeRenderer(cfg.Renderer)

	return cfg, nil
}

// normalizeRenderer fills unset bridge timings with defaults so the bridge
// never runs with a zero timeout or zero retries.
func normalizeRenderer(rc *RendererConfig) *RendererConfig {
	if rc == nil {
		rc = &RendererConfig{}
	}
	if rc.ReadyTimeout <= 0 {
		rc.ReadyTimeout = defaultReadyTimeout
	}
	if rc.RetryAttempts <= 0 {
		rc.RetryAttempts = defaultRetryAttempts
	}
	if rc.RetryDelay <= 0 {
		rc.RetryDelay = defaultRetryDelay
	}
	if rc.CommandBuffer <= 0 {
		rc.CommandBuffer = 64
	}

	return rc
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
