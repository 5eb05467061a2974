package accounting

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.uber.org/config"

	"github.com/homemade/ledgerlink/node"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	API            APISettings
	Context        ContextSettings
	ContinueOnFail bool
	Log            struct {
		Level string
	}
	AddressChecks struct {
		Enabled bool
		Region  string
	}
	// Items are the workflow items; each maps parameter names to values.
	Items []map[string]interface{}
}

type APISettings struct {
	Host             string
	Token            string
	ClientInstanceID string `yaml:"clientInstanceId"`
	BasePath         string `yaml:"basePath"`
	Timeout          string
	// RecordRequests is a directory to record requests and responses to, empty to disable.
	RecordRequests string `yaml:"recordRequests"`
	// RateLimit is the maximum requests per second, zero for unlimited.
	RateLimit float64 `yaml:"rateLimit"`
	Retries   uint64
}

type ContextSettings struct {
	ClientID     string `yaml:"clientId"`
	FiscalYearID string `yaml:"fiscalYearId"`
}

func (s APISettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Host, validation.Required, is.URL),
		validation.Field(&s.Token, validation.Required),
		validation.Field(&s.ClientInstanceID, validation.Required),
		validation.Field(&s.RateLimit, validation.Min(0.0)),
		validation.Field(&s.Timeout, validation.By(func(value interface{}) error {
			str, _ := value.(string)
			if str == "" {
				return nil
			}
			d, err := time.ParseDuration(str)
			if err != nil {
				return err
			}
			if d <= 0 {
				return errors.New("must be positive")
			}
			return nil
		})),
	)
}

// RequestTimeout returns the configured timeout, or HTTPRequestTimeout when unset.
func (s APISettings) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil || d <= 0 {
		return HTTPRequestTimeout
	}
	return d
}

func (c Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.In("trace", "debug", "info", "warn", "error", "off")),
	)
}

// RequestContext returns the per-execution credentials and identifiers.
func (c Config) RequestContext() node.RequestContext {
	return node.RequestContext{
		Host:             c.API.Host,
		Token:            c.API.Token,
		ClientInstanceID: c.API.ClientInstanceID,
		ClientID:         c.Context.ClientID,
		FiscalYearID:     c.Context.FiscalYearID,
	}
}

// ClientOptions returns the Client options implied by the API settings.
func (c Config) ClientOptions() []ClientOption {
	opts := []ClientOption{WithTimeout(c.API.RequestTimeout())}
	if c.API.BasePath != "" {
		opts = append(opts, WithBasePath(c.API.BasePath))
	}
	if c.API.RecordRequests != "" {
		opts = append(opts, WithRecording(c.API.RecordRequests))
	}
	if c.API.RateLimit > 0 {
		opts = append(opts, WithRateLimit(c.API.RateLimit, 1))
	}
	if c.API.Retries > 0 {
		opts = append(opts, WithRetries(c.API.Retries))
	}
	return opts
}

// ConfigSource is one YAML document in a layered configuration.
type ConfigSource struct {
	Name   string
	Reader io.Reader
	Length int
}

func NewConfigSource(name string, b []byte) ConfigSource {
	return ConfigSource{
		Name:   name,
		Reader: bytes.NewReader(b),
		Length: len(b),
	}
}

type CompositeEnvVar interface {
	LookupEnv(child string) (string, bool)
}

// JSONCompositeEnvVar resolves ${VAR} references from a JSON object held in
// the Parent env var, falling back to the process environment.
type JSONCompositeEnvVar struct {
	Parent string
}

func (c JSONCompositeEnvVar) LookupEnv(child string) (string, bool) {
	if c.Parent != "" {
		s := os.Getenv(c.Parent)
		if s != "" {
			m := make(map[string]string)
			err := json.Unmarshal([]byte(s), &m)
			if err == nil {
				if v, exists := m[child]; exists {
					return v, true
				}
			}
		}
	}
	return os.LookupEnv(child)
}

// LoadConfigFile loads the embedded defaults overlaid with the YAML file at path.
func LoadConfigFile(path string, compev CompositeEnvVar) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %w", err)
	}
	return LoadConfig(compev, NewConfigSource(path, b))
}

// LoadConfig merges the embedded defaults with sources, later sources winning,
// expands ${VAR} references and validates the result.
func LoadConfig(compev CompositeEnvVar, sources ...ConfigSource) (Config, error) {
	var result Config
	options := []config.YAMLOption{config.Source(bytes.NewReader(defaultsYAML))}
	for _, s := range sources {
		if s.Length > 0 {
			options = append(options, config.Source(s.Reader))
		}
	}
	options = append(options, config.Expand(compev.LookupEnv))
	yaml, err := config.NewYAML(options...)
	if err != nil {
		return result, fmt.Errorf("failed to read yaml config %w", err)
	}
	readError := func(key string, cause error) error {
		return fmt.Errorf("failed to read '%s' from yaml config %w", key, cause)
	}
	key := "api"
	if err = yaml.Get(key).Populate(&result.API); err != nil {
		return result, readError(key, err)
	}
	key = "context"
	if err = yaml.Get(key).Populate(&result.Context); err != nil {
		return result, readError(key, err)
	}
	key = "continueOnFail"
	if err = yaml.Get(key).Populate(&result.ContinueOnFail); err != nil {
		return result, readError(key, err)
	}
	key = "log"
	if err = yaml.Get(key).Populate(&result.Log); err != nil {
		return result, readError(key, err)
	}
	key = "addressChecks"
	if err = yaml.Get(key).Populate(&result.AddressChecks); err != nil {
		return result, readError(key, err)
	}
	key = "items"
	if yaml.Get(key).HasValue() {
		var items []map[string]interface{}
		if err = yaml.Get(key).Populate(&items); err != nil {
			return result, readError(key, err)
		}
		for _, item := range items {
			result.Items = append(result.Items, stringKeys(item).(map[string]interface{}))
		}
	}

	if err = result.Validate(); err != nil {
		return result, fmt.Errorf("invalid config %w", err)
	}
	return result, nil
}

// stringKeys converts the map[interface{}]interface{} values produced by YAML
// decoding into map[string]interface{} so payloads can be sent as JSON objects.
func stringKeys(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = stringKeys(val)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, val := range t {
			s[i] = stringKeys(val)
		}
		return s
	default:
		return v
	}
}
