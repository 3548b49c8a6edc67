package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPasswordLength     = 12
	defaultMaxRadiusKm        = 200
)

const (
	EnvLocal = "local"

	StorageDriverFirestore = "firestore"
	StorageDriverPostgres  = "postgres"

	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"

	MailProviderSendGrid = "sendgrid"

	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// App holds the public-facing settings shared by emails, slugs and QR codes
	App AppConfig `json:"app" yaml:"app"`

	// Storage selects the document store backing the repositories
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for auth and Firestore
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	// PubSub configuration for provisioning event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// QRCode configuration for public page QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Provisioning *ProvisioningConfig `json:"provisioning" yaml:"provisioning"`

	Directory *DirectoryConfig `json:"directory" yaml:"directory"`
}

// AppConfig defines the public URLs and operator contact of the platform
type AppConfig struct {
	Name          string `json:"name" yaml:"name"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	LoginURL      string `json:"loginUrl" yaml:"loginUrl"`
	AdminEmail    string `json:"adminEmail" yaml:"adminEmail"`
}

// StorageConfig defines which repository backend is wired
type StorageConfig struct {
	// Driver is "firestore" (default) or "postgres"
	Driver string `json:"driver" yaml:"driver"`
	// AutoMigrate creates the postgres tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider is "firebase" (default) or "jwt" for local development without the auth emulator
	Provider  string `json:"provider" yaml:"provider"`
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project used for auth and Firestore
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// MailConfig defines transactional email delivery
type MailConfig struct {
	// Provider is "sendgrid" or empty to only log outgoing messages
	Provider string `json:"provider" yaml:"provider"`
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	From     string `json:"from" yaml:"from"`
	FromName string `json:"fromName" yaml:"fromName"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RedisConfig defines the cache used for public directory listings
type RedisConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	Password     string        `json:"password" yaml:"password"`
	DB           int           `json:"db" yaml:"db"`
	DirectoryTTL time.Duration `json:"directoryTtl" yaml:"directoryTtl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BucketURL is a gocloud.dev blob URL (file:///..., gs://...) where generated codes are kept
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// ProvisioningConfig defines the access request workflow settings
type ProvisioningConfig struct {
	PasswordLength int           `json:"passwordLength" yaml:"passwordLength"`
	StaleAfter     time.Duration `json:"staleAfter" yaml:"staleAfter"`
	SweepInterval  time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
}

// DirectoryConfig defines the nearby companies search limits
type DirectoryConfig struct {
	MaxRadiusKm float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverFirestore
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = AuthProviderFirebase
	}
	if cfg.Provisioning == nil {
		cfg.Provisioning = &ProvisioningConfig{}
	}
	if cfg.Provisioning.PasswordLength <= 0 {
		cfg.Provisioning.PasswordLength = defaultPasswordLength
	}
	if cfg.Directory == nil {
		cfg.Directory = &DirectoryConfig{MaxRadiusKm: defaultMaxRadiusKm}
	}
	if cfg.App.LoginURL == "" && cfg.App.PublicBaseURL != "" {
		cfg.App.LoginURL = strings.TrimRight(cfg.App.PublicBaseURL, "/") + "/login"
	}
}

// Validate reports every missing required setting at once.
func (c *Config) Validate() error {
	var missing []string

	if strings.TrimSpace(c.App.PublicBaseURL) == "" {
		missing = append(missing, "app.publicBaseUrl")
	}
	if strings.TrimSpace(c.App.AdminEmail) == "" {
		missing = append(missing, "app.adminEmail")
	}

	// Login credentials always live in Firebase Auth, whatever the store and token mode.
	if c.Firebase == nil || strings.TrimSpace(c.Firebase.ProjectID) == "" {
		missing = append(missing, "firebase.projectId")
	}
	if c.Storage.Driver == StorageDriverPostgres && c.Postgres == nil {
		missing = append(missing, "postgres")
	}
	if c.Auth.Provider == AuthProviderJWT && strings.TrimSpace(c.Auth.JWTSecret) == "" {
		missing = append(missing, "auth.jwtSecret")
	}
	if c.Mail != nil && c.Mail.Provider == MailProviderSendGrid && strings.TrimSpace(c.Mail.APIKey) == "" {
		missing = append(missing, "mail.apiKey")
	}

	switch c.Storage.Driver {
	case StorageDriverFirestore, StorageDriverPostgres:
	default:
		return errors.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}

	if len(missing) > 0 {
		return errors.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
