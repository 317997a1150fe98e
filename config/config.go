package config

import (
	"net/http"
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
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16KB"
	defaultSessionTTL         = 24 * time.Hour
	defaultSessionRetention   = 24 * time.Hour
	defaultPurgeInterval      = 10 * time.Minute
	defaultCookieName         = "session_id"
	defaultMinPasswordLength  = 6
	maxBcryptPasswordLength   = 72
)

// Storage drivers for the credential store.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Session stores.
const (
	SessionStoreDatabase = "database"
	SessionStoreRedis    = "redis"
	SessionStoreMemory   = "memory"
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

	Storage struct {
		Driver string `json:"driver" yaml:"driver"`
	} `json:"storage" yaml:"storage"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	Session *SessionConfig `json:"session" yaml:"session"`
}

// PostgresConfig configures the primary connection and optional read replicas.
type PostgresConfig struct {
	DSN             string        `json:"dsn" yaml:"dsn"`
	Replicas        []string      `json:"replicas" yaml:"replicas"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

type SQLiteConfig struct {
	Path string `json:"path" yaml:"path"`
}

type RedisConfig struct {
	URL       string `json:"url" yaml:"url"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
}

// SessionConfig controls session lifetime, storage and cookie transport.
type SessionConfig struct {
	Store string        `json:"store" yaml:"store"`
	TTL   time.Duration `json:"ttl" yaml:"ttl"`

	// Sliding extends expiry on each successful validation, at most once per SlidingInterval.
	Sliding         bool          `json:"sliding" yaml:"sliding"`
	SlidingInterval time.Duration `json:"slidingInterval" yaml:"slidingInterval"`

	// Retention is how long expired or revoked sessions are kept before purge.
	Retention     time.Duration `json:"retention" yaml:"retention"`
	PurgeInterval time.Duration `json:"purgeInterval" yaml:"purgeInterval"`

	Cookie CookieConfig `json:"cookie" yaml:"cookie"`
}

type CookieConfig struct {
	Name     string `json:"name" yaml:"name"`
	Domain   string `json:"domain" yaml:"domain"`
	Path     string `json:"path" yaml:"path"`
	Secure   bool   `json:"secure" yaml:"secure"`
	SameSite string `json:"sameSite" yaml:"sameSite"`
}

// SameSiteMode maps the configured string to http.SameSite, defaulting to Lax.
func (c CookieConfig) SameSiteMode() http.SameSite {
	switch strings.ToLower(c.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// SESSION_COOKIE_SAMESITE -> session.cookie.sameSite
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
		if cfg.Postgres == nil {
			cfg.Postgres = &PostgresConfig{}
		}
		cfg.Postgres.Replicas = replicas
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fills defaults for omitted sections and rejects unsupported choices.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		cfg.Auth.BcryptCost = bcrypt.DefaultCost
	}

	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{}
	}
	ps := cfg.PasswordStrength
	if ps.MinLength <= 0 {
		ps.MinLength = defaultMinPasswordLength
	}
	if ps.MaxLength <= 0 || ps.MaxLength > maxBcryptPasswordLength {
		ps.MaxLength = maxBcryptPasswordLength
	}
	if ps.MinLength > ps.MaxLength {
		return errors.Errorf("passwordStrength.minLength %d exceeds maxLength %d", ps.MinLength, ps.MaxLength)
	}

	if err := cfg.validateStorage(); err != nil {
		return err
	}

	return cfg.validateSession()
}

func (cfg *Config) validateStorage() error {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "", DriverSQLite:
		cfg.Storage.Driver = DriverSQLite
		if cfg.SQLite == nil {
			cfg.SQLite = &SQLiteConfig{}
		}
		if cfg.SQLite.Path == "" {
			cfg.SQLite.Path = "gatekeeper.db"
		}
	case DriverPostgres:
		cfg.Storage.Driver = DriverPostgres
		if cfg.Postgres == nil || cfg.Postgres.DSN == "" {
			return errors.New("postgres.dsn is required when storage.driver is postgres")
		}
	default:
		return errors.Errorf("unsupported storage.driver %q", cfg.Storage.Driver)
	}

	return nil
}

func (cfg *Config) validateSession() error {
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	s := cfg.Session

	switch strings.ToLower(s.Store) {
	case "", SessionStoreDatabase:
		s.Store = SessionStoreDatabase
	case SessionStoreMemory:
		s.Store = SessionStoreMemory
	case SessionStoreRedis:
		s.Store = SessionStoreRedis
		if cfg.Redis == nil || cfg.Redis.URL == "" {
			return errors.New("redis.url is required when session.store is redis")
		}
		if cfg.Redis.KeyPrefix == "" {
			cfg.Redis.KeyPrefix = "session:"
		}
	default:
		return errors.Errorf("unsupported session.store %q", s.Store)
	}

	if s.TTL <= 0 {
		s.TTL = defaultSessionTTL
	}
	if s.SlidingInterval <= 0 {
		s.SlidingInterval = s.TTL / 2
	}
	if s.Retention <= 0 {
		s.Retention = defaultSessionRetention
	}
	// Negative disables the sweeper.
	if s.PurgeInterval == 0 {
		s.PurgeInterval = defaultPurgeInterval
	}
	if s.Cookie.Name == "" {
		s.Cookie.Name = defaultCookieName
	}
	if s.Cookie.Path == "" {
		s.Cookie.Path = "/"
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

// buildReplicasFromEnv reads POSTGRES_REPLICA_{index}_DSN until the first gap.
// The singular prefix keeps koanf from decoding these into postgres.replicas.
func buildReplicasFromEnv() []string {
	var replicas []string

	for i := 0; ; i++ {
		dsn := os.Getenv("POSTGRES_REPLICA_" + strconv.Itoa(i) + "_DSN")
		if dsn == "" {
			break
		}
		replicas = append(replicas, dsn)
	}

	return replicas
}
