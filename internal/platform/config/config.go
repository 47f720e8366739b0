package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// データソースの種類です。
const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
)

// セッションストアの種類です。
const (
	SessionStoreFile   = "file"
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Data     DataConfig     `yaml:"data"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DataConfig はデータセットの読み込み元に関する設定です。
type DataConfig struct {
	Source     string `yaml:"source"`
	SeedFile   string `yaml:"seed_file"`
	BcryptCost int    `yaml:"bcrypt_cost"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// SessionConfig はセッションの永続化先に関する設定です。
type SessionConfig struct {
	Store    string `yaml:"store"`
	FilePath string `yaml:"file_path"`
	RedisKey string `yaml:"redis_key"`
}

// RedisConfig は Redis 接続に関する設定です。
type RedisConfig struct {
	Addr            string        `yaml:"addr"`
	Password        string        `yaml:"password"`
	DB              int           `yaml:"db"`
	DialTimeout     time.Duration `yaml:"-"`
	ReadTimeout     time.Duration `yaml:"-"`
	WriteTimeout    time.Duration `yaml:"-"`
	DialTimeoutRaw  string        `yaml:"dial_timeout"`
	ReadTimeoutRaw  string        `yaml:"read_timeout"`
	WriteTimeoutRaw string        `yaml:"write_timeout"`
}

// LogConfig はログ出力に関する設定です。
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// 秘匿値と接続先は次の環境変数で YAML の値を上書きできます。空文字の変数は無視します。
const (
	EnvDatabasePassword = "DATABASE_PASSWORD" // database.password
	EnvRedisPassword    = "REDIS_PASSWORD"    // redis.password
	EnvRedisAddr        = "REDIS_ADDR"        // redis.addr
)

// Load は指定されたパスから設定ファイルを読み込みます。
// YAML を読んだあと Env* の環境変数で上書きしてから検証します。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv は .env などで与えられた環境変数で秘匿値を上書きします。
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Redis.Addr = v
	}
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Data.validateAndNormalize(); err != nil {
		return err
	}

	if c.Data.Source == DataSourcePostgres {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	if err := c.Session.validateAndNormalize(); err != nil {
		return err
	}

	if c.Session.Store == SessionStoreRedis {
		if err := c.Redis.validateAndNormalize(); err != nil {
			return err
		}
	}

	return c.Log.validateAndNormalize()
}

func (d *DataConfig) validateAndNormalize() error {
	d.Source = strings.ToLower(strings.TrimSpace(d.Source))
	switch d.Source {
	case "":
		d.Source = DataSourceMemory
	case DataSourceMemory, DataSourcePostgres:
	default:
		return fmt.Errorf("config: data.source must be %q or %q", DataSourceMemory, DataSourcePostgres)
	}
	if d.BcryptCost != 0 && (d.BcryptCost < 4 || d.BcryptCost > 31) {
		return fmt.Errorf("config: data.bcrypt_cost must be between 4 and 31")
	}
	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (s *SessionConfig) validateAndNormalize() error {
	s.Store = strings.ToLower(strings.TrimSpace(s.Store))
	switch s.Store {
	case "":
		s.Store = SessionStoreFile
	case SessionStoreFile, SessionStoreRedis, SessionStoreMemory:
	default:
		return fmt.Errorf("config: session.store must be one of file, redis, memory")
	}
	if s.Store == SessionStoreFile && s.FilePath == "" {
		s.FilePath = "var/session.json"
	}
	if s.Store == SessionStoreRedis && s.RedisKey == "" {
		s.RedisKey = "learning-dashboard:session"
	}
	return nil
}

func (r *RedisConfig) validateAndNormalize() error {
	if r.Addr == "" {
		return fmt.Errorf("config: redis.addr must be set")
	}

	dial, err := parseDurationAllowEmpty(r.DialTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: redis.dial_timeout: %w", err)
	}
	if dial == 0 {
		dial = 5 * time.Second
	}
	r.DialTimeout = dial

	read, err := parseDurationAllowEmpty(r.ReadTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: redis.read_timeout: %w", err)
	}
	r.ReadTimeout = read

	write, err := parseDurationAllowEmpty(r.WriteTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: redis.write_timeout: %w", err)
	}
	r.WriteTimeout = write

	return nil
}

func (l *LogConfig) validateAndNormalize() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	switch l.Level {
	case "":
		l.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error")
	}

	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	switch l.Format {
	case "":
		l.Format = "json"
	case "json", "text":
	default:
		return fmt.Errorf("config: log.format must be json or text")
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// ValidateDatabase は database セクションだけを検証します。マイグレーションツールが利用します。
func (c *Config) ValidateDatabase() error {
	return c.Database.validateAndNormalize()
}
