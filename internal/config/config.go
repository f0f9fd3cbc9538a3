package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/vigilio-gateway/internal/http/ban"
	"github.com/rogerio-castellano/vigilio-gateway/internal/redissvc"
	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
	"github.com/spf13/viper"
)

const EnvPrefix = "VIGILIO"

type Config struct {
	HTTPAddr            string `mapstructure:"http_addr"`
	GRPCHost            string `mapstructure:"grpc_host"`
	GRPCSecure          bool   `mapstructure:"grpc_secure"`
	GRPCCredentialsPath string `mapstructure:"grpc_credentials_path"`
	TrustProxyHeaders   bool   `mapstructure:"trust_proxy_headers"`

	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Ban       BanConfig       `mapstructure:"ban"`
	Redis     RedisConfig     `mapstructure:"redis"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type BanConfig struct {
	Strikes  int           `mapstructure:"strikes"`
	Window   time.Duration `mapstructure:"window"`
	Duration time.Duration `mapstructure:"duration"`
}

// RedisConfig selects the ban store. An empty Addr keeps bans in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// New returns a viper instance with defaults and VIGILIO_* environment
// lookups, e.g. VIGILIO_GRPC_HOST or VIGILIO_RATELIMIT_RPS.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("grpc_host", "127.0.0.1:50051")
	v.SetDefault("grpc_secure", false)
	v.SetDefault("grpc_credentials_path", "")
	v.SetDefault("trust_proxy_headers", false)
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.rps", 10)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("ban.strikes", 0)
	v.SetDefault("ban.window", time.Minute)
	v.SetDefault("ban.duration", 15*time.Minute)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes v. With an empty file it
// looks for vigilio.{yaml,json,toml} in the working directory and /etc/vigilio.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("vigilio")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/vigilio")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.GRPCHost) == "" {
		errs = append(errs, errors.New("grpc_host is required"))
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			errs = append(errs, errors.New("ratelimit.rps must be positive"))
		}
		if c.RateLimit.Burst <= 0 {
			errs = append(errs, errors.New("ratelimit.burst must be positive"))
		}
	}
	if c.Ban.Strikes < 0 {
		errs = append(errs, errors.New("ban.strikes must not be negative"))
	}
	if c.Ban.Strikes > 0 && (c.Ban.Window <= 0 || c.Ban.Duration <= 0) {
		errs = append(errs, errors.New("ban.window and ban.duration must be positive when bans are enabled"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Dial returns the upstream connection settings. The credentials file only
// applies to secure connections.
func (c Config) Dial() vigilio.DialConfig {
	d := vigilio.DialConfig{Host: c.GRPCHost, Secure: c.GRPCSecure}
	if c.GRPCSecure {
		d.CredentialsPath = c.GRPCCredentialsPath
	}
	return d
}

func (c Config) BanPolicy() ban.Policy {
	return ban.Policy{Strikes: c.Ban.Strikes, Window: c.Ban.Window, Duration: c.Ban.Duration}
}

func (c Config) RedisOptions() redissvc.Options {
	return redissvc.Options{Addr: c.Redis.Addr, Password: c.Redis.Password, DB: c.Redis.DB}
}
