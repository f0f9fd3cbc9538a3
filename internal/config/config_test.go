package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "127.0.0.1:50051", cfg.GRPCHost)
	assert.False(t, cfg.GRPCSecure)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10.0, cfg.RateLimit.RPS)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, 0, cfg.Ban.Strikes)
	assert.Equal(t, time.Minute, cfg.Ban.Window)
	assert.Equal(t, 15*time.Minute, cfg.Ban.Duration)
	assert.Empty(t, cfg.Redis.Addr)
	assert.False(t, cfg.TrustProxyHeaders)
}

func TestLoad_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VIGILIO_GRPC_HOST", "vigilio.internal:443")
	t.Setenv("VIGILIO_GRPC_SECURE", "true")
	t.Setenv("VIGILIO_GRPC_CREDENTIALS_PATH", "/etc/ssl/vigilio.pem")
	t.Setenv("VIGILIO_RATELIMIT_RPS", "2.5")
	t.Setenv("VIGILIO_BAN_STRIKES", "5")
	t.Setenv("VIGILIO_BAN_DURATION", "1h")
	t.Setenv("VIGILIO_TRUST_PROXY_HEADERS", "true")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "vigilio.internal:443", cfg.GRPCHost)
	assert.True(t, cfg.GRPCSecure)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 5, cfg.Ban.Strikes)
	assert.Equal(t, time.Hour, cfg.Ban.Duration)
	assert.True(t, cfg.TrustProxyHeaders)

	d := cfg.Dial()
	assert.Equal(t, "vigilio.internal:443", d.Host)
	assert.True(t, d.Secure)
	assert.Equal(t, "/etc/ssl/vigilio.pem", d.CredentialsPath)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gateway.yaml")
	content := "http_addr: \":9090\"\ngrpc_host: upstream:50051\nratelimit:\n  enabled: false\nredis:\n  addr: redis:6379\n  db: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "upstream:50051", cfg.GRPCHost)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "redis:6379", cfg.RedisOptions().Addr)
	assert.Equal(t, 2, cfg.RedisOptions().DB)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		GRPCHost:  "localhost:50051",
		RateLimit: RateLimitConfig{Enabled: true, RPS: 1, Burst: 1},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty host", func(c *Config) { c.GRPCHost = " " }, "grpc_host is required"},
		{"zero rps", func(c *Config) { c.RateLimit.RPS = 0 }, "ratelimit.rps"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "ratelimit.burst"},
		{"limiter disabled ignores rps", func(c *Config) { c.RateLimit = RateLimitConfig{} }, ""},
		{"negative strikes", func(c *Config) { c.Ban.Strikes = -1 }, "ban.strikes"},
		{"ban without window", func(c *Config) { c.Ban = BanConfig{Strikes: 3, Duration: time.Minute} }, "ban.window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDial_InsecureIgnoresCredentials(t *testing.T) {
	cfg := Config{GRPCHost: "h:1", GRPCCredentialsPath: "/tmp/ca.pem"}
	assert.Empty(t, cfg.Dial().CredentialsPath)
}

func TestBanPolicy(t *testing.T) {
	cfg := Config{Ban: BanConfig{Strikes: 3, Window: time.Minute, Duration: time.Hour}}
	p := cfg.BanPolicy()
	assert.True(t, p.Enabled())
	assert.Equal(t, time.Hour, p.Duration)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
