package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Backoffice specifics
	Backend        BackendConfig
	Proxy          ProxyConfig
	Cookie         CookieConfig
	Auth           AuthConfig
	Pages          PagesConfig
	Cache          CacheConfig
	LoginRateLimit LoginRateLimitConfig
	Cloudinary     CloudinaryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the PourPal REST API.
type BackendConfig struct {
	APIURL       string        // server-side target (BACKEND_API_URL)
	PublicAPIURL string        // client-visible base (NEXT_PUBLIC_BACKEND_API_URL)
	Timeout      time.Duration // zero means no client timeout
}

type ProxyConfig struct {
	MountPath string
}

type CookieConfig struct {
	Secure bool
	Domain string
	Path   string
}

type AuthConfig struct {
	GateMode       string // "refresh" (default) or "access"
	LoginRoute     string
	ProtectedRoute string
	PublicRoutes   []string
}

type PagesConfig struct {
	StaticDir    string
	RootRedirect string
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type LoginRateLimitConfig struct {
	PerMin int
}

type CloudinaryConfig struct {
	URL    string
	Folder string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backend
	cfg.Backend.APIURL = viper.GetString("backend.api_url")
	cfg.Backend.PublicAPIURL = viper.GetString("backend.public_api_url")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	if apiURL := viper.GetString("backend_api_url"); apiURL != "" {
		cfg.Backend.APIURL = apiURL
	}
	if publicURL := viper.GetString("next_public_backend_api_url"); publicURL != "" {
		cfg.Backend.PublicAPIURL = publicURL
	}
	cfg.Backend.APIURL = strings.TrimRight(cfg.Backend.APIURL, "/")

	cfg.Proxy.MountPath = viper.GetString("proxy.mount_path")

	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Path = viper.GetString("cookie.path")

	cfg.Auth.GateMode = viper.GetString("auth.gate_mode")
	cfg.Auth.LoginRoute = viper.GetString("auth.login_route")
	cfg.Auth.ProtectedRoute = viper.GetString("auth.protected_route")
	cfg.Auth.PublicRoutes = splitList(viper.GetString("auth.public_routes"))

	cfg.Pages.StaticDir = viper.GetString("pages.static_dir")
	cfg.Pages.RootRedirect = viper.GetString("pages.root_redirect")

	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	cfg.LoginRateLimit.PerMin = viper.GetInt("login_rate_limit.per_min")

	cfg.Cloudinary.URL = viper.GetString("cloudinary.url")
	cfg.Cloudinary.Folder = viper.GetString("cloudinary.folder")
	if cloudURL := viper.GetString("cloudinary_url"); cloudURL != "" {
		cfg.Cloudinary.URL = cloudURL
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("proxy.mount_path", "/api")
	viper.SetDefault("cookie.secure", true)
	viper.SetDefault("cookie.path", "/")

	viper.SetDefault("auth.gate_mode", "refresh")
	viper.SetDefault("auth.login_route", "/login")
	viper.SetDefault("auth.protected_route", "/store")
	viper.SetDefault("auth.public_routes", "")

	viper.SetDefault("pages.static_dir", "./web")
	viper.SetDefault("pages.root_redirect", "/login")

	viper.SetDefault("cache.size", 512)
	viper.SetDefault("cache.ttl", "30s")

	viper.SetDefault("login_rate_limit.per_min", 10)
	viper.SetDefault("cloudinary.folder", "pourpal/items")
}

func validate(cfg *Config) error {
	if cfg.Backend.APIURL == "" {
		return fmt.Errorf("backend api url is required (set BACKEND_API_URL or backend.api_url)")
	}
	switch cfg.Auth.GateMode {
	case "refresh", "access":
	default:
		return fmt.Errorf("auth.gate_mode must be 'refresh' or 'access', got %q", cfg.Auth.GateMode)
	}
	if !strings.HasPrefix(cfg.Proxy.MountPath, "/") || cfg.Proxy.MountPath == "/" {
		return fmt.Errorf("proxy.mount_path must start with '/' and name a prefix")
	}
	cfg.Proxy.MountPath = strings.TrimRight(cfg.Proxy.MountPath, "/")
	return nil
}

// splitList splits comma-separated values since viper might not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
