package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	Log      LogConfig      `mapstructure:"log"`
	Stub     StubConfig     `mapstructure:"stub"`
}

type APIConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Version    string `mapstructure:"version"`
	Namespace  string `mapstructure:"namespace"`
	UserKey    string `mapstructure:"user_key"`
	UserKeyURL string `mapstructure:"user_key_url"`
}

type HTTPConfig struct {
	Name            string        `mapstructure:"name"`
	MaxConnsPerHost int           `mapstructure:"max_conns_per_host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
}

type DispatchConfig struct {
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type StubConfig struct {
	Addr     string `mapstructure:"addr"`
	UserKey  string `mapstructure:"user_key"`
	UserName string `mapstructure:"user_name"`
	ForumKey string `mapstructure:"forum_key"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://disqus.com/api")
	v.SetDefault("api.version", "1.1")
	v.SetDefault("api.namespace", "disqus")
	v.SetDefault("api.user_key", "")
	v.SetDefault("api.user_key_url", "http://disqus.com/api/get_my_key/")
	v.SetDefault("http.name", "disqus-go")
	v.SetDefault("http.max_conns_per_host", 16)
	v.SetDefault("http.read_timeout", 0)
	v.SetDefault("http.write_timeout", 0)
	v.SetDefault("dispatch.settle_delay", time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("stub.addr", ":5000")
	v.SetDefault("stub.user_key", "stub-user-key")
	v.SetDefault("stub.user_name", "gopher")
	v.SetDefault("stub.forum_key", "stub-forum-key")
}

// LoadConfig reads .env (if present), then the YAML file at path (if
// present), then environment variables such as API_USER_KEY, later sources
// overriding earlier ones.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, errors.Wrapf(err, "read config %s", path)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &config, nil
}
