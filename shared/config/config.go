package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	LogLevel       string        `yaml:"log_level"`
	LogFile        string        `yaml:"log_file"`
	JwtTTL         time.Duration `yaml:"jwt_ttl"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	// StoreTimeout bounds every single store round-trip.
	StoreTimeout time.Duration `yaml:"store_timeout"`
}

type Mongo struct {
	URI    string `yaml:"uri"`
	Dbname string `yaml:"dbname"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Mongo  Mongo  `yaml:"mongo"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if public.StoreTimeout == 0 {
		public.StoreTimeout = 10 * time.Second
	}

	return &Config{public, private}
}
