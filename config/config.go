package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/yichuanzhang/booktracker/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration
}

type Database struct {
	Path string `yaml:"path" envconfig:"DB_PATH" default:"data/booktracker.db"`
}

type Recommendations struct {
	BaseURL string        `yaml:"baseURL" envconfig:"RECOMMENDATIONS_BASE_URL" default:"https://yichuanzhangthemosthandsomeone.github.io/Assignment/"`
	Path    string        `yaml:"path" envconfig:"RECOMMENDATIONS_PATH" default:"data.json"`
	Timeout time.Duration `yaml:"timeout" envconfig:"RECOMMENDATIONS_TIMEOUT" default:"15s"`
}

type Config struct {
	Server          HTTPServer `yaml:"server"`
	Database        Database   `yaml:"database"`
	Recommendations Recommendations
	Log             logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
