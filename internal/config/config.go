package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Mongo struct {
	URI      string `yaml:"uri" env-default:"mongodb://localhost:27017"`
	Database string `yaml:"database" env-default:"exlog"`
}

type Rest struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"PORT" env-default:"3000"`
}

type Log struct {
	FilePath string `yaml:"logger_file_path"`
}

type Config struct {
	Env   string `yaml:"env" env-default:"local"`
	Mongo Mongo  `yaml:"mongo"`
	Rest  Rest   `yaml:"rest"`
	Log   Log    `yaml:"logger"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatal("cannot read config file")
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		log.Fatal(err)
	}
	return &cfg
}
