package main

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port       string `env:"PORT" env-default:"8080"`
	DBPath     string `env:"DB_PATH" env-default:"gamearchive.db"`
	AdminToken string `env:"ADMIN_TOKEN" env-default:""`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
