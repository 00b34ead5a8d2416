package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

var version string = "unknown"

func main() {
	var cfg Config

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal("Error retrieving user home dir")
	}
	if err = cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}
	if cfg.DbPath == "" {
		cfg.DbPath = fmt.Sprintf("%s/volunteerhub/database.db", homeDir)
	}
	if err = os.MkdirAll(filepath.Dir(cfg.DbPath), os.ModePerm); err != nil {
		log.Fatal(fmt.Errorf("Couldn't create %s, exiting", filepath.Dir(cfg.DbPath)))
	}

	run(cfg)
}
