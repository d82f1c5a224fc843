package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "key-detector.yaml"
	configPathEnv     = "KEY_DETECTOR_CONFIG"
	apktoolPathEnv    = "APKTOOL_PATH"
)

type Config struct {
	LogFile    string `yaml:"log"`
	ServerAddr string `yaml:"server_addr"`
	Output     string `yaml:"output"`
	Format     string `yaml:"format"`
	Apktool    struct {
		Path string   `yaml:"path"`
		Args []string `yaml:"args"`
	} `yaml:"apktool"`
}

// loadConfig reads the config file named by the flag, the environment or the
// default path, in that order. Only a missing default file is tolerated.
func loadConfig(flagPath string) (*Config, error) {
	path, explicit := flagPath, true
	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path == "" {
		path, explicit = defaultConfigPath, false
	}

	cfg, err := readConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, err
	}

	return cfg, nil
}

func readConfig(cfgPath string) (*Config, error) {
	cfgFile, err := os.Open(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %w", err)
	}
	defer cfgFile.Close()

	cfg := &Config{}
	dec := yaml.NewDecoder(cfgFile)
	err = dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	return cfg, nil
}

// apktoolPath applies flag > env > config precedence.
func (c *Config) apktoolPath(flagValue string) string {
	return firstNonEmpty(flagValue, os.Getenv(apktoolPathEnv), c.Apktool.Path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
