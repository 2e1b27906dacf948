package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"smpptime/zabbix"
)

// Config describes the tool configuration.
type Config struct {
	Location string            `yaml:",omitempty"`         // zone name for receipt dates
	MySQL    string            `yaml:"mysql,omitempty"`    // receipt store DSN, empty disables it
	LogFiles map[string]string `yaml:"logFiles,omitempty"` // log level to file path
	Zabbix   *zabbix.Log       `yaml:",omitempty"`         // monitoring counters, optional

	location *time.Location // resolved from Location
}

// ParseConfig parses the configuration and initializes derived values.
func ParseConfig(data []byte) (*Config, error) {
	config := new(Config)
	err := yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}
	config.location = time.Local
	if config.Location != "" {
		if config.location, err = time.LoadLocation(config.Location); err != nil {
			return nil, err
		}
	}
	return config, nil
}

// LoadConfig loads and parses the configuration from a file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}
