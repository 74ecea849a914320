package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

type Log struct {
	Level string `yaml:"level"`
	// File is empty when file logging is off.
	File string `yaml:"file"`
}

type Server struct {
	Address string `yaml:"address"`
}

type Config struct {
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
}

func Default() *Config {
	return &Config{
		Log: Log{
			Level: "info",
			File:  "",
		},
		Server: Server{
			Address: "127.0.0.1:5555",
		},
	}
}

var (
	lock    sync.Mutex
	once    sync.Once
	loaded  *Config
	loadErr error
)

var configPath = os.Getenv("HOME") + "/.coinmatch/config.yml"

func Path() string {
	lock.Lock()
	defer lock.Unlock()
	return configPath
}

// SetPath points the package at another config file and forgets
// whatever Get loaded before.
func SetPath(path string) {
	lock.Lock()
	defer lock.Unlock()

	configPath = path
	once = sync.Once{}
	loaded, loadErr = nil, nil
}

// Get loads the config file once. Without a config file the defaults apply.
func Get() (*Config, error) {
	lock.Lock()
	defer lock.Unlock()

	once.Do(func() {
		loaded, loadErr = load(configPath)
	})
	return loaded, loadErr
}

func load(path string) (*Config, error) {
	conf := Default()
	if !fileExists(path) {
		return conf, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cannot read config, err: %s", err)
	}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("error in read config, err: %s", err)
	}
	return conf, nil
}
