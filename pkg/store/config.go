package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the store location plus collaborator-owned settings the
// core consumes but never writes.
type Config interface {
	BasePath() string
	UserName() string
	HasCompletedOnboarding() bool
}

func LoadConfig() (Config, error) {
	// Walk the file tree from here backwards looking for a .onepct file.
	viper.SetDefault("path", "~/.onepct.db")
	viper.SetDefault("name", "")
	viper.SetDefault("onboarded", false)
	viper.SetConfigName(".onepct") // .yaml is implicit
	viper.SetEnvPrefix("ONEPCT")
	viper.AutomaticEnv()

	if override := os.Getenv("ONEPCT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:      path,
		Name:      viper.GetString("name"),
		Onboarded: viper.GetBool("onboarded"),
	}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Onboarded bool   `json:"onboarded"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) UserName() string {
	return f.Name
}

func (f *fileConfig) HasCompletedOnboarding() bool {
	return f.Onboarded
}
