package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/slipway-sh/slipway/pkg/slipway/application/model"
)

// Load reads the optional dotenv file at path, then the environment, the
// environment taking precedence. A missing file is not an error.
func Load(path string) (model.Config, error) {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err = v.ReadInConfig(); err != nil {
				return model.Config{}, errors.Wrapf(err, "failed to read config file %v", path)
			}
		}
	}
	v.AutomaticEnv()

	return model.Config{
		Token:               v.GetString("heroku_api_key"),
		AppPrefix:           v.GetString("slipway_app_prefix"),
		Collaborators:       splitList(v.GetString("slipway_collaborators")),
		StrictCollaborators: v.GetBool("slipway_strict_collaborators"),
		APIURL:              v.GetString("slipway_api_url"),
		GitHost:             v.GetString("slipway_git_host"),
		Branch:              v.GetString("slipway_branch"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("slipway_api_url", "https://api.heroku.com")
	v.SetDefault("slipway_git_host", "git.heroku.com")
	v.SetDefault("slipway_branch", "main")
	v.SetDefault("slipway_strict_collaborators", false)
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
