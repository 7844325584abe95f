package model

import "errors"

type Config struct {
	Token               string
	AppPrefix           string
	Collaborators       []string
	StrictCollaborators bool
	APIURL              string
	GitHost             string
	Branch              string
}

func (c Config) Validate() error {
	if c.Token == "" {
		return errors.New("HEROKU_API_KEY is not set")
	}
	return nil
}
