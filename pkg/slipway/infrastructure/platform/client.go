package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/slipway-sh/slipway/pkg/slipway/application/service"
)

const acceptHeader = "application/vnd.heroku+json; version=3"

type createAppRequest struct {
	Name string `json:"name"`
}

type addCollaboratorRequest struct {
	User string `json:"user"`
}

// The http client carries no timeout: a hung platform API blocks until the
// user interrupts, which cancels the request context.
func NewClient(apiURL, gitHost, token string) service.PlatformGateway {
	return &client{
		apiURL:  strings.TrimSuffix(apiURL, "/"),
		gitHost: gitHost,
		token:   token,
		http:    &http.Client{},
	}
}

type client struct {
	apiURL  string
	gitHost string
	token   string
	http    *http.Client
}

func (c client) CreateApp(ctx context.Context, name string) error {
	return c.send(ctx, http.MethodPost, "/apps", createAppRequest{Name: name})
}

func (c client) AddCollaborator(ctx context.Context, app, user string) error {
	return c.send(ctx, http.MethodPost, fmt.Sprintf("/apps/%v/collaborators", app), addCollaboratorRequest{User: user})
}

func (c client) DeleteApp(ctx context.Context, name string) error {
	return c.send(ctx, http.MethodDelete, "/apps/"+name, nil)
}

func (c client) GitURL(app string) string {
	return fmt.Sprintf("https://%v/%v.git", c.gitHost, app)
}

func (c client) send(ctx context.Context, method, path string, body interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %v %v request", method, path)
		}
		reader = bytes.NewReader(encoded)
	}
	request, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build %v %v request", method, path)
	}
	request.Header.Set("Accept", acceptHeader)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.token)
	response, err := c.http.Do(request)
	if err != nil {
		return errors.Wrapf(err, "failed to send %v %v request", method, path)
	}
	defer response.Body.Close()
	if response.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		message := fmt.Sprintf("%v %v: %v", method, path, response.Status)
		if detail := bytes.TrimSpace(snippet); len(detail) > 0 {
			message = fmt.Sprintf("%v: %s", message, detail)
		}
		return errors.New(message)
	}
	_, _ = io.Copy(io.Discard, response.Body)
	return nil
}
