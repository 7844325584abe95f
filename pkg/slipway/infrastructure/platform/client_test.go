package platform

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method  string
	path    string
	headers http.Header
	body    string
}

func newRecordingServer(t *testing.T, status int, reply string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		recorded.method = r.Method
		recorded.path = r.URL.Path
		recorded.headers = r.Header.Clone()
		recorded.body = string(body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return server, recorded
}

func TestCreateApp(t *testing.T) {
	server, recorded := newRecordingServer(t, http.StatusCreated, `{"id":"1"}`)
	client := NewClient(server.URL, "git.heroku.com", "secret")

	err := client.CreateApp(context.Background(), "myapp-dev")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/apps", recorded.path)
	assert.JSONEq(t, `{"name":"myapp-dev"}`, recorded.body)
	assert.Equal(t, "application/vnd.heroku+json; version=3", recorded.headers.Get("Accept"))
	assert.Equal(t, "application/json", recorded.headers.Get("Content-Type"))
	assert.Equal(t, "Bearer secret", recorded.headers.Get("Authorization"))
}

func TestAddCollaborator(t *testing.T) {
	server, recorded := newRecordingServer(t, http.StatusCreated, `{}`)
	client := NewClient(server.URL, "git.heroku.com", "secret")

	err := client.AddCollaborator(context.Background(), "myapp-dev", "dev@acme.io")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/apps/myapp-dev/collaborators", recorded.path)
	assert.JSONEq(t, `{"user":"dev@acme.io"}`, recorded.body)
	assert.Equal(t, "Bearer secret", recorded.headers.Get("Authorization"))
}

func TestDeleteApp(t *testing.T) {
	server, recorded := newRecordingServer(t, http.StatusOK, `{}`)
	client := NewClient(server.URL, "git.heroku.com", "secret")

	err := client.DeleteApp(context.Background(), "myapp-dev")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, recorded.method)
	assert.Equal(t, "/apps/myapp-dev", recorded.path)
	assert.Empty(t, recorded.body)
	assert.Equal(t, "application/vnd.heroku+json; version=3", recorded.headers.Get("Accept"))
	assert.Equal(t, "application/json", recorded.headers.Get("Content-Type"))
}

func TestErrorStatusIncludesResponseDetail(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusUnprocessableEntity, `{"id":"invalid_params","message":"Name myapp-dev is already taken"}`)
	client := NewClient(server.URL, "git.heroku.com", "secret")

	err := client.CreateApp(context.Background(), "myapp-dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POST /apps")
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "already taken")
}

func TestGitURL(t *testing.T) {
	client := NewClient("https://api.heroku.com", "git.heroku.com", "secret")
	assert.Equal(t, "https://git.heroku.com/myapp-dev.git", client.GitURL("myapp-dev"))
}
