package circleci

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"

	"github.com/slipway-sh/slipway/pkg/slipway/application/model"
	"github.com/slipway-sh/slipway/pkg/slipway/application/service"
)

const (
	configFileName = "circle.yml"
	commitMessage  = "Add circle.yml"
)

const configTemplate = `machine:
  pre:
    - heroku plugins:install heroku-pipeline
    - heroku plugins:install heroku-builds

test:
  override:
    - make test

deployment:
  production:
    branch: {{.Branch}}
    commands:
      - git push --force {{.DevGitURL}} $CIRCLE_SHA1:refs/heads/{{.Branch}}
      - heroku pipeline:promote -a {{.DevApp}}
      - heroku pipeline:promote -a {{.StageApp}}
`

var configTmpl = template.Must(template.New(configFileName).Parse(configTemplate))

type templateParams struct {
	DevApp    string
	StageApp  string
	DevGitURL string
	Branch    string
}

func NewConfigGenerator(
	branch string,
	gateway service.PlatformGateway,
	sourceControl service.SourceControl,
) service.ConfigGenerator {
	return &generator{
		branch:        branch,
		gateway:       gateway,
		sourceControl: sourceControl,
	}
}

type generator struct {
	branch string

	gateway       service.PlatformGateway
	sourceControl service.SourceControl
}

// Generate overwrites circle.yml in dir and commits it; pushing is left to
// the caller.
func (g generator) Generate(ctx context.Context, dir string, pipeline model.Pipeline) error {
	dev, ok := pipeline.App(model.TierDev)
	if !ok {
		return fmt.Errorf("pipeline %v has no %v app", pipeline.Base, model.TierDev)
	}
	stage, ok := pipeline.App(model.TierStage)
	if !ok {
		return fmt.Errorf("pipeline %v has no %v app", pipeline.Base, model.TierStage)
	}
	var buffer bytes.Buffer
	err := configTmpl.Execute(&buffer, templateParams{
		DevApp:    dev.Name,
		StageApp:  stage.Name,
		DevGitURL: g.gateway.GitURL(dev.Name),
		Branch:    g.branch,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to render %v", configFileName)
	}
	err = os.WriteFile(filepath.Join(dir, configFileName), buffer.Bytes(), 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to write %v", configFileName)
	}
	return g.sourceControl.Commit(ctx, dir, configFileName, commitMessage)
}
