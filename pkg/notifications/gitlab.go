package notifications

import (
	"fmt"

	"github.com/xanzy/go-gitlab"
)

type gitlabProvider struct {
	token   string
	baseUrl string
}

func NewGitlabProvider(token string, baseUrl string) *gitlabProvider {
	return &gitlabProvider{
		token:   token,
		baseUrl: baseUrl,
	}
}

func (g *gitlabProvider) send(msg Message) error {
	status, err := msg.AsStatus()
	if err != nil {
		return fmt.Errorf("cannot create gitlab status message: %s", err)
	}

	if status == nil {
		return nil
	}

	projectPath := msg.RepositoryName()
	if projectPath == "" {
		return fmt.Errorf("cannot determine gitlab project path")
	}

	return g.post(projectPath, msg.SHA(), status)
}

func (g *gitlabProvider) post(projectPath string, sha string, status *status) error {
	opts := []gitlab.ClientOptionFunc{}
	if g.baseUrl != "" {
		opts = append(opts, gitlab.WithBaseURL(g.baseUrl))
	}
	git, err := gitlab.NewClient(g.token, opts...)
	if err != nil {
		return fmt.Errorf("couldn't create gitlab client: %s", err)
	}

	var targetURL *string
	if status.targetURL != "" {
		targetURL = &status.targetURL
	}

	_, _, err = git.Commits.SetCommitStatus(
		projectPath,
		sha,
		&gitlab.SetCommitStatusOptions{
			State:       gitlab.BuildStateValue(status.state),
			Name:        &status.context,
			Context:     &status.context,
			TargetURL:   targetURL,
			Description: &status.description,
		},
	)

	return err
}
