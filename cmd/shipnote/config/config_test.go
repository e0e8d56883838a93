package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setJobEnv(t *testing.T) {
	t.Setenv("NOTIFICATIONS_WEBHOOK_URL", "https://chat.example/hooks/xxx")
	t.Setenv("CI_PROJECT_TITLE", "Foo")
	t.Setenv("CI_PROJECT_URL", "https://git.example/x")
	t.Setenv("CI_ENVIRONMENT_NAME", "prod")
	t.Setenv("CI_JOB_NAME", "deploy")
	t.Setenv("CI_JOB_ID", "42")
	t.Setenv("CI_JOB_STATUS", "success")
	t.Setenv("GITLAB_USER_NAME", "alice")
	t.Setenv("CI_COMMIT_REF_NAME", "main")
}

func Test_validConfig(t *testing.T) {
	setJobEnv(t)

	config, err := Environ()
	assert.Nil(t, err)
	assert.Nil(t, config.Validate())
	assert.Equal(t, "slack", config.Notifications.Provider)
	assert.Equal(t, "prod", config.CI.Environment)
}

func Test_environmentNameDefaults(t *testing.T) {
	setJobEnv(t)
	t.Setenv("CI_ENVIRONMENT_NAME", "")

	config, err := Environ()
	assert.Nil(t, err)
	assert.Equal(t, "unknown", config.CI.Environment)
}

func Test_allMissingFieldsReported(t *testing.T) {
	setJobEnv(t)
	t.Setenv("NOTIFICATIONS_WEBHOOK_URL", "")
	t.Setenv("CI_PROJECT_URL", "")
	t.Setenv("GITLAB_USER_NAME", "")

	config, err := Environ()
	assert.Nil(t, err)

	err = config.Validate()
	assert.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "NOTIFICATIONS_WEBHOOK_URL"))
	assert.True(t, strings.Contains(err.Error(), "CI_PROJECT_URL"))
	assert.True(t, strings.Contains(err.Error(), "GITLAB_USER_NAME"))
}

func Test_discordProviderSettings(t *testing.T) {
	setJobEnv(t)
	t.Setenv("NOTIFICATIONS_PROVIDER", "discord")
	t.Setenv("NOTIFICATIONS_WEBHOOK_URL", "")

	config, err := Environ()
	assert.Nil(t, err)

	err = config.Validate()
	assert.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "NOTIFICATIONS_TOKEN"))
	assert.True(t, strings.Contains(err.Error(), "NOTIFICATIONS_DEFAULT_CHANNEL"))

	t.Setenv("NOTIFICATIONS_TOKEN", "token")
	t.Setenv("NOTIFICATIONS_DEFAULT_CHANNEL", "deploys")
	config, err = Environ()
	assert.Nil(t, err)
	assert.Nil(t, config.Validate())
}

func Test_unknownProvider(t *testing.T) {
	setJobEnv(t)
	t.Setenv("NOTIFICATIONS_PROVIDER", "msteams")

	config, err := Environ()
	assert.Nil(t, err)
	assert.NotNil(t, config.Validate())
}

func Test_gitlabStatusNeedsProjectPath(t *testing.T) {
	setJobEnv(t)
	t.Setenv("GITLAB_ADMIN_TOKEN", "glpat-xxx")

	config, err := Environ()
	assert.Nil(t, err)

	err = config.Validate()
	assert.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "CI_PROJECT_PATH"))

	t.Setenv("CI_PROJECT_PATH", "group/x")
	config, err = Environ()
	assert.Nil(t, err)
	assert.Nil(t, config.Validate())
}
