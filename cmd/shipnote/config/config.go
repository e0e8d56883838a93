package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Environ returns the settings from the environment.
func Environ() (*Config, error) {
	cfg := Config{}
	err := envconfig.Process("", &cfg)
	defaults(&cfg)

	return &cfg, err
}

func defaults(c *Config) {
	if c.Notifications.Provider == "" {
		c.Notifications.Provider = "slack"
	}
	if c.CI.Environment == "" {
		c.CI.Environment = "unknown"
	}
}

// String returns the configuration in string format.
func (c *Config) String() string {
	out, _ := yaml.Marshal(c)
	return string(out)
}

type Config struct {
	Logging       Logging
	Notifications Notifications
	Gitlab        Gitlab
	CI            CI
}

// Logging provides the logging configuration.
type Logging struct {
	Debug  bool `envconfig:"DEBUG"`
	Trace  bool `envconfig:"TRACE"`
	Color  bool `envconfig:"LOGS_COLOR"`
	Pretty bool `envconfig:"LOGS_PRETTY"`
	Text   bool `envconfig:"LOGS_TEXT"`
}

type Notifications struct {
	Provider       string `envconfig:"NOTIFICATIONS_PROVIDER"`
	WebhookURL     string `envconfig:"NOTIFICATIONS_WEBHOOK_URL"`
	Token          string `envconfig:"NOTIFICATIONS_TOKEN"`
	DefaultChannel string `envconfig:"NOTIFICATIONS_DEFAULT_CHANNEL"`
}

type Gitlab struct {
	// A personal access token of the Gitlab admin or a Group Token
	AdminToken string `envconfig:"GITLAB_ADMIN_TOKEN"`
	URL        string `envconfig:"GITLAB_URL"`
}

// CI holds the variables the CI platform provides to every job.
type CI struct {
	ProjectTitle string `envconfig:"CI_PROJECT_TITLE"`
	ProjectURL   string `envconfig:"CI_PROJECT_URL"`
	ProjectPath  string `envconfig:"CI_PROJECT_PATH"`
	Environment  string `envconfig:"CI_ENVIRONMENT_NAME"`
	JobName      string `envconfig:"CI_JOB_NAME"`
	JobID        string `envconfig:"CI_JOB_ID"`
	JobStatus    string `envconfig:"CI_JOB_STATUS"`
	UserName     string `envconfig:"GITLAB_USER_NAME"`
	RefName      string `envconfig:"CI_COMMIT_REF_NAME"`
}

// Validate checks every required setting and reports all the missing ones
// in a single error.
func (c *Config) Validate() error {
	missing := []string{}

	required := []struct {
		name  string
		value string
	}{
		{"CI_PROJECT_TITLE", c.CI.ProjectTitle},
		{"CI_PROJECT_URL", c.CI.ProjectURL},
		{"CI_JOB_NAME", c.CI.JobName},
		{"CI_JOB_ID", c.CI.JobID},
		{"CI_JOB_STATUS", c.CI.JobStatus},
		{"GITLAB_USER_NAME", c.CI.UserName},
		{"CI_COMMIT_REF_NAME", c.CI.RefName},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	switch c.Notifications.Provider {
	case "slack":
		if c.Notifications.WebhookURL == "" {
			missing = append(missing, "NOTIFICATIONS_WEBHOOK_URL")
		}
	case "discord":
		if c.Notifications.Token == "" {
			missing = append(missing, "NOTIFICATIONS_TOKEN")
		}
		if c.Notifications.DefaultChannel == "" {
			missing = append(missing, "NOTIFICATIONS_DEFAULT_CHANNEL")
		}
	default:
		return fmt.Errorf("unknown notifications provider: %s", c.Notifications.Provider)
	}

	if c.Gitlab.AdminToken != "" && c.CI.ProjectPath == "" {
		missing = append(missing, "CI_PROJECT_PATH")
	}

	if len(missing) != 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}
