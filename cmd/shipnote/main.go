package main

import (
	"fmt"
	"os"

	"github.com/enescakir/emoji"
	"github.com/joho/godotenv"
	"github.com/shipnote-io/shipnote/cmd/shipnote/config"
	"github.com/shipnote-io/shipnote/pkg/git/nativeGit"
	"github.com/shipnote-io/shipnote/pkg/notifications"
	"github.com/shipnote-io/shipnote/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:                 "shipnote",
		Version:              version.String(),
		Usage:                "posts the deploy status of a CI job to a team chat webhook",
		EnableBashCompletion: true,
		Action:               send,
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", emoji.CrossMark, err.Error())
		os.Exit(1)
	}
}

func send(c *cli.Context) error {
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Debugf("could not load .env file, relying on env vars")
	}

	config, err := config.Environ()
	if err != nil {
		return fmt.Errorf("invalid configuration: %s", err)
	}

	initLogging(config)
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		fmt.Println(config.String())
	}

	err = config.Validate()
	if err != nil {
		return err
	}

	repo, err := nativeGit.OpenWorkingCopy(".")
	if err != nil {
		return err
	}
	sha, shortSHA, err := nativeGit.HeadSHA(repo)
	if err != nil {
		return err
	}

	msg := notifications.DeployMessageFromJob(notifications.DeployOpts{
		ProjectTitle: config.CI.ProjectTitle,
		ProjectURL:   config.CI.ProjectURL,
		ProjectPath:  config.CI.ProjectPath,
		Env:          config.CI.Environment,
		JobName:      config.CI.JobName,
		JobID:        config.CI.JobID,
		JobStatus:    config.CI.JobStatus,
		TriggeredBy:  config.CI.UserName,
		RefName:      config.CI.RefName,
		SHA:          sha,
		ShortSHA:     shortSHA,
	})

	manager := notifications.NewManager()
	switch config.Notifications.Provider {
	case "slack":
		manager.AddProvider(&notifications.SlackWebhookProvider{
			WebhookURL: config.Notifications.WebhookURL,
		})
	case "discord":
		manager.AddProvider(&notifications.DiscordProvider{
			Token:     config.Notifications.Token,
			ChannelID: config.Notifications.DefaultChannel,
		})
	}
	if config.Gitlab.AdminToken != "" {
		manager.AddProvider(notifications.NewGitlabProvider(config.Gitlab.AdminToken, config.Gitlab.URL))
	}

	return manager.Broadcast(msg)
}

func initLogging(c *config.Config) {
	if c.Logging.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if c.Logging.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}
	if c.Logging.Text {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   c.Logging.Color,
			DisableColors: !c.Logging.Color,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			PrettyPrint: c.Logging.Pretty,
		})
	}
}
