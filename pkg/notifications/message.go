package notifications

type Message interface {
	AsSlackMessage() (*slackMessage, error)
	AsDiscordMessage() (*discordMessage, error)
	AsStatus() (*status, error)
	Env() string
	RepositoryName() string
	SHA() string
}

type status struct {
	state       string
	context     string
	description string
	targetURL   string
}
