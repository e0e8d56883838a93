package notifications

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const successStatus = "success"

type DeployOpts struct {
	ProjectTitle string
	ProjectURL   string
	ProjectPath  string
	Env          string
	JobName      string
	JobID        string
	JobStatus    string
	TriggeredBy  string
	RefName      string
	SHA          string
	ShortSHA     string
}

type deployMessage struct {
	opts DeployOpts
}

func DeployMessageFromJob(opts DeployOpts) Message {
	return &deployMessage{
		opts: opts,
	}
}

func (dm *deployMessage) header() string {
	if dm.opts.JobStatus == successStatus {
		return fmt.Sprintf(":white_check_mark: Deploy of %s to %s succeeded", dm.opts.ProjectTitle, dm.opts.Env)
	}
	return fmt.Sprintf(":x: Deploy of %s to %s failed", dm.opts.ProjectTitle, dm.opts.Env)
}

func (dm *deployMessage) body() string {
	return fmt.Sprintf("%s with job id <%s/-/jobs/%s|%s> by %s \n%s - %s ",
		dm.opts.JobName,
		dm.opts.ProjectURL,
		dm.opts.JobID,
		dm.opts.JobID,
		dm.opts.TriggeredBy,
		commitLink(dm.opts.ProjectURL, dm.opts.SHA, dm.opts.ShortSHA),
		dm.opts.RefName,
	)
}

func (dm *deployMessage) AsSlackMessage() (*slackMessage, error) {
	msg := &slackMessage{
		Blocks: []Block{},
	}

	msg.Blocks = append(msg.Blocks,
		Block{
			Type: section,
			Text: &Text{
				Type: markdown,
				Text: dm.header(),
			},
		},
	)
	msg.Blocks = append(msg.Blocks,
		Block{
			Type: divider,
		},
	)
	msg.Blocks = append(msg.Blocks,
		Block{
			Type: section,
			Text: &Text{
				Type: markdown,
				Text: dm.body(),
			},
		},
	)

	return msg, nil
}

func (dm *deployMessage) AsDiscordMessage() (*discordMessage, error) {
	msg := &discordMessage{
		Text: dm.header(),
		Embed: &discordgo.MessageEmbed{
			Type:        "article",
			Description: "",
			Color:       0,
		},
	}

	msg.Embed.Description += fmt.Sprintf("%s with job id [%s](%s/-/jobs/%s) by %s\n",
		dm.opts.JobName, dm.opts.JobID, dm.opts.ProjectURL, dm.opts.JobID, dm.opts.TriggeredBy)
	msg.Embed.Description += fmt.Sprintf("%s - %s\n",
		discordCommitLink(dm.opts.ProjectURL, dm.opts.SHA, dm.opts.ShortSHA), dm.opts.RefName)

	if dm.opts.JobStatus == successStatus {
		msg.Embed.Color = 3066993
	} else {
		msg.Embed.Color = 15158332
	}

	return msg, nil
}

func (dm *deployMessage) AsStatus() (*status, error) {
	state := successStatus
	targetURL := fmt.Sprintf("%s/-/commit/%s", dm.opts.ProjectURL, dm.opts.SHA)

	if dm.opts.JobStatus != successStatus {
		state = "failure"
		targetURL = ""
	}

	return &status{
		state:       state,
		context:     fmt.Sprintf("deploy/%s", dm.opts.Env),
		description: dm.header(),
		targetURL:   targetURL,
	}, nil
}

func (dm *deployMessage) Env() string {
	return dm.opts.Env
}

func (dm *deployMessage) RepositoryName() string {
	return dm.opts.ProjectPath
}

func (dm *deployMessage) SHA() string {
	return dm.opts.SHA
}
