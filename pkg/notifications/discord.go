package notifications

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type DiscordProvider struct {
	Token     string
	ChannelID string
}

type discordMessage struct {
	Text  string                  `json:"text"`
	Embed *discordgo.MessageEmbed `json:"embed"`
}

func (d *DiscordProvider) send(msg Message) error {
	discordBot, err := discordgo.New("Bot " + d.Token)
	if err != nil {
		return fmt.Errorf("error creating Discord session, %s", err)
	}

	discordMessage, err := msg.AsDiscordMessage()
	if err != nil {
		return fmt.Errorf("cannot create discord message: %s", err)
	}

	if discordMessage == nil {
		return nil
	}

	return d.post(discordBot, discordMessage)
}

func (d *DiscordProvider) post(session *discordgo.Session, msg *discordMessage) error {
	_, err := session.ChannelMessageSend(d.ChannelID, msg.Text)
	if err != nil {
		return err
	}

	_, err = session.ChannelMessageSendEmbed(d.ChannelID, msg.Embed)
	if err != nil {
		return err
	}

	return nil
}

func discordCommitLink(projectURL string, sha string, shortSHA string) string {
	return fmt.Sprintf("[%s](%s/-/commit/%s)", shortSHA, projectURL, sha)
}
