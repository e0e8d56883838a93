package notifications

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

const markdown = "mrkdwn"
const section = "section"
const divider = "divider"

type SlackWebhookProvider struct {
	WebhookURL string
}

type slackMessage struct {
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Type string `json:"type"`
	Text *Text  `json:"text,omitempty"`
}

type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (s *SlackWebhookProvider) send(msg Message) error {
	slackMessage, err := msg.AsSlackMessage()
	if err != nil {
		return fmt.Errorf("cannot create slack message: %s", err)
	}

	if slackMessage == nil {
		return nil
	}

	return s.post(slackMessage)
}

// post submits the message as a `payload` form field, the wire format
// both Slack and Mattermost incoming webhooks accept.
func (s *SlackWebhookProvider) post(msg *slackMessage) error {
	serialized, err := json.Marshal(msg)
	if err != nil {
		logrus.Printf("Could not encode message to slack: %v", err)
		return err
	}

	form := url.Values{}
	form.Set("payload", string(serialized))

	req, _ := http.NewRequest("POST", s.WebhookURL, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		logrus.Printf("could not post to webhook: %v", err)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		logrus.Infof("webhook response: %s", string(body))
		return fmt.Errorf("could not post to webhook, status: %d", res.StatusCode)
	}

	return nil
}

func commitLink(projectURL string, sha string, shortSHA string) string {
	return fmt.Sprintf("<%s/-/commit/%s|%s>", projectURL, sha, shortSHA)
}
