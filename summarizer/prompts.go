package summarizer

import (
	"fmt"
	"strings"

	"rss-summarizer/config"
)

const summaryPromptTemplate = `
Provide a very short summary, no more than four sentences, for the following article:

%s

Summary:

`

// TopicGeneralNews is the default label when the model gives none.
const TopicGeneralNews = "General News"

// Topics is the closed label set the classification prompt asks for.
var Topics = []string{
	TopicGeneralNews,
	"Sports",
	"Politics",
	"Media",
	"Entertainment",
	"Business",
	"Technology",
	"Health",
}

type topicExample struct {
	Text  string
	Topic string
}

var topicExamples = []topicExample{
	{
		Text:  "The home side scored twice in stoppage time to win the cup final and secure their first trophy in a decade.",
		Topic: "Sports",
	},
	{
		Text:  "Lawmakers passed the budget bill late on Friday after weeks of negotiation between the two parties, sending it to the president for signature.",
		Topic: "Politics",
	},
	{
		Text:  "The company released a patch for a critical vulnerability in its VPN appliance that attackers were actively exploiting to gain remote access.",
		Topic: "Technology",
	},
	{
		Text:  "Shares of the retailer fell 8% after it cut its annual revenue forecast, citing weaker consumer spending.",
		Topic: "Business",
	},
}

// BuildSummaryPrompt stuffs every document into a single summary prompt.
func BuildSummaryPrompt(text string) string {
	return fmt.Sprintf(summaryPromptTemplate, text)
}

// BuildTopicPrompt asks for one label for summary, after four fixed examples.
func BuildTopicPrompt(summary string) string {
	var b strings.Builder
	b.WriteString("Classify the text into one of the following classes: ")
	b.WriteString(strings.Join(Topics, ", "))
	b.WriteString(".\n\n")
	for _, ex := range topicExamples {
		fmt.Fprintf(&b, "text: %s\nclass: %s\n\n", ex.Text, ex.Topic)
	}
	fmt.Fprintf(&b, "text: %s\nclass:\n", strings.TrimSpace(summary))
	return b.String()
}

// NormalizeTopic applies the topic policy to a raw model label.
// passthrough keeps any non-empty label as is; coerce maps it onto Topics
// case-insensitively and falls back to General News.
func NormalizeTopic(label, policy string) string {
	label = strings.TrimSpace(label)
	label = strings.Trim(label, "\"'`.")
	label = strings.TrimSpace(strings.TrimPrefix(label, "class:"))
	if label == "" {
		return TopicGeneralNews
	}
	if policy != config.TopicPolicyCoerce {
		return label
	}
	for _, topic := range Topics {
		if strings.EqualFold(topic, label) {
			return topic
		}
	}
	return TopicGeneralNews
}
