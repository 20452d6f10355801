// Package chatbot implements the canned-reply selection for the chat widget.
package chatbot

import (
	"strings"

	"hypeup/internal/domain/service"
)

// replyRule pairs a keyword group with its canned response. Rules are
// evaluated in order; the first group with any keyword present in the
// lowercased message wins.
type replyRule struct {
	keywords []string
	response string
}

// The rule table and reply texts are the published widget behaviour;
// changing a string here changes what visitors see.
var rules = []replyRule{
	{
		keywords: []string{"help", "support"},
		response: "I'm here to help! You can ask me about streaming tips, technical issues, or how to grow your audience. What specific area would you like assistance with?",
	},
	{
		keywords: []string{"stream", "streaming"},
		response: "Great question about streaming! For the best streaming experience, make sure you have a stable internet connection, good lighting, and engaging content. What aspect of streaming would you like to know more about?",
	},
	{
		keywords: []string{"grow", "audience"},
		response: "Growing your audience takes time and consistency! Focus on creating quality content, engaging with your viewers, and maintaining a regular schedule. The Hype UP community is here to support your journey!",
	},
	{
		keywords: []string{"technical", "problem"},
		response: "Technical issues can be frustrating! Common solutions include checking your internet connection, updating your streaming software, and adjusting your stream settings. If the problem persists, our technical team can provide more specific help.",
	},
}

const defaultResponse = "Thanks for your message! Our team will get back to you soon. In the meantime, check out our FAQ section for common questions."

// keywordResponder implements service.ChatbotResponder over the static rule table.
type keywordResponder struct{}

// NewKeywordResponder is the constructor for keywordResponder.
func NewKeywordResponder() service.ChatbotResponder {
	return &keywordResponder{}
}

// Reply returns the canned response for the first matching keyword group,
// or the default response when nothing matches.
func (r *keywordResponder) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.response
			}
		}
	}

	return defaultResponse
}
