package validator

import (
	"strings"
	"testing"

	"hypeup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *usecase.SubmitApplicationInput {
	return &usecase.SubmitApplicationInput{
		TelegramUsername: "@streamer_one",
		TwitchChannel:    "https://twitch.tv/streamer_one",
		ContentType:      "gaming",
		StreamSchedule:   "weekday evenings",
		Goals:            "grow a loyal community",
		Challenges:       "discoverability is hard",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	out := make(map[string]string, len(vErr.Fields))
	for _, fe := range vErr.Fields {
		out[fe.Field] = fe.Message
	}

	return out
}

func TestValidator_ValidSubmission(t *testing.T) {
	assert.NoError(t, New().Validate(validInput()))
}

func TestValidator_HandleWithoutAtSign(t *testing.T) {
	input := validInput()
	input.TelegramUsername = "streamer_one"

	assert.NoError(t, New().Validate(input))
}

func TestValidator_RejectsBadHandle(t *testing.T) {
	for _, handle := range []string{"@", "a", "has spaces", "@way-too%bad", "@" + strings.Repeat("x", 40)} {
		input := validInput()
		input.TelegramUsername = handle

		err := New().Validate(input)

		require.Error(t, err, "handle %q", handle)
		fields := fieldErrors(t, err)
		assert.Contains(t, fields, "telegramUsername")
	}
}

func TestValidator_MissingRequiredFields(t *testing.T) {
	err := New().Validate(&usecase.SubmitApplicationInput{})

	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "telegramUsername")
	assert.Contains(t, fields, "contentType")
	assert.Contains(t, fields, "streamSchedule")
	assert.Contains(t, fields, "goals")
	assert.Contains(t, fields, "challenges")
	assert.Equal(t, "contentType is required", fields["contentType"])
}

func TestValidator_ShortGoalsAndChallenges(t *testing.T) {
	input := validInput()
	input.Goals = "too short"
	input.Challenges = "short"

	fields := fieldErrors(t, New().Validate(input))

	assert.Equal(t, "goals must be at least 10 characters", fields["goals"])
	assert.Equal(t, "challenges must be at least 10 characters", fields["challenges"])
}

func TestValidator_OptionalChannelsMayBeEmpty(t *testing.T) {
	input := validInput()
	input.TwitchChannel = ""
	input.YoutubeChannel = ""

	assert.NoError(t, New().Validate(input))
}

func TestValidator_RejectsMalformedChannelURL(t *testing.T) {
	input := validInput()
	input.TwitchChannel = "not a url"

	fields := fieldErrors(t, New().Validate(input))

	assert.Equal(t, "twitchChannel must be a valid URL", fields["twitchChannel"])
}

func TestValidator_LoginRequiresBothFields(t *testing.T) {
	fields := fieldErrors(t, New().Validate(&usecase.LoginInput{Username: "admin"}))

	assert.NotContains(t, fields, "username")
	assert.Contains(t, fields, "password")
}

func TestValidator_ChatMessageRequired(t *testing.T) {
	fields := fieldErrors(t, New().Validate(&usecase.ChatMessageInput{}))

	assert.Contains(t, fields, "message")
}
