package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil/httpdriver"
	"github.com/accordlib/accord/utils/json"
	"github.com/accordlib/accord/utils/sendpart"
)

func TestAllowedMentionsVerify(t *testing.T) {
	t.Run("users whitelist conflict", func(t *testing.T) {
		am := AllowedMentions{
			Parse: []AllowedMentionType{AllowUserMention},
			Users: []discord.UserID{69, 420},
		}
		assert.Error(t, am.Verify())
	})

	t.Run("roles whitelist conflict", func(t *testing.T) {
		am := AllowedMentions{
			Parse: []AllowedMentionType{AllowRoleMention},
			Roles: []discord.RoleID{1337},
		}
		assert.Error(t, am.Verify())
	})

	t.Run("overbound roles", func(t *testing.T) {
		am := AllowedMentions{Roles: make([]discord.RoleID, 101)}
		assert.Error(t, am.Verify())
	})

	t.Run("valid", func(t *testing.T) {
		am := AllowedMentions{
			Parse: []AllowedMentionType{AllowEveryoneMention},
			Users: []discord.UserID{69},
		}
		assert.NoError(t, am.Verify())
	})
}

func TestSendMessage(t *testing.T) {
	client, mock := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		var body struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(req.Body, &body); err != nil {
			panic(err)
		}

		return httpdriver.NewMockResponse(200, nil, discord.Message{
			ID:        1337,
			ChannelID: 69420,
			Content:   body.Content,
		})
	})

	msg, err := client.SendMessage(69420, "a lonely paper crane")
	require.NoError(t, err)

	assert.Equal(t, discord.MessageID(1337), msg.ID)
	assert.Equal(t, "a lonely paper crane", msg.Content)

	assert.Equal(t, "POST", mock.request.Method)
	assert.Equal(t,
		EndpointChannels+"69420/messages",
		mock.request.URL.String())
	assert.Equal(t,
		"application/json",
		mock.request.Header.Get("Content-Type"))
}

func TestSendMessageEmpty(t *testing.T) {
	client, _ := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		panic("no request expected")
	})

	_, err := client.SendMessageComplex(69420, SendMessageData{})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSendMessageMultipart(t *testing.T) {
	client, mock := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		return httpdriver.NewMockResponse(200, nil, discord.Message{ID: 1})
	})

	msg, err := client.SendMessageComplex(69420, SendMessageData{
		Content: "see attached",
		Files: []sendpart.File{
			{Name: "hello.txt", Reader: strings.NewReader("hello world")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, discord.MessageID(1), msg.ID)

	ctype := mock.request.Header.Get("Content-Type")
	assert.True(t, strings.HasPrefix(ctype, "multipart/form-data"), "Content-Type %q", ctype)

	body := string(mock.request.Body)
	assert.Contains(t, body, `name="payload_json"`)
	assert.Contains(t, body, `filename="hello.txt"`)
	assert.Contains(t, body, "hello world")
}

func TestSendMessageOverboundEmbeds(t *testing.T) {
	client, _ := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		panic("no request expected")
	})

	long := discord.Embed{Description: strings.Repeat("a", 4000)}

	_, err := client.SendMessageComplex(69420, SendMessageData{
		Embeds: []discord.Embed{long, long},
	})

	var overbound *discord.ErrOverbound
	require.ErrorAs(t, err, &overbound)
	assert.Equal(t, 8000, overbound.Count)
}
