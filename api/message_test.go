package api

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil/httpdriver"
)

// fakeHistory generates messages with descending IDs starting at from.
func fakeHistory(from discord.MessageID, n int) []discord.Message {
	msgs := make([]discord.Message, n)
	for i := range msgs {
		msgs[i] = discord.Message{
			ID:      from - discord.MessageID(i),
			Content: fmt.Sprintf("message %d", i),
		}
	}
	return msgs
}

func TestMessagesPagination(t *testing.T) {
	const total = 250

	var requests []string

	client, _ := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		requests = append(requests, req.URL.RawQuery)

		query := req.URL.Query()

		before := discord.MessageID(total)
		if q := query.Get("before"); q != "" {
			snowflake, err := discord.ParseSnowflake(q)
			require.NoError(t, err)
			before = discord.MessageID(snowflake) - 1
		}

		n := MaxMessageFetchLimit
		if int(before) < n {
			n = int(before)
		}

		return httpdriver.NewMockResponse(200, nil, fakeHistory(before, n))
	})

	msgs, err := client.Messages(69420, 0)
	require.NoError(t, err)

	assert.Len(t, msgs, total)
	// 3 requests: 100 + 100 + 50.
	assert.Len(t, requests, 3)

	// Descending IDs throughout.
	for i := 1; i < len(msgs); i++ {
		assert.True(t, msgs[i].ID < msgs[i-1].ID, "messages must be sorted latest first")
	}
}

func TestMessagesLimit(t *testing.T) {
	client, mock := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		return httpdriver.NewMockResponse(200, nil, fakeHistory(100, 60))
	})

	msgs, err := client.Messages(69420, 60)
	require.NoError(t, err)
	assert.Len(t, msgs, 60)

	assert.Equal(t, "60", mock.request.URL.Query().Get("limit"))
}

func TestMessagesAfter(t *testing.T) {
	var calls int

	client, _ := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		calls++
		// Fewer than the fetch cap stops the pagination.
		return httpdriver.NewMockResponse(200, nil, fakeHistory(150, 50))
	})

	msgs, err := client.MessagesAfter(69420, 100, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Len(t, msgs, 50)
}

func TestDeleteMessagesChunks(t *testing.T) {
	var urls []string

	client, _ := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		urls = append(urls, req.URL.Path)
		return httpdriver.NewMockResponse(204, nil, nil)
	})

	ids := make([]discord.MessageID, 150)
	for i := range ids {
		ids[i] = discord.MessageID(i + 1)
	}

	require.NoError(t, client.DeleteMessages(69420, ids, ""))

	// 150 messages get split into two bulk-delete calls.
	assert.Len(t, urls, 2)
	for _, u := range urls {
		assert.Contains(t, u, "bulk-delete")
	}
}

func TestDeleteSingleMessage(t *testing.T) {
	client, mock := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		return httpdriver.NewMockResponse(204, nil, nil)
	})

	require.NoError(t, client.DeleteMessage(69420, 1337, "cleanup"))

	assert.Equal(t, "DELETE", mock.request.Method)
	assert.Equal(t, "cleanup", mock.request.Header.Get("X-Audit-Log-Reason"))
}
