package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBotAPI struct {
	mu     sync.Mutex
	calls  map[string]int
	forms  map[string]map[string]string
	hangUp string
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseMultipartForm(1 << 20)
	_ = r.ParseForm()
	method := path.Base(r.URL.Path)

	f.mu.Lock()
	f.calls[method]++
	form := map[string]string{}
	for k := range r.Form {
		form[k] = r.Form.Get(k)
	}
	f.forms[method] = form
	hangUp := f.hangUp == method
	f.mu.Unlock()

	if hangUp {
		conn, _, err := w.(http.Hijacker).Hijack()
		if err == nil {
			_ = conn.Close()
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch method {
	case "getMe":
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Ashram","username":"ashram_bot"}}`)
	case "sendMessage", "editMessageText":
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":77,"date":0,"chat":{"id":42,"type":"private"}}}`)
	case "getFile":
		fmt.Fprint(w, `{"ok":true,"result":{"file_id":"f1","file_unique_id":"u1","file_size":10,"file_path":"photos/file_1.jpg"}}`)
	case "answerCallbackQuery", "setWebhook", "deleteWebhook":
		fmt.Fprint(w, `{"ok":true,"result":true}`)
	default:
		fmt.Fprint(w, `{"ok":false,"error_code":404,"description":"Not Found"}`)
	}
}

func (f *fakeBotAPI) dropConnectionOn(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hangUp = method
}

func (f *fakeBotAPI) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeBotAPI) form(method string) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forms[method]
}

func newTestClient(t *testing.T) (*Client, *fakeBotAPI) {
	api := &fakeBotAPI{calls: map[string]int{}, forms: map[string]map[string]string{}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client, err := newClient("test-token", srv.URL+"/bot%s/%s")
	require.NoError(t, err)
	return client, api
}

func TestClientIdentity(t *testing.T) {
	client, api := newTestClient(t)

	assert.Equal(t, "@ashram_bot", client.Identity())
	assert.Equal(t, 1, api.count("getMe"))
}

func TestClientReplyWithKeyboard(t *testing.T) {
	client, api := newTestClient(t)

	id, err := client.Reply(context.Background(), 42, OutgoingMessage{
		Text:      "pick one",
		ParseMode: ParseModeMarkdown,
		Keyboard:  CategoryKeyboard(),
	})
	require.NoError(t, err)
	assert.Equal(t, 77, id)

	form := api.form("sendMessage")
	assert.Equal(t, "42", form["chat_id"])
	assert.Equal(t, "Markdown", form["parse_mode"])
	assert.Contains(t, form["reply_markup"], `"callback_data":"cat:12"`)
}

func TestClientFileURLIsCached(t *testing.T) {
	client, api := newTestClient(t)

	for i := 0; i < 3; i++ {
		url, err := client.FileURL(context.Background(), "f1")
		require.NoError(t, err)
		assert.Equal(t, "https://api.telegram.org/file/bottest-token/photos/file_1.jpg", url)
	}
	assert.Equal(t, 1, api.count("getFile"))
}

func TestClientEditKeepsKeyboard(t *testing.T) {
	client, api := newTestClient(t)

	require.NoError(t, client.Edit(context.Background(), 42, 7, OutgoingMessage{
		Text:     "try again",
		Keyboard: ReviewKeyboard(),
	}))

	form := api.form("editMessageText")
	assert.Equal(t, "7", form["message_id"])
	assert.Contains(t, form["reply_markup"], `"callback_data":"submit"`)
}

func TestClientErrorsDoNotExposeToken(t *testing.T) {
	client, api := newTestClient(t)
	api.dropConnectionOn("getFile")

	_, err := client.FileURL(context.Background(), "f1")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "test-token")
	assert.Contains(t, err.Error(), "resolve file f1")
}

func TestRedactURL(t *testing.T) {
	err := redactURL(&url.Error{
		Op:  "Post",
		URL: "https://api.telegram.org/bot123456:SECRET/getFile",
		Err: io.ErrUnexpectedEOF,
	})

	assert.Equal(t, "bot api Post: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	plain := errors.New("Bad Request: message is not modified")
	assert.Same(t, plain, redactURL(plain))
	assert.NoError(t, redactURL(nil))
}

func TestClientSetWebhookSendsSecret(t *testing.T) {
	client, api := newTestClient(t)

	require.NoError(t, client.SetWebhook(context.Background(), "https://bot.example.com/webhook/telegram", "s3cret"))
	form := api.form("setWebhook")
	assert.Equal(t, "https://bot.example.com/webhook/telegram", form["url"])
	assert.Equal(t, "s3cret", form["secret_token"])

	require.NoError(t, client.DeleteWebhook(context.Background()))
	assert.Equal(t, "true", api.form("deleteWebhook")["drop_pending_updates"])
}

func TestWithContextReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	release := make(chan struct{})
	defer close(release)

	_, err := withContext(ctx, func() (int, error) {
		<-release
		return 1, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
