package reporter

import (
	"errors"
	"testing"
	"time"

	"go-linkedin-job-source/internal/pipeline"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}
	return tgbotapi.Message{}, b.err
}

func TestSendSummary(t *testing.T) {
	bot := &fakeBot{}
	r := NewWithSender(bot, 42)

	stats := pipeline.Stats{Roles: 1, Links: 3, Jobs: 2, PartialJobs: 1, Companies: 2, Recruiters: 1, EnrichmentFailures: 1}
	require.NoError(t, r.SendSummary("Backend Developer", stats, 95*time.Second+300*time.Millisecond))

	require.Len(t, bot.sent, 1)
	msg := bot.sent[0]
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "HTML", msg.ParseMode)
	assert.Contains(t, msg.Text, "Jobs: 3 (partial 1)")
	assert.Contains(t, msg.Text, "Recruiters: 1")
	assert.Contains(t, msg.Text, "1m35s")
}

func TestSendErrorEscapesHTML(t *testing.T) {
	bot := &fakeBot{}
	r := NewWithSender(bot, 42)

	require.NoError(t, r.SendError("C++ <dev>", errors.New("status 500 & <html>")))
	assert.Contains(t, bot.sent[0].Text, "C++ &lt;dev&gt;")
	assert.Contains(t, bot.sent[0].Text, "status 500 &amp; &lt;html&gt;")
}

func TestSendPropagatesError(t *testing.T) {
	r := NewWithSender(&fakeBot{err: errors.New("chat not found")}, 42)
	assert.Error(t, r.SendMessage("hi"))
}
