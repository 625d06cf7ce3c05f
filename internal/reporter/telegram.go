package reporter

import (
	"fmt"
	"strings"
	"time"

	"go-linkedin-job-source/internal/pipeline"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender delivers one chat message.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramReporter struct {
	bot    Sender
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return NewWithSender(bot, chatID), nil
}

func NewWithSender(bot Sender, chatID int64) *TelegramReporter {
	return &TelegramReporter{bot: bot, chatID: chatID}
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendSummary reports the counts of a finished run.
func (t *TelegramReporter) SendSummary(role string, stats pipeline.Stats, took time.Duration) error {
	return t.SendMessage(FormatSummary(role, stats, took))
}

func (t *TelegramReporter) SendError(role string, errReq error) error {
	text := fmt.Sprintf("⚠️ <b>LinkedIn source failed</b> (%s):\n%v", escape(role), escape(errReq.Error()))
	return t.SendMessage(text)
}

func FormatSummary(role string, stats pipeline.Stats, took time.Duration) string {
	return fmt.Sprintf(
		"✅ <b>LinkedIn sync finished</b> (%s)\n"+
			"💼 Roles: %d\n"+
			"🔗 Links: %d\n"+
			"📄 Jobs: %d (partial %d)\n"+
			"🏢 Companies: %d\n"+
			"👤 Recruiters: %d\n"+
			"🤖 Enrichment failures: %d\n"+
			"⏱ %s",
		escape(role),
		stats.Roles,
		stats.Links,
		stats.Jobs+stats.PartialJobs, stats.PartialJobs,
		stats.Companies,
		stats.Recruiters,
		stats.EnrichmentFailures,
		took.Round(time.Second),
	)
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return htmlEscaper.Replace(s)
}
