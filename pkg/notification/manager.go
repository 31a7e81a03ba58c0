package notification

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nikoksr/notify"

	"github.com/NicolasFache/Formula1/pkg/dashboard"
	"github.com/NicolasFache/Formula1/pkg/pubsub"
)

// Manager pushes degraded-mode notices to the subscribed Telegram chats, so
// operators hear about upstream data problems without watching the dashboard.
type Manager struct {
	ctx     context.Context
	bot     *tgbotapi.BotAPI
	chatIDs []int64
	ps      *pubsub.PubSub[dashboard.Snapshot]
}

func NewManager(ctx context.Context, bot *tgbotapi.BotAPI, chatIDs []int64, ps *pubsub.PubSub[dashboard.Snapshot]) *Manager {
	return &Manager{
		ctx:     ctx,
		bot:     bot,
		chatIDs: chatIDs,
		ps:      ps,
	}
}

func (m *Manager) Start(exitChan <-chan bool) {
	notices := m.ps.Subscribe(pubsub.PubSubNoticeTopic)
	for {
		select {
		case <-exitChan:
			return
		case snap := <-notices:
			if snap.Notice == "" {
				continue
			}
			log.Printf("Sending notice for %s %s to %d telegram chats\n", snap.RaceID, snap.Session, len(m.chatIDs))
			if err := m.sendNotification(snap); err != nil {
				log.Printf("Error notifying chats: %s", err.Error())
			}
		}
	}
}

func (m *Manager) sendNotification(snap dashboard.Snapshot) error {
	if len(m.chatIDs) == 0 {
		return nil
	}

	tg := Telegram{}
	tg.SetClient(m.bot)
	tg.AddReceivers(m.chatIDs...)

	n := notify.NewWithServices(&tg)
	subject := fmt.Sprintf("Dashboard notice for %d %s %s:", snap.Season, snap.RaceID, snap.Session)
	return n.Send(m.ctx, subject, snap.Notice)
}
