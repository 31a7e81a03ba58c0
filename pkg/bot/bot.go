package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/NicolasFache/Formula1/pkg/dashboard"
	"github.com/NicolasFache/Formula1/pkg/model"
	"github.com/NicolasFache/Formula1/pkg/render"
)

const (
	menuSeasons  = "/seasons"
	menuRaces    = "/races"
	menuLoad     = "/load"
	menuResults  = "/results"
	menuFastest  = "/fastest"
	menuStrategy = "/strategy"
	menuSessions = "/sessions"
	menuToggle   = "/toggle"
	menuReset    = "/reset"

	fastestCount = 10
)

// Manager is the Telegram command surface of the dashboard. Every command
// reads from or drives the shared dashboard manager, so the bot and the web
// clients always see the same state.
type Manager struct {
	bot *tgbotapi.BotAPI
	dm  *dashboard.Manager
}

func NewManager(bot *tgbotapi.BotAPI, dm *dashboard.Manager) *Manager {
	return &Manager{
		bot: bot,
		dm:  dm,
	}
}

func (m *Manager) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := m.bot.GetUpdatesChan(u)
	go m.receiveUpdates(ctx, updates)

	log.Println("Start listening for telegram updates")
}

func (m *Manager) receiveUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		// stop looping if ctx is cancelled
		case <-ctx.Done():
			return
		case update := <-updates:
			if update.Message != nil {
				m.handleMessage(ctx, update.Message)
			}
		}
	}
}

func (m *Manager) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	user := message.From
	text := message.Text

	if user == nil {
		return
	}

	log.Printf("%s wrote %s", user.FirstName, text)

	var err error
	if message.IsCommand() {
		err = m.handleCommand(ctx, message.Chat.ID, text)
	}

	if err != nil {
		log.Printf("An error occured: %s", err.Error())
	}
}

func (m *Manager) handleCommand(ctx context.Context, chatId int64, command string) error {
	fields := strings.Fields(command)

	switch fields[0] {
	case menuSeasons:
		seasons := m.dm.Seasons(ctx)
		lines := make([]string, 0, len(seasons))
		for _, season := range seasons {
			lines = append(lines, fmt.Sprintf(" ▸ %d ➡ %s %d", season, menuRaces, season))
		}
		return m.reply(chatId, "Seasons:\n"+strings.Join(lines, "\n"))

	case menuRaces:
		if len(fields) < 2 {
			return m.reply(chatId, fmt.Sprintf("Usage: %s <season>", menuRaces))
		}
		season, err := strconv.Atoi(fields[1])
		if err != nil {
			return m.reply(chatId, fmt.Sprintf("Invalid season %q", fields[1]))
		}
		races := m.dm.Races(ctx, season)
		lines := make([]string, 0, len(races))
		for _, race := range races {
			lines = append(lines, fmt.Sprintf(" ▸ R%d %s ➡ %s %d %s race", race.Round, race.Name, menuLoad, season, race.ID))
		}
		return m.reply(chatId, fmt.Sprintf("Races in %d:\n%s", season, strings.Join(lines, "\n")))

	case menuLoad:
		if len(fields) < 4 {
			return m.reply(chatId, fmt.Sprintf("Usage: %s <season> <race> <session>", menuLoad))
		}
		season, err := strconv.Atoi(fields[1])
		if err != nil {
			return m.reply(chatId, fmt.Sprintf("Invalid season %q", fields[1]))
		}
		if err := m.dm.LoadSession(ctx, season, fields[2], fields[3]); err != nil {
			return err
		}
		snap := m.dm.Snapshot()
		text := fmt.Sprintf("Loaded %s %s, %d drivers with laps.\nPlotting: %s",
			snap.Header.Name, snap.Session, len(snap.LapData), strings.Join(snap.Selected, ", "))
		if snap.Notice != "" {
			text += "\n⚠️ " + snap.Notice
		}
		return m.reply(chatId, text)

	case menuResults:
		snap := m.dm.Snapshot()
		if len(snap.Header.Results) == 0 {
			return m.reply(chatId, fmt.Sprintf("No session loaded. Use %s first", menuLoad))
		}
		return m.replyTable(chatId, "Results for "+snap.Header.Name, render.ResultsTable(snap.Header))

	case menuFastest:
		snap := m.dm.Snapshot()
		if len(snap.LapData) == 0 {
			return m.reply(chatId, fmt.Sprintf("No lap data loaded. Use %s first", menuLoad))
		}
		return m.replyTable(chatId, "Fastest laps in "+snap.Header.Name, render.FastestTable(snap.LapData, fastestCount))

	case menuStrategy:
		snap := m.dm.Snapshot()
		if len(snap.Strategy.Rows) == 0 {
			return m.reply(chatId, fmt.Sprintf("No strategy data. Load a race or sprint with %s", menuLoad))
		}
		return m.replyTable(chatId, "Tire strategy for "+snap.Header.Name, render.StrategyTable(snap.Strategy))

	case menuSessions:
		snap := m.dm.Snapshot()
		if len(snap.Event.Sessions) == 0 {
			return m.reply(chatId, fmt.Sprintf("No event loaded. Use %s first", menuLoad))
		}
		return m.reply(chatId, fmt.Sprintf("Sessions for %s:\n%s",
			snap.Event.EventName, SessionCommands(snap.Season, snap.RaceID, snap.Event)))

	case menuToggle:
		if len(fields) < 2 {
			return m.reply(chatId, fmt.Sprintf("Usage: %s <driver code>", menuToggle))
		}
		code := strings.ToUpper(fields[1])
		if m.dm.ToggleDriver(code) {
			return m.reply(chatId, fmt.Sprintf("%s added to the chart", code))
		}
		return m.reply(chatId, fmt.Sprintf("%s removed from the chart", code))

	case menuReset:
		m.dm.ResetSelection()
		return m.reply(chatId, "Driver selection cleared")
	}

	return nil
}

func (m *Manager) reply(chatId int64, text string) error {
	msg := tgbotapi.NewMessage(chatId, text)
	_, err := m.bot.Send(msg)
	return err
}

func (m *Manager) replyTable(chatId int64, title, table string) error {
	msg := tgbotapi.NewMessage(chatId, fmt.Sprintf("```\n%s\n\n%s```", title, table))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	_, err := m.bot.Send(msg)
	return err
}

// SessionCommands lists the loadable sessions of an event as bot commands.
func SessionCommands(season int, raceID string, event model.EventType) string {
	lines := make([]string, 0, len(event.Sessions))
	for _, session := range event.Sessions {
		lines = append(lines, fmt.Sprintf(" ▸ %s ➡ %s %d %s %s", session.Name, menuLoad, season, raceID, session.APIName))
	}
	return strings.Join(lines, "\n")
}
