package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/NicolasFache/Formula1/pkg/api"
	"github.com/NicolasFache/Formula1/pkg/bot"
	"github.com/NicolasFache/Formula1/pkg/dashboard"
	"github.com/NicolasFache/Formula1/pkg/notification"
	"github.com/NicolasFache/Formula1/pkg/pubsub"
	"github.com/NicolasFache/Formula1/pkg/store"
	"github.com/NicolasFache/Formula1/pkg/webserver"
)

const (
	defaultApiURL = "http://localhost:5000/api"

	envApiURL        = "F1_API_URL"
	envDbPath        = "F1_DB_PATH"
	envTelegramToken = "TELEGRAM_TOKEN"
	envChatIDs       = "TELEGRAM_CHAT_IDS"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	apiURL := os.Getenv(envApiURL)
	if apiURL == "" {
		apiURL = defaultApiURL
	}
	client := api.NewClient(apiURL)
	if err := client.Ping(ctx); err != nil {
		log.Printf("timing API at %s not reachable, serving cached and built-in data: %s\n", apiURL, err)
	}

	dbName := os.Getenv(envDbPath)
	if dbName == "" {
		dbName = store.DbName
	}
	st, err := store.NewManager(dbName)
	if err != nil {
		log.Printf("cache store unavailable, continuing without it: %s\n", err)
		st = nil
	} else {
		defer st.Close()
	}

	ps := pubsub.NewPubSub[dashboard.Snapshot]()
	dm := dashboard.NewManager(client, st, ps)

	// warm the listings cache in the background
	go func() {
		warmCtx, warmCancel := context.WithTimeout(ctx, time.Minute)
		defer warmCancel()
		for _, season := range dm.Seasons(warmCtx) {
			dm.Races(warmCtx, season)
		}
	}()

	exitChan := make(chan bool)
	if token := os.Getenv(envTelegramToken); token != "" {
		tgBot, err := tgbotapi.NewBotAPI(token)
		if err != nil {
			// Abort if something is wrong
			log.Panic(err)
		}
		tgBot.Debug = false

		bot.NewManager(tgBot, dm).Start(ctx)

		nm := notification.NewManager(ctx, tgBot, parseChatIDs(os.Getenv(envChatIDs)), ps)
		go nm.Start(exitChan)
	} else {
		log.Printf("%s not set, telegram surface disabled\n", envTelegramToken)
	}

	// blocks until SIGINT, then shuts down gracefully
	webserver.NewManager(dm, ps).Serve()

	close(exitChan)
	cancel()
}

func parseChatIDs(raw string) []int64 {
	var ids []int64
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			log.Printf("ignoring invalid chat id %q\n", field)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
