package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/session"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(color.Stdout, cfg.Delay)
	messages := ui.NewMessageWriter(printer)
	messages.Welcome()

	var human game.Player
	if !cfg.Spectate {
		human = player.NewHumanPlayer(cfg.PlayerName, ui.NewPrompter(os.Stdin, printer), messages)
	}
	difficulties := player.Difficulties(cfg.Bots, cfg.BotDifficulty(), cfg.Spectate)
	players, err := player.CreatePlayers(human, difficulties, player.NewRand())
	if err != nil {
		return err
	}

	s, err := session.New(players, session.Settings{
		Rounds: cfg.Rounds,
		Options: []game.Option{
			game.WithStarterPolicy(game.StarterPolicy{AllowSkip: cfg.AllowSkipStarter}),
			game.WithListener(ui.NewConsole(messages)),
		},
		Messages: &messages,
	})
	if err != nil {
		return err
	}

	tally, err := s.Run()
	tally.Render(color.Stdout)
	if err != nil {
		return err
	}
	log.Infof("session finished after %d round(s)\n", tally.Rounds())
	return nil
}
