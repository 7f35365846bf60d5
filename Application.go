package main

import (
	"Pongo/core"
	"Pongo/logger"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	flags, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		// pflag has already printed the error and usage.
		os.Exit(2)
	}
	env, _ := flags.GetString("env")
	dir, _ := flags.GetString("config-dir")

	if err := logger.Log.Init(dir); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	settings, err := loadSettings(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, env, dir))

	var cues core.Cues
	if settings.Sound {
		sound, err := NewSound()
		if err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.SoundInitFailedMsg, err))
		} else {
			defer sound.Close()
			cues = sound
		}
	}

	screen, err := initScreen()
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.ScreenInitFailedMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	NewPongGame(screen, settings, cues).Run()
}

func parseFlags(args []string) (*pflag.FlagSet, error) {
	flags := pflag.NewFlagSet("pongo", pflag.ContinueOnError)
	flags.String("env", "local", "properties profile, read from <config-dir>/properties/<env>.properties")
	flags.String("config-dir", ".", "directory holding logger.properties and properties/")
	flags.Bool("sound", false, "play sound cues")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

// loadSettings reads the properties profile named by --env. --sound, when
// given, overrides SOUND from the file.
func loadSettings(flags *pflag.FlagSet) (*core.Settings, error) {
	env, err := flags.GetString("env")
	if err != nil {
		return nil, err
	}
	dir, err := flags.GetString("config-dir")
	if err != nil {
		return nil, err
	}
	v := viper.New()
	if err := v.BindPFlag("SOUND", flags.Lookup("sound")); err != nil {
		return nil, fmt.Errorf("bind --sound: %w", err)
	}
	return core.ReadProperties(v, dir, env)
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	return screen, nil
}
