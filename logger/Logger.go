package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = NewLogger()

// Logger writes JSON lines through logrus and optionally echoes to stdout.
// Echo must stay off while the terminal UI owns the screen.
type Logger struct {
	base    *logrus.Logger
	entry   *logrus.Entry
	console bool
}

// NewLogger returns a logger that discards everything until Init is called.
func NewLogger() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return &Logger{base: base, entry: logrus.NewEntry(base)}
}

type loggerProperties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	level       string
}

func readLoggerProperties(dir string) (loggerProperties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pongo.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return loggerProperties{}, fmt.Errorf("read logger properties: %w", err)
		}
	}

	return loggerProperties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		level:       cast.ToString(v.Get("level")),
	}, nil
}

// Init reads <dir>/logger.properties and routes output to a rotating file.
// Relative log file names are resolved against dir.
func (l *Logger) Init(dir string) error {
	props, err := readLoggerProperties(dir)
	if err != nil {
		return err
	}

	filename := props.logFilename
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(dir, filename)
	}

	l.base.SetOutput(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	})
	l.base.SetFormatter(&logrus.JSONFormatter{})
	l.base.SetLevel(parseLevel(props.level))
	return nil
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// SetOutput replaces the log destination, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.base.SetOutput(w)
}

func (l *Logger) SetLevel(level string) {
	l.base.SetLevel(parseLevel(level))
}

func (l *Logger) SetConsole(on bool) {
	l.console = on
}

// Session tags every following line with the play session id.
func (l *Logger) Session(id string) {
	l.entry = logrus.NewEntry(l.base).WithField("session", id)
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.echo("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal:", message)
	l.entry.Fatal(message)
}

func (l *Logger) echo(prefix, message string) {
	if l.console {
		fmt.Fprintln(os.Stdout, prefix, message)
	}
}
