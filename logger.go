package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func configLogger() *zap.Logger {
	jack := &lumberjack.Logger{}
	err := viper.UnmarshalKey("logger", jack)
	if err != nil {
		log.Fatal(err)
	}

	// If the lumberjack logger is not configured, then we will use
	// stderr so that stdout only carries results. Otherwise, we will use
	// the lumberjack logger as the output for the zap logger.
	var w io.Writer = os.Stderr
	if len(jack.Filename) > 0 {
		if jack.Filename == ":stdout:" {
			w = os.Stdout
		} else {
			w = jack
		}
	}

	level := zapcore.WarnLevel
	if viper.IsSet("logger.level") {
		l, err := zap.ParseAtomicLevel(viper.GetString("logger.level"))
		if err != nil {
			log.Fatal(err)
		}
		level = l.Level()
	}

	switch {
	case viper.GetBool("debug") || viper.GetInt("verbose") > 1:
		level = zapcore.DebugLevel
	case viper.GetInt("verbose") == 1 && level > zapcore.InfoLevel:
		level = zapcore.InfoLevel
	}

	ec := zap.NewProductionEncoderConfig()
	dev := viper.GetBool("logger.dev")
	if dev {
		level = zapcore.DebugLevel
		ec = zap.NewDevelopmentEncoderConfig()
	}

	enc := zapcore.NewConsoleEncoder(ec)
	if viper.GetString("logger.format") == "json" {
		enc = zapcore.NewJSONEncoder(ec)
	}

	core := zapcore.NewCore(
		enc,
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core, zap.WithCaller(
		viper.GetBool("debug"),
	))
}

type Logger interface {
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})

	Errorf(format string, args ...interface{})
	Error(args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

var _ Logger = (*zap.SugaredLogger)(nil)

type NOOPLogger struct{}

var _ Logger = (*NOOPLogger)(nil)

func (n *NOOPLogger) Debugf(_ string, _ ...interface{}) {}
func (n *NOOPLogger) Debug(_ ...interface{})            {}
func (n *NOOPLogger) Debugw(_ string, _ ...interface{}) {
}

func (n *NOOPLogger) Info(_ ...interface{})            {}
func (n *NOOPLogger) Infof(_ string, _ ...interface{}) {}
func (n *NOOPLogger) Infow(_ string, _ ...interface{}) {
}

func (n *NOOPLogger) Warn(_ ...interface{})            {}
func (n *NOOPLogger) Warnf(_ string, _ ...interface{}) {}
func (n *NOOPLogger) Warnw(_ string, _ ...interface{}) {
}

func (n *NOOPLogger) Errorf(_ string, _ ...interface{}) {}
func (n *NOOPLogger) Error(_ ...interface{})            {}
func (n *NOOPLogger) Errorw(_ string, _ ...interface{}) {
}
