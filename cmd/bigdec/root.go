package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	// logger is replaced by execute and again, with the verbose setting,
	// before any command runs.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "bigdec",
	Short:         "Arbitrary precision fixed point decimal tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd.ErrOrStderr(), verbose)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every step at debug level")
}

// execute runs the command line args and logs any failure to stderr,
// including argument and flag errors found before a command runs.
func execute(args []string, stderr io.Writer) error {
	logger = newLogger(stderr, false)

	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", zap.Error(err))
	}

	_ = logger.Sync()

	return err
}

// newLogger returns a JSON logger writing to w, at debug level when verbose
// is set and info level otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		NameKey:     "scope",
		EncodeLevel: zapcore.CapitalLevelEncoder,
		TimeKey:     "time",
		EncodeTime:  zapcore.RFC3339TimeEncoder,

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core, zap.AddCaller())
}
