package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/danmuck/vertxdump/internal/config"
	"github.com/danmuck/vertxdump/internal/observability"
)

var (
	cfgPath    string
	hexInput   bool
	prettyJSON bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "vertxdump",
	Short:         "Inspect Vert.x EventBus clustering frames from captured byte streams",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = observability.InitLogger("vertxdump")
		if cfgPath == "" {
			return nil
		}
		cfg, err := config.LoadDumpConfig(cfgPath)
		if err != nil {
			return err
		}
		if lvl, ok := observability.ParseLevel(cfg.LogLevel); ok {
			logger = logger.Level(lvl)
		}
		if !cmd.Flags().Changed("hex") {
			hexInput = cfg.HexInput
		}
		if !cmd.Flags().Changed("pretty") {
			prettyJSON = cfg.PrettyJSON
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVar(&hexInput, "hex", false, "treat input as hex text")
	rootCmd.PersistentFlags().BoolVar(&prettyJSON, "pretty", false, "indent JSON bodies")
	rootCmd.AddCommand(decodeCmd, walkCmd, configCmd)
}

// readCapture loads the input file, optionally interpreting it as hex text
// (the shape pcap tooling tends to export payloads in).
func readCapture(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !hexInput {
		return data, nil
	}
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, string(data))
	return hex.DecodeString(cleaned)
}
