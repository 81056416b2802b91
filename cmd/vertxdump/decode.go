package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/danmuck/vertxdump/internal/inspect"
	"github.com/danmuck/vertxdump/internal/stream"
	"github.com/danmuck/vertxdump/internal/wire"
)

var decodeOffset int

func init() {
	decodeCmd.Flags().IntVar(&decodeOffset, "offset", 0, "byte offset of the frame within the file")
}

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Decode a single frame from a capture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := readCapture(args[0])
		if err != nil {
			return err
		}
		msg, n, err := wire.Decode(buf, decodeOffset)
		if err != nil {
			var te *wire.TruncatedError
			if errors.As(err, &te) && te.HaveDeclared {
				logger.Warn().
					Int32("declared_length", te.DeclaredLen).
					Int("remaining", te.Remaining).
					Msg("frame incomplete; more bytes needed")
			}
			return err
		}
		logMessage(msg, n)
		return nil
	},
}

var walkCmd = &cobra.Command{
	Use:   "walk <file>",
	Short: "Decode every frame in a capture in sequence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := readCapture(args[0])
		if err != nil {
			return err
		}
		res, err := stream.WalkAll(buf)
		if err != nil {
			return err
		}
		for _, msg := range res.Messages {
			logMessage(msg, 0)
		}
		logger.Info().
			Int("messages", len(res.Messages)).
			Int("consumed", res.Consumed).
			Int("trailing", res.Trailing).
			Msg("walk complete")
		return nil
	},
}

func logMessage(msg *wire.Message, consumed int) {
	if msg.Pong {
		logger.Info().Msg("pong")
		return
	}
	event := logger.Info().
		Str("codec", msg.Codec.String()).
		Str("kind", msg.Kind.String()).
		Str("address", msg.Address).
		Str("reply_address", msg.ReplyAddress).
		Str("sender", fmt.Sprintf("%s:%d", msg.SenderHost, msg.SenderPort)).
		Int("headers", len(msg.Headers))
	if msg.Codec == wire.CodecUser {
		event = event.Str("codec_name", msg.CodecName)
	}
	if consumed > 0 {
		event = event.Int("consumed", consumed)
	}
	addBody(event, msg)
	event.Msg("message")

	for _, a := range msg.Anomalies {
		logger.Warn().Str("anomaly", a.String()).Msg("decode anomaly")
	}
}

func addBody(event *zerolog.Event, msg *wire.Message) {
	body := msg.Body
	switch body.Codec {
	case wire.CodecNull, wire.CodecPing:
	case wire.CodecByte:
		event.Int8("body", body.Byte)
	case wire.CodecBoolean:
		event.Bool("body", body.Bool)
	case wire.CodecShort:
		event.Int16("body", body.Short)
	case wire.CodecInt:
		event.Int32("body", body.Int)
	case wire.CodecLong:
		event.Int64("body", body.Long)
	case wire.CodecFloat:
		event.Float32("body", body.Float)
	case wire.CodecDouble:
		event.Float64("body", body.Double)
	case wire.CodecString:
		event.Str("body", body.Str)
	case wire.CodecChar:
		event.Int16("body", body.Char)
	case wire.CodecJSONObject, wire.CodecJSONArray:
		if out, err := inspect.BodyJSON(msg, inspect.StdChecker{Indent: prettyJSON}); err == nil {
			event.Str("body", string(out))
		} else {
			event.Str("body_raw", body.Str)
		}
	case wire.CodecReplyException:
		if f := body.Failure; f != nil {
			event.Str("failure_type", f.Type.String()).Int32("failure_code", f.Code)
			if f.HasMessage {
				event.Str("failure_message", f.Message)
			}
		}
	default:
		event.Str("body_hex", hex.EncodeToString(body.Bytes))
	}
}
