package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/bigdec/decimal"
)

const nullArg = "null"

var encodeCmd = &cobra.Command{
	Use:   "encode X...",
	Short: "Print the hex stream encoding of decimals",
	Long: `Print the hex stream encoding of decimals.

With --nullable the argument "null" encodes a null value.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := schemaFlags(cmd)
		if err != nil {
			return err
		}

		out, err := encode(args, schema)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

		return err
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode HEX",
	Short: "Print the decimals in a hex stream encoding, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := schemaFlags(cmd)
		if err != nil {
			return err
		}

		return decode(cmd.OutOrStdout(), args[0], schema)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{encodeCmd, decodeCmd} {
		rootCmd.AddCommand(cmd)
		cmd.Flags().IntP(precisionFlagName, "p", -1, "Fix every value to this precision (negative keeps each value's own)")
		cmd.Flags().Bool("nullable", false, "Allow null values")
	}
}

func schemaFlags(cmd *cobra.Command) (schema decimal.Schema, err error) {
	precision, err := cmd.Flags().GetInt(precisionFlagName)
	if err != nil {
		return schema, err
	}

	nullable, err := cmd.Flags().GetBool("nullable")
	if err != nil {
		return schema, err
	}

	if precision >= 0 {
		schema.Precision = precision
		schema.Fixed = true
	}
	schema.Nullable = nullable

	return schema, nil
}

func encode(args []string, schema decimal.Schema) (string, error) {
	buf := &bytes.Buffer{}
	enc := decimal.NewEncoder(buf, schema)

	for _, arg := range args {
		var v *decimal.Decimal

		if arg != nullArg || !schema.Nullable {
			d, err := decimal.Parse(arg)
			if err != nil {
				return "", err
			}

			v = &d
		}

		err := enc.Encode(v)
		if err != nil {
			return "", err
		}
	}

	logger.Debug("encoded", zap.Int("values", len(args)), zap.Int("bytes", buf.Len()))

	return hex.EncodeToString(buf.Bytes()), nil
}

func decode(w io.Writer, h string, schema decimal.Schema) error {
	data, err := hex.DecodeString(h)
	if err != nil {
		return decimal.InvalidArgument.Wrap(err)
	}

	dec := decimal.NewDecoder(bytes.NewReader(data), schema)

	for n := 0; ; n++ {
		d, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			logger.Debug("decoded", zap.Int("values", n), zap.Int("bytes", len(data)))

			return nil
		}
		if err != nil {
			return err
		}

		line := nullArg
		if d != nil {
			line = d.String()
		}

		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return err
		}
	}
}
