package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/bigdec/decimal"
)

const precisionFlagName = "precision"

var evalCmd = &cobra.Command{
	Use:   "eval X OP Y [M]",
	Short: "Evaluate a decimal operation",
	Long: `Evaluate X OP Y and print the result.

OP is one of + - * / % pow modpow cmp. modpow takes the modulus M as a fourth
argument and computes X^Y mod M. cmp prints -1, 0 or 1.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		precision, err := cmd.Flags().GetInt(precisionFlagName)
		if err != nil {
			return err
		}

		result, err := eval(args, precision)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), result)

		return err
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().IntP(precisionFlagName, "p", -1, "Rebase every operand to this precision first (negative keeps the parsed precision)")
}

// eval computes args[0] args[1] args[2] [args[3]]. Operands are rebased to
// precision when it is not negative.
func eval(args []string, precision int) (string, error) {
	op := args[1]

	operands := make([]decimal.Decimal, 0, len(args)-1)
	for i, arg := range args {
		if i == 1 {
			continue
		}

		d, err := decimal.Parse(arg)
		if err != nil {
			return "", err
		}

		if precision >= 0 {
			d = d.Rebase(precision)
		}

		operands = append(operands, d)
	}

	if (op == "modpow") != (len(operands) == 3) {
		return "", decimal.InvalidArgument.New("unexpected argument count %d for %s", len(args), op)
	}

	x, y := operands[0], operands[1]

	logger.Debug("eval",
		zap.String("op", op),
		zap.Stringer("x", x),
		zap.Stringer("y", y),
		zap.Int("precision", precision),
	)

	switch op {
	case "+":
		return x.Add(y).String(), nil
	case "-":
		return x.Sub(y).String(), nil
	case "*":
		return x.Mul(y).String(), nil
	case "/":
		q, err := x.Div(y)
		if err != nil {
			return "", err
		}

		return q.String(), nil
	case "%":
		r, err := x.Rem(y)
		if err != nil {
			return "", err
		}

		return r.String(), nil
	case "pow":
		e, err := exponent(y)
		if err != nil {
			return "", err
		}

		p, err := x.PowBig(e)
		if err != nil {
			return "", err
		}

		return p.String(), nil
	case "modpow":
		e, err := exponent(y)
		if err != nil {
			return "", err
		}

		p, err := x.ModPow(e, operands[2])
		if err != nil {
			return "", err
		}

		return p.String(), nil
	case "cmp":
		return strconv.Itoa(x.Cmp(y)), nil
	}

	return "", decimal.InvalidArgument.New("unknown operation %q", op)
}

func exponent(d decimal.Decimal) (*big.Int, error) {
	if !d.IsInteger() {
		return nil, decimal.InvalidArgument.New("exponent %s is not an integer", d)
	}

	return d.IntegerPart(), nil
}
