package cli

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Mushinako/absqrtc/algebraic"
)

// parseValue turns a comma-separated triple ("a", "a,c" or "a,b,c") into
// a canonical Value. Slots are rationals in big.Rat syntax (3, -5, 1/2);
// this is flag parsing, not expression parsing.
func parseValue(s string) (*algebraic.Value, error) {
	parts := strings.Split(s, ",")
	args := make([]any, 0, len(parts))
	for _, p := range parts {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(p))
		if !ok {
			return nil, fmt.Errorf("cli: %q is not a rational", p)
		}
		args = append(args, r)
	}

	return algebraic.Of(args...)
}

// binaryOp builds a subcommand applying op to two values.
func binaryOp(use, short string, op func(x, y *algebraic.Value) (*algebraic.Value, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <lhs> <rhs>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseValue(args[0])
			if err != nil {
				return err
			}
			y, err := parseValue(args[1])
			if err != nil {
				return err
			}
			log.Debugf("lhs=%s rhs=%s", x, y)

			result, err := op(x, y)
			if err != nil {
				return err
			}
			printResult(cmd, result)

			return nil
		},
	}
}

func printResult(cmd *cobra.Command, v *algebraic.Value) {
	fmt.Println(v)
	if withFloat, _ := cmd.Flags().GetBool("float"); withFloat {
		fmt.Printf("≈ %g\n", v.Float64())
	}
}

var powCmd = &cobra.Command{
	Use:   "pow <value> <exponent>",
	Short: "Raise a value to an integer power (negative inverts first)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseValue(args[0])
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("cli: exponent %q is not an integer", args[1])
		}

		result, err := x.Pow(n)
		if err != nil {
			return err
		}
		printResult(cmd, result)

		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <value>",
	Short: "Print a value in canonical form with its conjugate and norm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseValue(args[0])
		if err != nil {
			return err
		}

		fmt.Println(x)
		fmt.Printf("conjugate: %s\n", x.Conjugate())
		fmt.Printf("norm:      %s\n", x.ConjugateProduct().RatString())
		fmt.Printf("float:     %g\n", x.Float64())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		binaryOp("add", "Add two values sharing a radical", (*algebraic.Value).Add),
		binaryOp("sub", "Subtract two values sharing a radical", (*algebraic.Value).Sub),
		binaryOp("mul", "Multiply two values sharing a radical", (*algebraic.Value).Mul),
		binaryOp("div", "Divide two values sharing a radical", (*algebraic.Value).Div),
		powCmd,
		showCmd,
	)
}
