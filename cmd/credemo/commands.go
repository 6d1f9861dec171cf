package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/gocomputable/creal/cr"
)

var (
	precBits int
	base     int
)

var rootCmd = &cobra.Command{
	Use:   "credemo",
	Short: "Demonstrates the creal computable-real arithmetic library",
	Long: `credemo drives the creal library's lazy, resource-indexed computable
reals through a handful of worked examples: evaluating pi and the
square root of a decimal literal, and re-running a couple
of the classic ill-conditioned test cases that defeat fixed-precision
floating point.`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&precBits, "prec", 64, "bits of certified precision to require")
	rootCmd.PersistentFlags().IntVar(&base, "base", 10, "rendering base; no subcommand reads it, and results are always printed in base 10")

	rootCmd.AddCommand(piCmd, sqrtCmd, rump1Cmd, rump2Cmd)
}

var piCmd = &cobra.Command{
	Use:   "pi",
	Short: "Require and print pi to the requested precision",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(cr.ShowCR(precBits, cr.Pi))
		return nil
	},
}

var sqrtCmd = &cobra.Command{
	Use:   "sqrt [x]",
	Short: "Require and print the square root of a decimal literal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, ok := cr.Parse(args[0])
		if !ok {
			return fmt.Errorf("credemo: %q is not a valid decimal literal", args[0])
		}
		if x.Sign(precBits) < 0 {
			return fmt.Errorf("credemo: sqrt of a negative value")
		}
		fmt.Println(cr.ShowCR(precBits, cr.Sqrt(x)))
		return nil
	},
}

var rump1Cmd = &cobra.Command{
	Use:   "rump1",
	Short: "Evaluate Rump's ill-conditioned polynomial at a=77617, b=33096",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(cr.ShowCR(precBits, rump1()))
		return nil
	},
}

var rump2Cmd = &cobra.Command{
	Use:   "rump2",
	Short: "Evaluate the second Rump-style catastrophic-cancellation polynomial",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(cr.ShowCR(precBits, rump2()))
		return nil
	},
}

// rump1 is scenario S1: 21b² - 2a² + 55b⁴ - 10a²b² + a/(2b), whose
// correctly-rounded value is negative even though evaluating it in
// double precision gets the sign wrong.
func rump1() cr.CR {
	a := cr.FromInteger(big.NewInt(77617))
	b := cr.FromInteger(big.NewInt(33096))
	two := cr.FromInteger(big.NewInt(2))

	a2 := cr.Mul(a, a)
	b2 := cr.Mul(b, b)
	b4 := cr.Mul(b2, b2)

	term1 := cr.Mul(cr.FromInteger(big.NewInt(21)), b2)
	term2 := cr.Mul(cr.FromInteger(big.NewInt(2)), a2)
	term3 := cr.Mul(cr.FromInteger(big.NewInt(55)), b4)
	term4 := cr.Mul(cr.FromInteger(big.NewInt(10)), cr.Mul(a2, b2))
	term5 := cr.Quo(a, cr.Mul(two, b))

	return cr.Add(cr.Sub(cr.Add(cr.Sub(term1, term2), term3), term4), term5)
}

// rump2 is scenario S2: p = 206987/2048, q = 119504/2048 and
//
//	r = p³·(p¹⁶ + 6561q¹⁶ - 17496p²q¹⁴ + 20412p⁴q¹² - 13608p⁶q¹⁰
//	     + 5670p⁸q⁸ - 1512p¹⁰q⁶ + 252p¹²q⁴ - 24p¹⁴q²) - q
//
// another expression whose catastrophic cancellation defeats naive
// fixed-precision evaluation.
func rump2() cr.CR {
	p := cr.FromRational(big.NewInt(206987), big.NewInt(2048))
	q := cr.FromRational(big.NewInt(119504), big.NewInt(2048))

	powers := func(x cr.CR, n int) []cr.CR {
		pw := make([]cr.CR, n+1)
		pw[0] = cr.FromInteger(big.NewInt(1))
		for i := 1; i <= n; i++ {
			pw[i] = cr.Mul(pw[i-1], x)
		}
		return pw
	}
	pPow := powers(p, 16)
	qPow := powers(q, 16)

	coeff := func(c int64) cr.CR { return cr.FromInteger(big.NewInt(c)) }
	term := func(c int64, pExp, qExp int) cr.CR {
		return cr.Mul(coeff(c), cr.Mul(pPow[pExp], qPow[qExp]))
	}

	inner := term(1, 16, 0)
	inner = cr.Add(inner, term(6561, 0, 16))
	inner = cr.Sub(inner, term(17496, 2, 14))
	inner = cr.Add(inner, term(20412, 4, 12))
	inner = cr.Sub(inner, term(13608, 6, 10))
	inner = cr.Add(inner, term(5670, 8, 8))
	inner = cr.Sub(inner, term(1512, 10, 6))
	inner = cr.Add(inner, term(252, 12, 4))
	inner = cr.Sub(inner, term(24, 14, 2))

	return cr.Sub(cr.Mul(pPow[3], inner), q)
}
