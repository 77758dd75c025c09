//go:build go1.18
// +build go1.18

package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzTokenize(f *testing.F) {
	f.Add("2+3*4")
	f.Add("-3+5")
	f.Add("1 # 2")
	f.Fuzz(func(t *testing.T, s string) {
		calc.Tokenize(s)
	})
}
