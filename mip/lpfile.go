// SPDX-License-Identifier: MIT

package mip

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// termsPerLine keeps LP lines well below the 255 character limit some
// readers enforce.
const termsPerLine = 8

// WriteLP writes p in CPLEX LP format, readable by CPLEX, Gurobi, CBC,
// HiGHS, GLPK and SCIP.
func WriteLP(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	lw := &lpWriter{w: bw, p: p}

	lw.printf("\\ Problem: %s\n", p.name)
	if p.direction == Maximize {
		lw.printf("Maximize\n")
	} else {
		lw.printf("Minimize\n")
	}
	lw.printf(" obj:")
	lw.terms(p.objective)
	if p.objConst != 0 {
		lw.printf(" %s", signed(p.objConst))
	}
	lw.printf("\n")

	lw.printf("Subject To\n")
	for _, c := range p.cons {
		lw.printf(" %s:", c.Name)
		if len(c.Terms) == 0 && len(p.vars) > 0 {
			// Readers reject empty rows; a zero-coefficient term keeps the row.
			lw.printf(" 0 %s", p.vars[0].name)
		}
		lw.terms(c.Terms)
		lw.printf(" %s %s\n", c.Sense, num(c.RHS))
	}

	lw.printf("Bounds\n")
	for _, v := range p.vars {
		if v.kind == Binary {
			continue
		}
		lw.printf(" %s <= %s <= %s\n", num(v.lb), v.name, num(v.ub))
	}

	lw.section("Binaries", Binary)
	lw.section("Generals", Integer)
	lw.printf("End\n")

	if lw.err != nil {
		return fmt.Errorf("mip: write lp: %w", lw.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mip: write lp: %w", err)
	}

	return nil
}

type lpWriter struct {
	w   *bufio.Writer
	p   *Problem
	err error
}

func (lw *lpWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

func (lw *lpWriter) terms(terms []Term) {
	for i, t := range terms {
		if i > 0 && i%termsPerLine == 0 {
			lw.printf("\n  ")
		}
		lw.printf(" %s %s", signed(t.Coef), lw.p.vars[t.Var].name)
	}
}

func (lw *lpWriter) section(title string, kind Kind) {
	first := true
	n := 0
	for _, v := range lw.p.vars {
		if v.kind != kind {
			continue
		}
		if first {
			lw.printf("%s\n", title)
			first = false
		}
		lw.printf(" %s", v.name)
		n++
		if n%termsPerLine == 0 {
			lw.printf("\n")
		}
	}
	if !first && n%termsPerLine != 0 {
		lw.printf("\n")
	}
}

// signed renders a coefficient with an explicit sign: "+ 1", "- 2.5".
func signed(c float64) string {
	if c < 0 {
		return "- " + num(-c)
	}

	return "+ " + num(c)
}

func num(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "+inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}
