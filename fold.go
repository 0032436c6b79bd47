package mpc

import "strings"

// Fst and Snd are the two-argument folds mpcf_fst/mpcf_snd: keep the
// first or second operand and drop the other. They back Start/End/
// Between in derived.go and are exported because grammars built directly on Also
// need them just as often.
func Fst(a, b Value) Value { return a }
func Snd(a, b Value) Value { return b }

// DropFold is mpcf_free's Go analogue: a Fold that discards both the
// accumulator and the new element, used by SkipMany/SkipMany1 and by any
// grammar that wants a repetition purely for its side effect of
// consuming input.
func DropFold(acc, elem Value) Value { return nil }

// LiftNull is the zero-argument Lift that always returns nil, the
// Go analogue of mpcf_lift_null; it is the default *_else accumulator.
func LiftNull() Value { return nil }

// LiftEmptyString is the Lift producing "", the Go analogue of
// mpcf_lift_emptystr.
func LiftEmptyString() Value { return "" }

// StrFold concatenates string elements, the Go analogue of mpcf_strfold;
// used by Many over a character-producing parser to reassemble a run of
// one-byte strings into a single token, exactly as the regex compiler's
// `*` quantifier does.
func StrFold(acc, elem Value) Value {
	accStr, _ := acc.(string)
	elemStr, _ := elem.(string)
	return accStr + elemStr
}

// AFst, ASnd, and ATrd are the n-ary folds mpcf_afst/mpcf_asnd/mpcf_atrd:
// they pick the first, second, or third element of an And sequence and
// drop the rest.
func AFst(values []Value) Value {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

func ASnd(values []Value) Value {
	if len(values) < 2 {
		return nil
	}
	return values[1]
}

func ATrd(values []Value) Value {
	if len(values) < 3 {
		return nil
	}
	return values[2]
}

// AStrFold is mpcf_astrfold: concatenates every string element of an And
// sequence in order.
func AStrFold(values []Value) Value {
	var b strings.Builder
	for _, v := range values {
		if s, ok := v.(string); ok {
			b.WriteString(s)
		}
	}
	return b.String()
}
