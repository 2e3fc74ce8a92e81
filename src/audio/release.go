package audio

import (
	"fmt"
	"math"
	"math/big"
	"time"
)

// ----- Release Tail ----- //

const defaultMaxDenominator = 1000

// ReleaseTail returns the exact time in seconds after which every waveform of
// freqs has completed a whole number of cycles: the LCM of the periods 1/f,
// each approximated by the closest fraction whose denominator is at most
// maxDenominator. An empty set needs no tail.
func ReleaseTail(freqs []float64, maxDenominator int64) (*big.Rat, error) {
	if maxDenominator < 1 {
		return nil, fmt.Errorf("max denominator should be positive: %v", maxDenominator)
	}
	periods := make([]*big.Rat, 0, len(freqs))
	for _, freq := range freqs {
		period, err := Period(freq, maxDenominator)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}
	return lcmRat(periods), nil
}

// Period returns 1/freq as a fraction with denominator <= maxDenominator.
func Period(freq float64, maxDenominator int64) (*big.Rat, error) {
	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return nil, fmt.Errorf("invalid frequency: %v", freq)
	}
	r := new(big.Rat).SetFloat64(freq)
	r.Inv(r)
	return limitDenominator(r, maxDenominator), nil
}

// limitDenominator finds the closest fraction to x (x > 0) with denominator at
// most maxDenominator, walking the continued fraction expansion of x.
func limitDenominator(x *big.Rat, maxDenominator int64) *big.Rat {
	limit := big.NewInt(maxDenominator)
	if x.Denom().Cmp(limit) <= 0 {
		return new(big.Rat).Set(x)
	}
	p0, q0, p1, q1 := big.NewInt(0), big.NewInt(1), big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(x.Num())
	d := new(big.Int).Set(x.Denom())
	for {
		a := new(big.Int).Div(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(limit) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}
	k := new(big.Int).Div(new(big.Int).Sub(limit, q0), q1)
	bound1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	bound2 := new(big.Rat).SetFrac(p1, q1)
	if distance(bound2, x).Cmp(distance(bound1, x)) <= 0 {
		return bound2
	}
	return bound1
}

func distance(a, b *big.Rat) *big.Rat {
	diff := new(big.Rat).Sub(a, b)
	return diff.Abs(diff)
}

// lcmRat reduces the periods to a common denominator D, takes the LCM of the
// numerators over D and divides it by D again.
func lcmRat(periods []*big.Rat) *big.Rat {
	if len(periods) == 0 {
		return new(big.Rat)
	}
	denominator := big.NewInt(1)
	for _, p := range periods {
		denominator = lcmInt(denominator, p.Denom())
	}
	numerator := big.NewInt(1)
	for _, p := range periods {
		scaled := new(big.Int).Mul(p.Num(), new(big.Int).Quo(denominator, p.Denom()))
		numerator = lcmInt(numerator, scaled)
	}
	return new(big.Rat).SetFrac(numerator, denominator)
}

func lcmInt(a, b *big.Int) *big.Int {
	gcd := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Quo(a, gcd)
	return out.Mul(out, b)
}

// ratToDuration truncates r seconds to nanoseconds.
func ratToDuration(r *big.Rat) time.Duration {
	ns := new(big.Int).Mul(r.Num(), big.NewInt(int64(time.Second)))
	ns.Quo(ns, r.Denom())
	if !ns.IsInt64() {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns.Int64())
}
