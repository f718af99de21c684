package dp

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/san-kum/algoscope/internal/trace"
)

// CoinChangeCode is the pseudo-code for CoinChange.
var CoinChangeCode = []string{
	"dp[0] = 0, dp[1..amount] = inf",
	"for a in 1..amount:",
	"    for c in coins:",
	"        if c <= a and dp[a-c] + 1 < dp[a]: dp[a] = dp[a-c] + 1",
	"return dp[amount] if finite else -1",
}

// MaxAmount bounds the table CoinChange builds.
const MaxAmount = 1 << 16

// CoinChange returns the fewest coins summing to amount, or -1 when the
// amount cannot be made.
func CoinChange(coins []int, amount int, rec *trace.Recorder) (int, error) {
	if len(coins) == 0 {
		return 0, ErrNoCoins
	}
	for _, c := range coins {
		if c <= 0 {
			return 0, fmt.Errorf("%w: coin %d", ErrNegative, c)
		}
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: amount %d", ErrNegative, amount)
	}
	if amount > MaxAmount {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrTooLarge, amount, MaxAmount)
	}

	sorted := slices.Clone(coins)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	dp := make([]int, amount+1)
	for i := range dp {
		dp[i] = unset
	}
	dp[0] = 0
	st := &tableState{Input: sorted, Table: dp, Cell: 0, Source: -1}
	rec.Recordf(1, st.set("coin", "-"), "0 coins make amount 0")

	for a := 1; a <= amount; a++ {
		rec.Recordf(2, st.at(a, -1).set("coin", "-"), "solve amount %d", a)
		for _, c := range sorted {
			if c > a {
				break
			}
			if dp[a-c] == unset {
				rec.Recordf(3, st.at(a, a-c).set("coin", strconv.Itoa(c)),
					"amount %d is unreachable, coin %d does not help", a-c, c)
				continue
			}
			if dp[a] == unset || dp[a-c]+1 < dp[a] {
				dp[a] = dp[a-c] + 1
				rec.Recordf(4, st.at(a, a-c).set("coin", strconv.Itoa(c)),
					"dp[%d] = dp[%d] + 1 = %d", a, a-c, dp[a])
			} else {
				rec.Recordf(4, st.at(a, a-c).set("coin", strconv.Itoa(c)),
					"dp[%d] + 1 = %d does not improve %d", a-c, dp[a-c]+1, dp[a])
			}
		}
	}

	st.at(amount, -1).set("coin", "-")
	if dp[amount] == unset {
		rec.Recordf(5, st, "amount %d cannot be made", amount)
		return -1, nil
	}
	rec.Recordf(5, st, "fewest coins = %d", dp[amount])
	return dp[amount], nil
}
