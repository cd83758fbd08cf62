package leave

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeBalance(t *testing.T) {
	prior := LeaveBalance{Balance: dec("5")}

	got, err := ComputeBalance(prior, dec("2.5"), dec("1"))
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("6.5")), "balance = %s", got.Balance)
	assert.True(t, got.Acquired.Equal(dec("2.5")))
	assert.True(t, got.Taken.Equal(dec("1")))
}

func TestComputeBalance_Invariant(t *testing.T) {
	cases := []struct {
		prior, acquired, taken string
	}{
		{"0", "2.5", "0"},
		{"10", "1", "11"},
		{"3.5", "2.5", "0.5"},
		{"0", "0", "0"},
	}
	for _, c := range cases {
		prior := LeaveBalance{Balance: dec(c.prior)}
		got, err := ComputeBalance(prior, dec(c.acquired), dec(c.taken))
		require.NoError(t, err)

		want := prior.Balance.Add(dec(c.acquired)).Sub(dec(c.taken))
		assert.True(t, got.Balance.Equal(want),
			"prior=%s acquired=%s taken=%s: balance %s, want %s", c.prior, c.acquired, c.taken, got.Balance, want)
		assert.False(t, got.Balance.IsNegative())
	}
}

func TestComputeBalance_TakenExceedsAvailable(t *testing.T) {
	prior := LeaveBalance{Balance: dec("1")}
	_, err := ComputeBalance(prior, dec("2.5"), dec("4"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputeBalance_NegativeInputs(t *testing.T) {
	prior := LeaveBalance{Balance: dec("5")}

	_, err := ComputeBalance(prior, dec("-1"), dec("0"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ComputeBalance(prior, dec("2.5"), dec("-1"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDefaultAccrual(t *testing.T) {
	assert.True(t, DefaultAccrual(KindConges).Equal(dec("2.5")))
	assert.True(t, DefaultAccrual(KindRTT).Equal(dec("1")))
}
