package factorial_test

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/composita/pkg/factorial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	cases := map[int]string{
		0:  "1",
		1:  "1",
		5:  "120",
		25: "15511210043330985984000000",
		57: "40526919504877216755680601905432322134980384796226602145184481280000000000000",
		58: "2350561331282878571829474910515074683828862318181142924420699914240000000000000",
	}
	for n, want := range cases {
		got, err := factorial.Compute(n)
		require.NoError(t, err)
		assert.Equal(t, want, got.String(), "%d!", n)
	}
}

func TestCompute_MatchesMulRange(t *testing.T) {
	for _, n := range []int{56, 57, 58, 200, 1000} {
		got, err := factorial.Compute(n)
		require.NoError(t, err)
		assert.Zero(t, new(big.Int).MulRange(1, int64(n)).Cmp(got), "%d!", n)
	}
}

func TestCompute_Negative(t *testing.T) {
	_, err := factorial.Compute(-1)
	assert.ErrorIs(t, err, factorial.ErrNegative)
}

func TestDigits(t *testing.T) {
	v, err := factorial.Compute(100)
	require.NoError(t, err)
	assert.Equal(t, 158, factorial.Digits(v))
}

func TestLedger_AppendsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xvalue.csv")
	ledger := factorial.NewLedger(path)

	entries, err := ledger.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = ledger.Record(5)
	require.NoError(t, err)
	_, err = ledger.Record(0)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5,120\n0,1\n", string(raw))

	// A second ledger on the same file keeps appending.
	_, err = factorial.NewLedger(path).Record(3)
	require.NoError(t, err)

	entries, err = ledger.Entries()
	require.NoError(t, err)
	assert.Equal(t, []factorial.Entry{{X: 5, Value: "120"}, {X: 0, Value: "1"}, {X: 3, Value: "6"}}, entries)
}

func TestLedger_NegativeWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xvalue.csv")
	ledger := factorial.NewLedger(path)
	_, err := ledger.Record(-4)
	assert.ErrorIs(t, err, factorial.ErrNegative)
	assert.NoFileExists(t, path)
}

func TestNewLedger_DefaultPath(t *testing.T) {
	assert.Equal(t, factorial.DefaultLedgerFile, factorial.NewLedger("").Path())
}
