package record

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow(sample int, balance float64) Row {
	return Row{
		DealerRule:   "Hit17",
		SplitRule:    "ReSplit",
		Decks:        6,
		Limit:        50,
		Payout:       "3:2",
		PlayerRule:   "SomeStrategy",
		BettingRule:  "Flat",
		Rounds:       100,
		Stake:        50,
		Sample:       sample,
		RoundsPlayed: 100,
		FinalBalance: balance,
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sim.csv")
	written := []Row{sampleRow(0, 42.5), sampleRow(1, 0), sampleRow(2, 120)}

	w, err := Create(path)
	require.NoError(t, err)
	for _, row := range written {
		require.NoError(t, w.Write(row))
	}
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	for _, want := range written {
		got, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadOutcome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.csv")
	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleRow(0, 10)))
	require.NoError(t, w.Write(sampleRow(1, 90)))
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	v, err := r.ReadOutcome()
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
	v, err = r.ReadOutcome()
	require.NoError(t, err)
	assert.Equal(t, 90.0, v)
	_, err = r.ReadOutcome()
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.csv"))
	var sink *SinkError
	require.ErrorAs(t, err, &sink)
	assert.Equal(t, "open", sink.Op)
	assert.Contains(t, err.Error(), "absent.csv")
}

func TestOpenRejectsForeignHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("a,b,c,d,e,f,g,h,i,j,k,l\n1,2,3,4,5,6,7,8,9,10,11,12\n"), 0o644))

	_, err := Open(path)
	var sink *SinkError
	require.ErrorAs(t, err, &sink)
	assert.Equal(t, "read header", sink.Op)
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Open(path)
	var sink *SinkError
	require.ErrorAs(t, err, &sink)
}

func TestParseRowWrongArity(t *testing.T) {
	_, err := ParseRow([]string{"just", "three", "fields"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 12 fields")
}

func TestOutcomeFieldIsFinalBalance(t *testing.T) {
	row := sampleRow(0, 77.25)
	fields := row.Fields()
	require.Len(t, fields, FieldCount)
	assert.Equal(t, "77.25", fields[OutcomeField])

	parsed, err := ParseRow(fields)
	require.NoError(t, err)
	assert.Equal(t, row, parsed)
}

func TestSinkErrorUnwraps(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
