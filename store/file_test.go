package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formats runs a test for every file format.
func formats(t *testing.T, test func(t *testing.T, s *File)) {
	for _, format := range []string{FormatXLSX, FormatJSONL} {
		t.Run(format, func(t *testing.T) {
			s, err := New(t.TempDir(), format)
			require.NoError(t, err)
			test(t, s)
		})
	}
}

func newAsset(t *testing.T, name string) *dca.Asset {
	t.Helper()
	a, err := dca.NewAsset(name, dca.EUR, dca.D("20"))
	require.NoError(t, err)
	_, err = a.Ledger.Add(dca.D(100), dca.D(10))
	require.NoError(t, err)
	_, err = a.Ledger.Add(dca.D(200), dca.D(8))
	require.NoError(t, err)
	return a
}

func assertSameAsset(t *testing.T, want, got *dca.Asset) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Currency, got.Currency)
	assert.True(t, want.Drawdown.Equal(got.Drawdown), "drawdown %s != %s", want.Drawdown, got.Drawdown)
	assert.True(t, date.Truncate(want.CreatedAt).Equal(got.CreatedAt), "created %v != %v", want.CreatedAt, got.CreatedAt)
	assert.True(t, date.Truncate(want.UpdatedAt).Equal(got.UpdatedAt), "updated %v != %v", want.UpdatedAt, got.UpdatedAt)

	wps, gps := want.Ledger.All(), got.Ledger.All()
	require.Len(t, gps, len(wps))
	for i := range wps {
		w, g := wps[i], gps[i]
		assert.Equal(t, w.ID, g.ID)
		assert.True(t, w.Investment.Equal(g.Investment), "investment %s != %s", w.Investment, g.Investment)
		assert.True(t, w.Price.Equal(g.Price), "price %s != %s", w.Price, g.Price)
		assert.True(t, w.Quantity.Equal(g.Quantity), "quantity %s != %s", w.Quantity, g.Quantity)
		assert.True(t, date.Truncate(w.Timestamp).Equal(g.Timestamp), "timestamp %v != %v", w.Timestamp, g.Timestamp)
	}
}

func TestFile_RoundTrip(t *testing.T) {
	formats(t, func(t *testing.T, s *File) {
		a := newAsset(t, "BTC savings")
		// inexact division and a gap in the ids must survive too.
		_, err := a.Ledger.Add(dca.D(100), dca.D(3))
		require.NoError(t, err)
		a.Ledger.Remove(2)

		require.NoError(t, s.Export(a))
		got, err := s.Import("BTC savings")
		require.NoError(t, err)
		assertSameAsset(t, a, got)

		qs := got.Ledger.All()
		assert.True(t, dca.D(10).Equal(qs[0].Quantity))
		assert.Equal(t, 3, qs[1].ID)
		assert.True(t, dca.D(100).Div(dca.D(3)).Equal(qs[1].Quantity))
	})
}

func TestFile_RoundTripEmpty(t *testing.T) {
	formats(t, func(t *testing.T, s *File) {
		a, err := dca.NewAsset("ETH", dca.ETH, dca.DefaultDrawdown)
		require.NoError(t, err)
		require.NoError(t, s.Export(a))

		got, err := s.Import("ETH")
		require.NoError(t, err)
		assertSameAsset(t, a, got)
		assert.Equal(t, 0, got.Ledger.Count())
	})
}

func TestFile_ExportRefreshesUpdatedAt(t *testing.T) {
	formats(t, func(t *testing.T, s *File) {
		stamp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.Local)
		s.now = func() time.Time { return stamp }
		a := newAsset(t, "gold")
		require.NoError(t, s.Export(a))
		assert.Equal(t, stamp, a.UpdatedAt)

		got, err := s.Import("gold")
		require.NoError(t, err)
		assert.True(t, stamp.Equal(got.UpdatedAt))
	})
}

func TestFile_ImportMissing(t *testing.T) {
	formats(t, func(t *testing.T, s *File) {
		got, err := s.Import("nothing")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestFile_InvalidName(t *testing.T) {
	formats(t, func(t *testing.T, s *File) {
		_, err := s.Import("../escape")
		assert.ErrorIs(t, err, dca.ErrInvalidArgument)
		_, err = s.Delete("a:b")
		assert.ErrorIs(t, err, dca.ErrInvalidArgument)
		err = s.Export(&dca.Asset{Name: "a?b", Ledger: dca.NewLedger()})
		assert.ErrorIs(t, err, dca.ErrInvalidArgument)
	})
}

func TestFile_DeleteAndList(t *testing.T) {
	formats(t, func(t *testing.T, s *File) {
		names, err := s.List()
		require.NoError(t, err)
		assert.Empty(t, names)

		for _, n := range []string{"zinc", "AAPL", "btc"} {
			require.NoError(t, s.Export(newAsset(t, n)))
		}
		// foreign files are ignored.
		require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), nil, 0644))
		require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "sub"+s.codec.ext()), 0755))

		names, err = s.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL", "btc", "zinc"}, names)

		deleted, err := s.Delete("btc")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = s.Delete("btc")
		require.NoError(t, err)
		assert.False(t, deleted)

		names, err = s.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL", "zinc"}, names)
	})
}

// TestFile_ListDotName asserts that a name starting with a dot is listed like
// any other asset, while temp files are not.
func TestFile_ListDotName(t *testing.T) {
	formats(t, func(t *testing.T, s *File) {
		require.NoError(t, s.Export(newAsset(t, ".hidden")))
		require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), ".hidden-123.tmp"), nil, 0644))

		a, err := s.Import(".hidden")
		require.NoError(t, err)
		require.NotNil(t, a)

		names, err := s.List()
		require.NoError(t, err)
		assert.Equal(t, []string{".hidden"}, names)
	})
}

func TestFile_ListMissingDir(t *testing.T) {
	s := NewXLSX(filepath.Join(t.TempDir(), "does", "not", "exist"))
	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFile_ExportCreatesDir(t *testing.T) {
	s := NewJSONL(filepath.Join(t.TempDir(), "Assets"))
	require.NoError(t, s.Export(newAsset(t, "x")))
	_, err := os.Stat(s.Path("x"))
	assert.NoError(t, err)
}

// failingCodec writes some bytes and then fails.
type failingCodec struct{ codec }

func (failingCodec) encode(w io.Writer, _ tables) error {
	w.Write([]byte("garbage"))
	return errors.New("disk full")
}

func TestFile_ExportFailureKeepsPreviousFile(t *testing.T) {
	formats(t, func(t *testing.T, s *File) {
		a := newAsset(t, "safe")
		require.NoError(t, s.Export(a))
		before, err := os.ReadFile(s.Path("safe"))
		require.NoError(t, err)

		s.codec = failingCodec{s.codec}
		_, err = a.Ledger.Add(dca.D(1), dca.D(1))
		require.NoError(t, err)
		assert.Error(t, s.Export(a))

		after, err := os.ReadFile(s.Path("safe"))
		require.NoError(t, err)
		assert.Equal(t, before, after)

		// no temporary file left behind.
		entries, err := os.ReadDir(s.Dir())
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestFile_ImportUnreadable(t *testing.T) {
	formats(t, func(t *testing.T, s *File) {
		require.NoError(t, os.WriteFile(s.Path("broken"), []byte{0xff, 0x00, 0x13}, 0644))
		got, err := s.Import("broken")
		if s.codec.ext() == ".jsonl" {
			// a JSON lines file degrades line by line.
			require.NotNil(t, got)
			assert.ErrorIs(t, err, dca.ErrMalformedRecord)
			assert.Equal(t, 0, got.Ledger.Count())
			return
		}
		assert.Nil(t, got)
		assert.Error(t, err)
	})
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(t.TempDir(), "csv")
	assert.ErrorIs(t, err, dca.ErrInvalidArgument)
}
