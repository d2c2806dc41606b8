package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFile(t *testing.T) {
	m := New()
	m.RecordFile("convert", StatusOK, 10, 12)
	m.RecordFile("convert", StatusOK, 5, 4)
	m.RecordFile("convert", StatusFailed, 0, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Files.WithLabelValues("convert", StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Files.WithLabelValues("convert", StatusFailed)))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.TriplesRead.WithLabelValues("convert")))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.TriplesWritten.WithLabelValues("convert")))
}

func TestRecordCounts(t *testing.T) {
	m := New()
	m.RecordConverted(map[string]int{"Work": 2, "Title": 3})
	m.RecordConverted(map[string]int{"Work": 1})
	m.RecordDeduped(map[string]int{"Person": 4})

	assert.Equal(t, 3.0, testutil.ToFloat64(m.ResourcesConverted.WithLabelValues("Work")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ResourcesConverted.WithLabelValues("Title")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.ResourcesDeduped.WithLabelValues("Person")))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.RecordFile("bnodes", StatusOK, 1, 1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Files.WithLabelValues("bnodes", StatusOK)))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.RecordFile("dedupe", StatusOK, 3, 3)
	m.ObserveAction("dedupe", time.Now())

	path := filepath.Join(t.TempDir(), "bib2lod.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `bib2lod_files_total{action="dedupe",status="ok"} 1`)
	assert.Contains(t, text, `bib2lod_action_duration_seconds_count{action="dedupe"} 1`)
	assert.True(t, strings.HasPrefix(text, "# HELP"))
}
