package ioformat_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/khoint5304/soict-2024/construct"
	"github.com/khoint5304/soict-2024/ioformat"
	"github.com/khoint5304/soict-2024/tabu"
)

func TestWriteReport_IncludesRoutesAndMetrics(t *testing.T) {
	cfg, err := ioformat.ParseStream(strings.NewReader(linearStream()))
	require.NoError(t, err)

	best, err := construct.Best(cfg.Context)
	require.NoError(t, err)

	report := tabu.Report{RunID: uuid.Must(uuid.NewV7()), Best: best, Iterations: 5, Elapsed: time.Second}

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteReport(&buf, report))

	out := buf.String()
	require.Contains(t, out, "makespan:")
	require.Contains(t, out, "iterations: 5")
}
