package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestWithRunAttachesRunIDToContextAndLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	runID := uuid.New()
	ctx := WithRun(context.Background(), runID)

	require.Equal(t, runID.String(), RunID(ctx))

	FromContext(ctx).Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, runID.String(), line["run_id"])
	require.Equal(t, "hello", line["message"])
}

func TestFromContextFallsBackToGlobalLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	require.Equal(t, "", RunID(context.Background()))
}

func TestStageTimerLogsStartAndCompletion(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}()

	done := StageTimer(context.Background(), "temperature")
	done()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var start, completed map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &start))
	require.NoError(t, json.Unmarshal(lines[1], &completed))
	require.Equal(t, "temperature", start["stage"])
	require.Equal(t, "stage started", start["message"])
	require.Equal(t, "stage completed", completed["message"])
	require.Contains(t, completed, "elapsed")
}
