package vid2srt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptionWriterWriteBlock(t *testing.T) {
	var sb strings.Builder
	cw := NewCaptionWriter(&sb)

	err := cw.WriteBlock(CaptionBlock{
		Index: 1,
		Start: 0,
		End:   100,
		Body:  "====\n::::\n",
	})
	require.NoError(t, err)
	require.NoError(t, cw.Flush())

	assert.Equal(t, "1\n00:00:00,000 --> 00:00:00,100\n====\n::::\n\n", sb.String())
}

func TestCaptionWriterEmptyBody(t *testing.T) {
	// A degenerate zero-row frame still gets a complete block.
	var sb strings.Builder
	cw := NewCaptionWriter(&sb)

	require.NoError(t, cw.WriteBlock(CaptionBlock{Index: 3, Start: 200, End: 300}))
	require.NoError(t, cw.Flush())

	assert.Equal(t, "3\n00:00:00,200 --> 00:00:00,300\n\n", sb.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCaptionWriterSinkError(t *testing.T) {
	cw := NewCaptionWriter(failingWriter{})

	require.NoError(t, cw.WriteBlock(CaptionBlock{Index: 1, End: 1, Body: "x\n"}))
	err := cw.Flush()
	require.Error(t, err)

	var sinkErr *SinkWriteError
	assert.True(t, errors.As(err, &sinkErr))
}
