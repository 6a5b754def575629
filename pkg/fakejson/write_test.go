package fakejson

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWriter struct {
	calls int
	buf   bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	return w.buf.Write(p)
}

type failingWriter struct{}

var errBrokenPipe = errors.New("broken pipe")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errBrokenPipe
}

func TestWrite(t *testing.T) {
	t.Run("TwoByOne", func(t *testing.T) {
		ds, err := Assemble(&counterSource{}, Shape{Elements: 2, Fields: 1, ArrayLen: 2}, Options{Policy: PolicyShared})
		require.NoError(t, err)

		w := &countingWriter{}
		require.NoError(t, Write(w, ds))

		assert.Equal(t, 1, w.calls, "dataset must go out in a single write")
		assert.Equal(t, `[{"Name 1":"text 1","array":[0,1]},{"Name 1":"text 1","array":[0,1]}]`, w.buf.String())
	})

	t.Run("NoHTMLEscaping", func(t *testing.T) {
		ds := Dataset{{"A & B": "<p>", ArrayKey: Sequence(0)}}

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, ds))
		assert.Equal(t, `[{"A & B":"<p>","array":[]}]`, buf.String())
	})

	t.Run("EmptyDataset", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, nil))
		assert.Equal(t, "[]", buf.String())
	})

	t.Run("WriteFailure", func(t *testing.T) {
		err := Write(failingWriter{}, Dataset{})
		require.ErrorIs(t, err, errBrokenPipe)
		assert.Contains(t, err.Error(), "failed to write dataset")
	})

	t.Run("EncodeFailure", func(t *testing.T) {
		ds := Dataset{{"bad": make(chan int)}}
		err := Write(&bytes.Buffer{}, ds)
		var unsupported *json.UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
	})
}
