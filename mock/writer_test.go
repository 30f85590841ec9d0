package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/rndocs"
	"github.com/fwojciec/rndocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where DocumentWriter is expected
	var _ rndocs.DocumentWriter = &mock.DocumentWriter{}
}

func TestDocumentWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteDocumentFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *rndocs.Document
		w := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, doc *rndocs.Document) error {
				calledWith = doc
				return nil
			},
		}

		doc := &rndocs.Document{
			Page:      rndocs.Page{ID: "camera"},
			SourceURL: "https://docs.expo.dev/versions/latest/sdk/camera/",
			Content:   "Test content",
		}

		err := w.WriteDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, doc, calledWith)
	})

	t.Run("returns error from WriteDocumentFn", func(t *testing.T) {
		t.Parallel()

		w := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, _ *rndocs.Document) error {
				return errors.New("disk full")
			},
		}

		err := w.WriteDocument(context.Background(), &rndocs.Document{})

		assert.EqualError(t, err, "disk full")
	})
}
