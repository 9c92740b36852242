package status

import (
	"context"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	os.Exit(m.Run())
}

func TestFileStatus_String(t *testing.T) {
	tests := []struct {
		status FileStatus
		want   string
	}{
		{StatusCreated, "created"},
		{StatusUpdated, "updated"},
		{StatusUnchanged, "unchanged"},
		{StatusSkipped, "skipped"},
		{StatusError, "error"},
		{StatusUnknown, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestManager_Summary(t *testing.T) {
	mgr := NewManager(NewUserLogger(zerolog.Nop()))
	ctx := context.Background()

	mgr.Track(ctx, FileResult{Path: "a.ipynb", Kind: "notebook", Status: StatusCreated})
	mgr.Track(ctx, FileResult{Path: "b.ipynb", Kind: "notebook", Status: StatusUpdated})
	mgr.Track(ctx, FileResult{Path: "requirements.txt", Kind: "manifest", Status: StatusUpdated})
	mgr.Track(ctx, FileResult{Path: "c.ipynb", Kind: "notebook", Status: StatusUnchanged})
	mgr.Track(ctx, FileResult{Path: "d.ipynb", Kind: "notebook", Status: StatusSkipped})
	mgr.Track(ctx, FileResult{Path: "e.ipynb", Kind: "notebook", Status: StatusError, Err: errors.New("boom")})

	summary := mgr.Summary()
	assert.Equal(t, 2, summary.NotebooksConverted)
	assert.Equal(t, 1, summary.ManifestsUpdated)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failures)
	assert.True(t, summary.Failed())

	assert.Len(t, mgr.Results(), 6)
}

func TestManager_ResultsIsCopy(t *testing.T) {
	mgr := NewManager(NewUserLogger(zerolog.Nop()))
	mgr.Track(context.Background(), FileResult{Path: "a", Status: StatusUpdated})

	results := mgr.Results()
	results[0].Path = "mutated"

	assert.Equal(t, "a", mgr.Results()[0].Path)
}
