package directory

import (
	"context"
	"testing"
	"time"

	"beyondylc/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SessionIsPerViewer(t *testing.T) {
	backend := &fakeBackend{}
	manager := NewManager(backend, nil, nil)
	viewerID := uuid.New()

	first := manager.Session(viewerID)
	second := manager.Session(viewerID)
	other := manager.Session(uuid.New())

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestManager_InvalidateAllStalesEverySession(t *testing.T) {
	ctx := context.Background()
	p := testProject("River Cleanup", uuid.New(), time.Now())
	backend := &fakeBackend{projects: []models.Project{p}}
	manager := NewManager(backend, nil, nil)

	viewerA := manager.Session(uuid.New())
	viewerB := manager.Session(uuid.New())

	_, err := viewerA.Entries(ctx, false)
	require.NoError(t, err)
	_, err = viewerB.Entries(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 2, backend.listProjectCalls)

	manager.InvalidateAll()

	_, err = viewerA.Entries(ctx, false)
	require.NoError(t, err)
	_, err = viewerB.Entries(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 4, backend.listProjectCalls)
}
