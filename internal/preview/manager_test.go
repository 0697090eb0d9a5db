package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecheck/framecheck-go/internal/models"
)

func testFile(name string) *models.SelectedFile {
	return &models.SelectedFile{
		Name:        name,
		Size:        3,
		ContentType: "image/jpeg",
		Data:        []byte{0xff, 0xd8, 0xff},
	}
}

func TestManager_AcquireResolveRelease(t *testing.T) {
	m := NewManager()

	f := testFile("pier.jpg")
	h := m.Acquire(f)

	require.NotEmpty(t, h.Token())
	assert.Equal(t, 1, m.Live())

	got, err := m.Resolve(h.Token())
	require.NoError(t, err)
	assert.Same(t, f, got)

	require.NoError(t, m.Release(h))
	assert.Equal(t, 0, m.Live())

	_, err = m.Resolve(h.Token())
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestManager_DoubleReleaseIsAnError(t *testing.T) {
	m := NewManager()
	h := m.Acquire(testFile("a.jpg"))

	require.NoError(t, m.Release(h))
	assert.ErrorIs(t, m.Release(h), ErrReleased)
	assert.Equal(t, 0, m.Live())
}

func TestManager_ReleaseNilHandle(t *testing.T) {
	m := NewManager()
	assert.ErrorIs(t, m.Release(nil), ErrUnknownHandle)
}

func TestManager_HandlesAreIndependent(t *testing.T) {
	m := NewManager()

	h1 := m.Acquire(testFile("a.jpg"))
	h2 := m.Acquire(testFile("b.jpg"))
	require.NotEqual(t, h1.Token(), h2.Token())
	assert.Equal(t, 2, m.Live())

	require.NoError(t, m.Release(h1))
	assert.Equal(t, 1, m.Live())

	// h2 still resolvable after releasing h1.
	got, err := m.Resolve(h2.Token())
	require.NoError(t, err)
	assert.Equal(t, "b.jpg", got.Name)
}

func TestManager_NoGrowthAcrossRepeatedCycles(t *testing.T) {
	m := NewManager()

	// Repeated acquire/release cycles must not accumulate live handles.
	for i := 0; i < 100; i++ {
		h := m.Acquire(testFile("cycle.jpg"))
		require.NoError(t, m.Release(h))
	}
	assert.Equal(t, 0, m.Live())
}
