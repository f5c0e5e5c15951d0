package terminal

import (
	"testing"
	"testing/fstest"

	"github.com/KirkDiggler/bonedash/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpritesBundled(t *testing.T) {
	sprites, err := LoadSprites(DefaultAssets)
	require.NoError(t, err)
	require.NotNil(t, sprites.Player)

	for _, kind := range engine.ObstacleKinds {
		assert.NotNil(t, sprites.Obstacles[kind], kind)
	}
}

func TestLoadSpritesMissingKind(t *testing.T) {
	fsys := fstest.MapFS{
		"player.txt": {Data: []byte("o\n")},
		"bone.txt":   {Data: []byte("=\n")},
	}

	_, err := LoadSprites(fsys)
	assert.Error(t, err)
}

func TestLoadSpritesEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"player.txt": {Data: []byte("")},
	}

	_, err := LoadSprites(fsys)
	assert.ErrorIs(t, err, ErrEmptySprite)

	_, err = LoadSprites(nil)
	assert.ErrorIs(t, err, ErrNilAssets)
}

func TestSpriteStretches(t *testing.T) {
	fsys := fstest.MapFS{
		"player.txt": {Data: []byte("ab\ncd\n")},
		"bone.txt":   {Data: []byte("x\n")},
		"moon.txt":   {Data: []byte("y\n")},
	}
	sprites, err := LoadSprites(fsys)
	require.NoError(t, err)

	p := sprites.Player
	assert.Equal(t, 'a', p.At(0, 0, 4, 4))
	assert.Equal(t, 'a', p.At(1, 1, 4, 4))
	assert.Equal(t, 'b', p.At(2, 0, 4, 4))
	assert.Equal(t, 'd', p.At(3, 3, 4, 4))
	assert.Equal(t, 'c', p.At(0, 1, 1, 2))
	assert.Equal(t, ' ', p.At(0, 0, 0, 0))
}
