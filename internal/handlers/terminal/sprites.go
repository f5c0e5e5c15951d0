package terminal

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/KirkDiggler/bonedash/internal/engine"
)

//go:embed assets/*.txt
var embedded embed.FS

// DefaultAssets holds the bundled sprites
var DefaultAssets fs.FS = mustSub(embedded, "assets")

const (
	spritePlayer = "player.txt"
)

// Sprite is a small block of runes stretched over a field rectangle
type Sprite struct {
	rows   [][]rune
	width  int
	height int
}

// At samples the sprite for cell (cx, cy) of a w by h rectangle
func (s *Sprite) At(cx, cy, w, h int) rune {
	if s == nil || w <= 0 || h <= 0 {
		return ' '
	}
	row := s.rows[cy*s.height/h]
	col := cx * s.width / w
	if col >= len(row) {
		return ' '
	}
	return row[col]
}

// Sprites is the full asset set the loop draws with
type Sprites struct {
	Player    *Sprite
	Obstacles map[engine.ObstacleKind]*Sprite
}

// LoadSprites reads the player sprite and one sprite per obstacle kind.
// Every sprite must be present and non-empty.
func LoadSprites(fsys fs.FS) (*Sprites, error) {
	if fsys == nil {
		return nil, ErrNilAssets
	}

	player, err := loadSprite(fsys, spritePlayer)
	if err != nil {
		return nil, err
	}

	out := &Sprites{
		Player:    player,
		Obstacles: make(map[engine.ObstacleKind]*Sprite, len(engine.ObstacleKinds)),
	}
	for _, kind := range engine.ObstacleKinds {
		sprite, err := loadSprite(fsys, string(kind)+".txt")
		if err != nil {
			return nil, err
		}
		out.Obstacles[kind] = sprite
	}
	return out, nil
}

func loadSprite(fsys fs.FS, name string) (*Sprite, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite %s: %w", name, err)
	}
	defer f.Close()

	sprite := &Sprite{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		sprite.rows = append(sprite.rows, []rune(line))
		if n := utf8.RuneCountInString(line); n > sprite.width {
			sprite.width = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sprite %s: %w", name, err)
	}

	sprite.height = len(sprite.rows)
	if sprite.width == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySprite, name)
	}
	return sprite, nil
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
