// Package level loads text mazes into a caster grid plus the entity markers
// placed in them.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"

	"gophermaze/caster"
	"gophermaze/logger"
)

var (
	ErrEmptyMaze      = errors.New("level: maze is empty")
	ErrNoStart        = errors.New("level: no player start")
	ErrMultipleStarts = errors.New("level: more than one player start")
	ErrUnknownCell    = errors.New("level: unknown cell")
)

// CellError reports a character that is not part of the maze alphabet.
type CellError struct {
	Row, Col int
	Char     rune
}

func (e *CellError) Error() string {
	return fmt.Sprintf("level: unknown cell %q at row %d col %d", e.Char, e.Row, e.Col)
}

func (e *CellError) Unwrap() error { return ErrUnknownCell }

// -- maze alphabet

const (
	charWallA  = '+'
	charWallB  = '-'
	charWallC  = '|'
	charGoal   = 'g'
	charEmpty  = ' '
	charPlayer = 'p'
	charPill   = '.'
	charGhost  = 'x'
)

var tags = map[rune]caster.Tag{
	charWallA: caster.WallA,
	charWallB: caster.WallB,
	charWallC: caster.WallC,
	charGoal:  caster.Goal,
	charEmpty: caster.Empty,
}

// Marker is a grid cell that held an entity in the maze text.
type Marker struct {
	Row, Col int
}

// Center is the world position of the middle of the marked cell.
func (m Marker) Center(cellSize float64) geom.Vector2 {
	return geom.Vector2{
		X: (float64(m.Col) + 0.5) * cellSize,
		Y: (float64(m.Row) + 0.5) * cellSize,
	}
}

// Level is a parsed maze. Marker cells are Empty in Grid.
type Level struct {
	Grid   caster.Grid
	Start  Marker
	Pills  []Marker
	Ghosts []Marker
}

// Load parses a maze, one row per line. Trailing whitespace-only lines are
// ignored.
func Load(r io.Reader) (*Level, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("level: read maze: %w", err)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMaze
	}

	lvl := &Level{Grid: make(caster.Grid, len(lines))}
	starts := 0

	for row, line := range lines {
		cells := []rune(line)
		lvl.Grid[row] = make([]caster.Tag, len(cells))

		for col, ch := range cells {
			switch ch {
			case charPlayer:
				lvl.Start = Marker{Row: row, Col: col}
				starts++
			case charPill:
				lvl.Pills = append(lvl.Pills, Marker{Row: row, Col: col})
			case charGhost:
				lvl.Ghosts = append(lvl.Ghosts, Marker{Row: row, Col: col})
			default:
				tag, ok := tags[ch]
				if !ok {
					return nil, &CellError{Row: row, Col: col, Char: ch}
				}
				lvl.Grid[row][col] = tag
			}
		}
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrMultipleStarts
	}

	logger.Log.WithFields(logrus.Fields{
		"rows":   lvl.Grid.Rows(),
		"cols":   lvl.Grid.Width(),
		"pills":  len(lvl.Pills),
		"ghosts": len(lvl.Ghosts),
	}).Debug("maze loaded")

	return lvl, nil
}

// LoadFS loads the named maze from fsys.
func LoadFS(fsys fs.FS, name string) (*Level, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("level: open %s: %w", name, err)
	}
	defer file.Close()

	lvl, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lvl, nil
}

// Clone returns a deep copy that shares no memory with l.
func (l *Level) Clone() (*Level, error) {
	var c Level
	if err := copier.CopyWithOption(&c, l, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("level: clone: %w", err)
	}
	return &c, nil
}

// Size is the world extent of the grid.
func (l *Level) Size(cellSize float64) (width, height float64) {
	return float64(l.Grid.Width()) * cellSize, float64(l.Grid.Rows()) * cellSize
}
