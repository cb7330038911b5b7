package game

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed assets/level.yaml
var defaultLevelYAML []byte

// ErrInvalidLevel is wrapped by every validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// Wall kinds.
const (
	WallDouble = "double" // long maze wall
	WallBlock  = "block"  // free-standing block
)

// BoxSpec is one static volume of the level. Mesh is nil for plain boxes;
// model-backed entries carry the loaded mesh and its placement.
type BoxSpec struct {
	Name string
	Kind string
	Box  Box

	Mesh      *Mesh
	Transform mgl32.Mat4
}

// Level is the fully resolved, validated static content of a stage.
type Level struct {
	Name        string
	PlayerSpawn mgl64.Vec3
	SpiderSpawn mgl64.Vec3
	Spider      BoxSpec // Box is relative to the spider position
	Floor       *BoxSpec
	Walls       []BoxSpec
	Eggs        []BoxSpec
}

// Colliders returns every box that blocks the player.
func (l *Level) Colliders() []Box {
	out := make([]Box, 0, len(l.Walls)+1)
	if l.Floor != nil {
		out = append(out, l.Floor.Box)
	}
	for _, w := range l.Walls {
		out = append(out, w.Box)
	}
	return out
}

type levelFile struct {
	Name        string      `yaml:"name"`
	PlayerSpawn *mgl64.Vec3 `yaml:"player_spawn"`
	Spider      struct {
		Spawn    *mgl64.Vec3 `yaml:"spawn"`
		boxEntry `yaml:",inline"`
	} `yaml:"spider"`
	Floor *boxEntry  `yaml:"floor"`
	Walls []boxEntry `yaml:"walls"`
	Eggs  []boxEntry `yaml:"eggs"`
}

type boxEntry struct {
	Name   string      `yaml:"name"`
	Kind   string      `yaml:"kind"`
	Min    *mgl64.Vec3 `yaml:"min"`
	Max    *mgl64.Vec3 `yaml:"max"`
	Model  string      `yaml:"model"`
	Scale  float64     `yaml:"scale"`
	Offset mgl64.Vec3  `yaml:"offset"`
}

// LoadLevel reads a level file. An empty path selects the built-in level.
func LoadLevel(ctx context.Context, path string) (*Level, error) {
	if path == "" {
		return ParseLevel(ctx, defaultLevelYAML, "")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseLevel(ctx, data, filepath.Dir(path))
}

// ParseLevel decodes and validates level YAML. Model paths are resolved
// against baseDir and loaded concurrently.
func ParseLevel(ctx context.Context, data []byte, baseDir string) (*Level, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}

	lvl := &Level{
		Name:        lf.Name,
		PlayerSpawn: mgl64.Vec3(DefaultPlayerSpawn),
		SpiderSpawn: mgl64.Vec3(DefaultSpiderSpawn),
		Walls:       make([]BoxSpec, len(lf.Walls)),
		Eggs:        make([]BoxSpec, len(lf.Eggs)),
	}
	if lf.PlayerSpawn != nil {
		lvl.PlayerSpawn = *lf.PlayerSpawn
	}
	if lf.Spider.Spawn != nil {
		lvl.SpiderSpawn = *lf.Spider.Spawn
	}

	g, gctx := errgroup.WithContext(ctx)
	resolve := func(dst *BoxSpec, e boxEntry, label string) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			spec, err := e.resolve(baseDir)
			if err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
			*dst = spec
			return nil
		})
	}

	resolve(&lvl.Spider, lf.Spider.boxEntry, "spider")
	if lf.Floor != nil {
		lvl.Floor = &BoxSpec{}
		resolve(lvl.Floor, *lf.Floor, "floor")
	}
	for i, w := range lf.Walls {
		if w.Kind == "" {
			w.Kind = WallDouble
		}
		resolve(&lvl.Walls[i], w, fmt.Sprintf("wall %d (%s)", i, w.Name))
	}
	for i, e := range lf.Eggs {
		resolve(&lvl.Eggs[i], e, fmt.Sprintf("egg %d (%s)", i, e.Name))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// resolve turns an entry into a box, loading its model when one is named.
// A model's box is its bounding box scaled about the centre, then offset.
func (e boxEntry) resolve(baseDir string) (BoxSpec, error) {
	spec := BoxSpec{Name: e.Name, Kind: e.Kind, Transform: mgl32.Ident4()}
	if e.Model == "" {
		if e.Min == nil || e.Max == nil {
			return spec, fmt.Errorf("%w: needs min and max or a model", ErrInvalidLevel)
		}
		spec.Box = Box{Min: *e.Min, Max: *e.Max}
		return spec, nil
	}

	path := e.Model
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	mesh, err := LoadOBJ(path)
	if err != nil {
		return spec, err
	}
	scale := e.Scale
	if scale == 0 {
		scale = 1
	}
	raw := mesh.Bounds()
	c := vec32(raw.Center())
	s := float32(scale)
	spec.Mesh = mesh
	spec.Box = raw.Scaled(scale).MovedBy(e.Offset)
	spec.Transform = mgl32.Translate3D(vec32(e.Offset).Elem()).
		Mul4(mgl32.Translate3D(c.Elem())).
		Mul4(mgl32.Scale3D(s, s, s)).
		Mul4(mgl32.Translate3D(c.Mul(-1).Elem()))
	return spec, nil
}

// Validate checks the structural rules a playable level must satisfy.
func (l *Level) Validate() error {
	check := func(what string, s BoxSpec) error {
		if !s.Box.Valid() {
			return fmt.Errorf("%w: %s %q has min > max", ErrInvalidLevel, what, s.Name)
		}
		return nil
	}
	if err := check("spider", l.Spider); err != nil {
		return err
	}
	if l.Floor != nil {
		if err := check("floor", *l.Floor); err != nil {
			return err
		}
	}
	for _, w := range l.Walls {
		if err := check("wall", w); err != nil {
			return err
		}
		if w.Kind != WallDouble && w.Kind != WallBlock {
			return fmt.Errorf("%w: wall %q has unknown kind %q", ErrInvalidLevel, w.Name, w.Kind)
		}
	}
	if len(l.Eggs) == 0 {
		return fmt.Errorf("%w: no eggs", ErrInvalidLevel)
	}
	for _, e := range l.Eggs {
		if err := check("egg", e); err != nil {
			return err
		}
		for _, w := range l.Walls {
			if e.Box.Overlaps(w.Box) {
				return fmt.Errorf("%w: egg %q overlaps wall %q", ErrInvalidLevel, e.Name, w.Name)
			}
		}
	}
	body := Sphere{Center: l.PlayerSpawn, Radius: PlayerRadius}
	if i := body.IntersectsAny(l.Colliders()); i >= 0 {
		return fmt.Errorf("%w: player spawn is inside collider %d", ErrInvalidLevel, i)
	}
	return nil
}
