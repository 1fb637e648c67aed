package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/bnema/hksl/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed glyphs.toml
var glyphsTOML []byte

type glyphTable struct {
	Items       map[string]string `toml:"items"`
	PlantImages map[string]string `toml:"plant_images"`
}

type ItemEntry struct {
	ID     domain.ItemID
	Glyph  string
	Name   string
	Usable bool
}

type PlantEntry struct {
	Kind  domain.PlantKind
	Title string
	// ImageURL is empty for kinds without artwork.
	ImageURL string
}

// Resolver joins the static glyph table with a fetched manifest. It is
// immutable and safe for concurrent use.
type Resolver struct {
	manifest domain.Manifest
	glyphs   map[domain.ItemID]string
	images   map[domain.PlantKind]string
}

func New(manifest domain.Manifest) (*Resolver, error) {
	var table glyphTable
	if err := toml.Unmarshal(glyphsTOML, &table); err != nil {
		return nil, fmt.Errorf("decode glyph table: %w", err)
	}

	return newResolver(manifest, table), nil
}

func newResolver(manifest domain.Manifest, table glyphTable) *Resolver {
	glyphs := make(map[domain.ItemID]string, len(table.Items))
	for id, glyph := range table.Items {
		glyphs[domain.ItemID(id)] = glyph
	}
	images := make(map[domain.PlantKind]string, len(table.PlantImages))
	for kind, url := range table.PlantImages {
		images[domain.PlantKind(kind)] = url
	}

	return &Resolver{manifest: manifest, glyphs: glyphs, images: images}
}

func (r *Resolver) Manifest() domain.Manifest {
	return r.manifest
}

func (r *Resolver) Glyph(id domain.ItemID) (string, error) {
	glyph, ok := r.glyphs[id]
	if !ok {
		return "", fmt.Errorf("%w: no glyph for %q", domain.ErrUnknownItem, id)
	}

	return glyph, nil
}

func (r *Resolver) Item(id domain.ItemID) (ItemEntry, error) {
	info, ok := r.manifest.Item(id)
	if !ok {
		return ItemEntry{}, fmt.Errorf("%w: %q missing from manifest", domain.ErrUnknownItem, id)
	}

	glyph, err := r.Glyph(id)
	if err != nil {
		return ItemEntry{}, err
	}

	return ItemEntry{ID: id, Glyph: glyph, Name: info.Name, Usable: info.Usable}, nil
}

func (r *Resolver) Plant(kind domain.PlantKind) (PlantEntry, error) {
	title, ok := r.manifest.PlantTitle(kind)
	if !ok {
		return PlantEntry{}, fmt.Errorf("%w: %q missing from manifest", domain.ErrUnknownPlant, kind)
	}

	return PlantEntry{Kind: kind, Title: title, ImageURL: r.images[kind]}, nil
}

type Coverage struct {
	MissingGlyphs []domain.ItemID
	// UnusedGlyphs lists glyph table entries the manifest no longer mentions.
	UnusedGlyphs []domain.ItemID
}

func (c Coverage) Complete() bool {
	return len(c.MissingGlyphs) == 0
}

func (r *Resolver) Coverage() Coverage {
	var coverage Coverage
	for id := range r.manifest.Items {
		if _, ok := r.glyphs[id]; !ok {
			coverage.MissingGlyphs = append(coverage.MissingGlyphs, id)
		}
	}
	for id := range r.glyphs {
		if _, ok := r.manifest.Items[id]; !ok {
			coverage.UnusedGlyphs = append(coverage.UnusedGlyphs, id)
		}
	}

	sortItemIDs(coverage.MissingGlyphs)
	sortItemIDs(coverage.UnusedGlyphs)

	return coverage
}

func sortItemIDs(ids []domain.ItemID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
