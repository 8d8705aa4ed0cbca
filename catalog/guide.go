package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hupe1980/idkey/model"
)

// Guide is a decoded catalog document: one catalog per key node.
type Guide struct {
	// Name is the guide name, empty for flat catalogs.
	Name string
	// StartNodeUUID is the node a key starts at. Flat catalogs use "".
	StartNodeUUID string

	nodes    map[string]*model.Catalog
	problems []error
}

// Decode decodes a (possibly compressed) flat catalog or nature guide.
//
// Malformed entries are skipped and reported by Problems. In strict mode
// any problem fails the decode instead.
func Decode(data []byte, optFns ...Option) (*Guide, error) {
	opts := applyOptions(optFns)

	g, err := decode(data, opts)
	if err != nil {
		return nil, err
	}
	if opts.strict && len(g.problems) > 0 {
		return nil, errors.Join(g.problems...)
	}
	return g, nil
}

func decode(data []byte, opts options) (*Guide, error) {
	plain, err := Decompress(data)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := opts.codec.Unmarshal(plain, &env); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	g := &Guide{
		Name:          env.Name,
		StartNodeUUID: env.StartNodeUUID,
		nodes:         make(map[string]*model.Catalog),
	}

	switch {
	case len(env.Tree) > 0:
		for _, id := range sortedKeys(env.Tree) {
			node := env.Tree[id]
			if node == nil {
				node = &Document{}
			}
			cat, problems := buildNode(id, node, opts.strict)
			g.nodes[id] = cat
			g.problems = append(g.problems, problems...)
		}
		if g.StartNodeUUID == "" && len(env.Tree) == 1 {
			g.StartNodeUUID = sortedKeys(env.Tree)[0]
		}
	case len(env.Entries()) > 0 || len(env.FilterTypes) > 0:
		cat, problems := buildNode("", &env.Document, opts.strict)
		g.nodes[""] = cat
		g.StartNodeUUID = ""
		g.problems = problems
	default:
		return nil, ErrEmptyDocument
	}
	return g, nil
}

// Parse decodes data and returns the catalog of the node selected with
// WithNode, or of the start node.
func Parse(data []byte, optFns ...Option) (*model.Catalog, error) {
	g, err := Decode(data, optFns...)
	if err != nil {
		return nil, err
	}
	opts := applyOptions(optFns)
	if opts.node != "" {
		return g.Node(opts.node)
	}
	return g.Start()
}

// Validate decodes data and returns every problem found, joined.
// WithStrict adds the strict-only checks.
func Validate(data []byte, optFns ...Option) error {
	g, err := decode(data, applyOptions(optFns))
	if err != nil {
		return err
	}
	return errors.Join(g.problems...)
}

// Node returns the catalog of a node.
func (g *Guide) Node(uuid string) (*model.Catalog, error) {
	cat, ok := g.nodes[uuid]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, uuid)
	}
	return cat, nil
}

// Start returns the catalog of the start node.
func (g *Guide) Start() (*model.Catalog, error) {
	return g.Node(g.StartNodeUUID)
}

// NodeUUIDs returns the uuids of all nodes, sorted.
func (g *Guide) NodeUUIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Problems returns the validation problems of skipped entries.
func (g *Guide) Problems() []error {
	return g.problems
}
