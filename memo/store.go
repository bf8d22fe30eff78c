package memo

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/katalvlaran/riemann/monodromy"
)

// keyPrefix versions the record layout; bump it when the payload
// changes shape so stale entries miss instead of half-decoding.
const keyPrefix = "monodromy/v1/"

// Store is an on-disk monodromy cache.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the cache under dir.
func Open(dir string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("memo: opening %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

type pair [2]float64

func toPair(z complex128) pair       { return pair{real(z), imag(z)} }
func (p pair) toComplex() complex128 { return complex(p[0], p[1]) }

type nodeRecord struct {
	ID       int            `json:"id"`
	Value    pair           `json:"value"`
	Radius   float64        `json:"radius"`
	Perm     monodromy.Perm `json:"perm"`
	Parent   int            `json:"parent"`
	Children []int          `json:"children"`
	Infinity bool           `json:"infinity"`
}

type graphRecord struct {
	BasePoint  pair         `json:"base_point"`
	BaseSheets []pair       `json:"base_sheets"`
	Nodes      []nodeRecord `json:"nodes"`
}

// SaveGraph stores the discovery result of g's curve.
func (s *Store) SaveGraph(g *monodromy.Graph) error {
	rec := graphRecord{BasePoint: toPair(g.BasePoint)}
	for _, y := range g.BaseSheets {
		rec.BaseSheets = append(rec.BaseSheets, toPair(y))
	}
	for _, n := range g.Nodes {
		rec.Nodes = append(rec.Nodes, nodeRecord{
			ID:       n.ID,
			Value:    toPair(n.Value),
			Radius:   n.Radius,
			Perm:     n.Perm,
			Parent:   n.Parent,
			Children: n.Children,
			Infinity: n.Infinity,
		})
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("memo: encoding graph: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+g.Curve.String()), payload)
	})
}

// LoadGraph retrieves a previously discovered graph for f. The second
// return is false on a miss or on any decode problem.
func (s *Store) LoadGraph(f *cpoly.Poly) (*monodromy.Graph, bool) {
	var payload []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + f.String()))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			payload = append([]byte(nil), v...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) || err != nil {
		return nil, false
	}

	var rec graphRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, false
	}
	g := &monodromy.Graph{Curve: f, BasePoint: rec.BasePoint.toComplex()}
	for _, p := range rec.BaseSheets {
		g.BaseSheets = append(g.BaseSheets, p.toComplex())
	}
	for _, n := range rec.Nodes {
		if len(n.Perm) != len(rec.BaseSheets) {
			return nil, false
		}
		g.Nodes = append(g.Nodes, monodromy.Node{
			ID:       n.ID,
			Value:    n.Value.toComplex(),
			Radius:   n.Radius,
			Perm:     n.Perm,
			Parent:   n.Parent,
			Children: n.Children,
			Infinity: n.Infinity,
		})
	}
	return g, true
}
