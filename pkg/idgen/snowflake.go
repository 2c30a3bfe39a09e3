// Package idgen generates time-ordered int64 identifiers.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique ids for one node. Safe for concurrent use.
type Generator struct {
	node *snowflake.Node
}

// New creates a Generator for nodeID (0..1023). Instances sharing a
// database must use distinct node ids.
func New(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("idgen: node %d: %w", nodeID, err)
	}
	return &Generator{node: node}, nil
}

// NewID returns the next id. IDs are strictly increasing per node.
func (g *Generator) NewID() int64 {
	return g.node.Generate().Int64()
}
