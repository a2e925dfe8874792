// Package idgen hands out snowflake identifiers for rows that need an
// identity before the database assigns one, such as booking and order-line
// records created inside a transaction.
package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init must run once at startup, before any GenerateID call.
func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init snowflake node: %v", err)
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}
