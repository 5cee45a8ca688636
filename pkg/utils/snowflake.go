package utils

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// InitSnowflake sets the node number used by NextID. It must run before the
// first id is generated; later calls are ignored.
func InitSnowflake(nodeID int64) error {
	var err error
	nodeOnce.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// NextID returns a process-unique, time ordered record id.
func NextID() int64 {
	if err := InitSnowflake(1); err != nil {
		hlog.Errorf("snowflake node init failed: %v", err)
	}
	return node.Generate().Int64()
}
