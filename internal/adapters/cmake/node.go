package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cptools/internal/adapters/fs"
	"go.trai.ch/cptools/internal/core/ports"
)

// InspectorNodeID is the unique identifier for the cache inspector Graft node.
const InspectorNodeID graft.ID = "adapter.cmake.inspector"

func init() {
	graft.Register(graft.Node[ports.CacheInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.CacheInspector, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewCacheInspector(fsys), nil
		},
	})
}
