package clusterconfig

import (
	"math"

	hazelcastv1alpha1 "github.com/hazelcast/hazelcast-cluster-config/api/v1alpha1"
	"github.com/hazelcast/hazelcast-cluster-config/internal/config"
	"github.com/hazelcast/hazelcast-cluster-config/internal/protocol/types"
)

// BuildMapPolicy returns the storage policy of mapName. Entries idle for more
// than idleTimeoutSeconds are evicted.
func (f *Factory) BuildMapPolicy(s *hazelcastv1alpha1.ClusterSettings, mapName string, idleTimeoutSeconds int64) (config.Map, error) {
	evictionPolicy, err := types.ParseEvictionPolicy(s.EvictionPolicy)
	if err != nil {
		return config.Map{}, err
	}
	maxSizePolicy, err := types.ParseMaxSizePolicy(s.MaxSizePolicy)
	if err != nil {
		return config.Map{}, err
	}

	f.log.V(1).Info("Creating Hazelcast map configuration", "name", mapName, "idleTimeoutSeconds", idleTimeoutSeconds)

	return config.Map{
		Name:             mapName,
		MaxIdleSeconds:   idleSeconds(idleTimeoutSeconds),
		BackupCount:      s.BackupCount,
		AsyncBackupCount: s.AsyncBackupCount,
		Eviction: config.MapEviction{
			EvictionPolicy: evictionPolicy,
			MaxSizePolicy:  maxSizePolicy,
			Size:           s.MaxHeapSizePercentage,
		},
	}, nil
}

// idleSeconds clamps v to [0, MaxInt32] instead of truncating it.
func idleSeconds(v int64) int32 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(v)
	}
}
