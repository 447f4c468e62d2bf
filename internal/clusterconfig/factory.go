package clusterconfig

import (
	"strconv"

	"github.com/go-logr/logr"
	"k8s.io/utils/pointer"

	hazelcastv1alpha1 "github.com/hazelcast/hazelcast-cluster-config/api/v1alpha1"
	"github.com/hazelcast/hazelcast-cluster-config/internal/config"
	"github.com/hazelcast/hazelcast-cluster-config/internal/discovery"
	n "github.com/hazelcast/hazelcast-cluster-config/internal/naming"
	"github.com/hazelcast/hazelcast-cluster-config/internal/protocol/types"
)

var (
	// ErrInvalidPolicyName is returned when an eviction or max-size policy name is unknown.
	ErrInvalidPolicyName = types.ErrInvalidPolicyName
	// ErrInvalidPartitionGroupType is returned when the partition member group type is unknown.
	ErrInvalidPartitionGroupType = types.ErrInvalidPartitionGroupType
	// ErrNoDiscoveryProviderConfigured is returned when discovery is enabled without complete credentials.
	ErrNoDiscoveryProviderConfigured = discovery.ErrNoDiscoveryProviderConfigured
)

// Factory turns cluster settings into Hazelcast member configurations.
// It holds no state besides its logger and can be shared between goroutines.
type Factory struct {
	log logr.Logger
}

// NewFactory returns a Factory that writes its diagnostics to logger.
func NewFactory(logger logr.Logger) *Factory {
	return &Factory{log: logger}
}

// Build assembles the member configuration and attaches maps as they are.
func (f *Factory) Build(s *hazelcastv1alpha1.ClusterSettings, maps map[string]config.Map) (*config.Hazelcast, error) {
	cfg, err := f.build(s)
	if err != nil {
		return nil, err
	}
	if len(maps) > 0 {
		cfg.Map = make(map[string]config.Map, len(maps))
		for name, m := range maps {
			cfg.Map[name] = m
		}
	}
	if err := f.finalize(cfg, s); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BuildWithMap assembles the member configuration with a single map keyed by its name.
func (f *Factory) BuildWithMap(s *hazelcastv1alpha1.ClusterSettings, m config.Map) (*config.Hazelcast, error) {
	return f.Build(s, map[string]config.Map{m.Name: m})
}

// BuildNetwork assembles the member configuration without any map and without partition grouping.
func (f *Factory) BuildNetwork(s *hazelcastv1alpha1.ClusterSettings) (*config.Hazelcast, error) {
	return f.build(s)
}

func (f *Factory) build(s *hazelcastv1alpha1.ClusterSettings) (*config.Hazelcast, error) {
	join, err := f.BuildJoin(s)
	if err != nil {
		return nil, err
	}
	f.log.V(1).Info("Created Hazelcast join configuration", "discovery", join.DiscoveryMode())

	cfg := &config.Hazelcast{
		InstanceName: s.InstanceName,
		Network: config.Network{
			Port: config.Port{
				Port:          s.Port,
				AutoIncrement: pointer.Bool(s.PortAutoIncrement),
			},
			Join: join,
		},
		Properties: map[string]string{
			n.DiscoveryEnabledProperty:      strconv.FormatBool(s.Discovery.Enabled),
			n.PreferIPv4StackProperty:       strconv.FormatBool(s.IPv4Enabled),
			n.LoggingTypeProperty:           s.LoggingType,
			n.MaxNoHeartbeatSecondsProperty: strconv.FormatInt(int64(s.MaxNoHeartbeatSeconds), 10),
		},
	}
	f.log.V(1).Info("Created Hazelcast network configuration", "port", s.Port, "autoIncrement", s.PortAutoIncrement)
	return cfg, nil
}

func (f *Factory) finalize(cfg *config.Hazelcast, s *hazelcastv1alpha1.ClusterSettings) error {
	if s.PartitionMemberGroupType == "" {
		return nil
	}
	t, err := types.ParsePartitionGroupType(s.PartitionMemberGroupType)
	if err != nil {
		return err
	}
	f.log.V(1).Info("Using partition member group type", "type", t)
	cfg.PartitionGroup = config.PartitionGroup{
		Enabled:   pointer.Bool(true),
		GroupType: t,
	}
	return nil
}
