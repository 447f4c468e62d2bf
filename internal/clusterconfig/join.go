package clusterconfig

import (
	"k8s.io/utils/pointer"

	hazelcastv1alpha1 "github.com/hazelcast/hazelcast-cluster-config/api/v1alpha1"
	"github.com/hazelcast/hazelcast-cluster-config/internal/config"
	"github.com/hazelcast/hazelcast-cluster-config/internal/discovery"
	"github.com/hazelcast/hazelcast-cluster-config/internal/util"
)

// BuildJoin returns the discovery join when discovery is enabled and the
// multicast and TCP/IP join otherwise. The two are never mixed.
func (f *Factory) BuildJoin(s *hazelcastv1alpha1.ClusterSettings) (config.Join, error) {
	if s.Discovery.Enabled {
		return f.discoveryJoin(s)
	}
	return f.defaultJoin(s), nil
}

func (f *Factory) discoveryJoin(s *hazelcastv1alpha1.ClusterSettings) (config.Join, error) {
	f.log.V(1).Info("Disabling multicast and TCP/IP configuration for discovery")

	if complete := discovery.CompleteProviders(s.Discovery); len(complete) > 1 {
		f.log.Info("Credentials of more than one discovery provider are set, using the first by precedence",
			"providers", providerNames(complete), "selected", complete[0].String())
	}

	d, err := discovery.Resolve(s.Discovery)
	if err != nil {
		f.log.V(1).Info("Discovery is enabled but no provider is configured")
		return config.Join{}, err
	}
	f.log.V(1).Info("Creating discovery strategy configuration", "provider", d.Provider.String(), "properties", d.Properties.Keys())

	return config.Join{
		Multicast: config.Multicast{Enabled: false},
		TCPIP:     config.TCPIP{Enabled: false},
		DiscoveryStrategies: &config.DiscoveryStrategies{
			Strategies: []config.DiscoveryStrategy{d.Strategy()},
		},
	}, nil
}

func (f *Factory) defaultJoin(s *hazelcastv1alpha1.ClusterSettings) config.Join {
	tcpip := config.TCPIP{
		Enabled:                  s.TCPIPEnabled,
		Members:                  append([]string(nil), s.Members...),
		ConnectionTimeoutSeconds: pointer.Int32(s.Timeout),
	}
	f.log.V(1).Info("Created Hazelcast TCP/IP configuration", "enabled", tcpip.Enabled, "members", tcpip.Members)

	multicast := config.Multicast{Enabled: s.Multicast.Enabled}
	if s.Multicast.Enabled {
		multicast.Group = pointer.String(s.Multicast.Group)
		multicast.Port = pointer.Int32(s.Multicast.Port)
		multicast.TimeoutSeconds = pointer.Int32(s.Multicast.Timeout)
		multicast.TimeToLive = pointer.Int32(s.Multicast.TimeToLive)
		if trusted := util.SplitTrimmedUnique(s.Multicast.TrustedInterfaces); len(trusted) > 0 {
			multicast.TrustedInterfaces = trusted
		}
		f.log.V(1).Info("Created Hazelcast multicast configuration", "group", s.Multicast.Group, "port", s.Multicast.Port)
	} else {
		f.log.V(1).Info("Skipped Hazelcast multicast configuration since feature is disabled")
	}

	return config.Join{
		Multicast: multicast,
		TCPIP:     tcpip,
	}
}

func providerNames(ps []discovery.Provider) []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.String())
	}
	return names
}
